// Package store persists login credentials and session token data to a
// human-readable INI file organised into named sections.
//
// Two sections are managed: [SectionLogin] with keys email/password and
// [SectionToken] with keys token/expire_date. Each section has a fixed,
// validated key set; writing any other key fails with [ErrInvalidKey]. Every
// mutation rewrites the whole backing file synchronously before returning.
// The store assumes a single process and a single writer: there is no file
// locking and two concurrent mutators could lose updates.
package store

import "github.com/evickastudio/hugauth/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store defines the persistence contract for credentials and session tokens.
// The file-backed implementation is [FileStore]; tests substitute a mock.
type Store interface {
	// Exists reports whether complete credentials (non-empty email and
	// password) are stored.
	Exists() bool

	// Credentials returns the stored credential pair. Missing keys yield
	// empty string fields, never an error.
	Credentials() models.Credentials

	// SetCredentials writes both credential keys and persists the backing
	// file immediately. Returns an error if the file rewrite fails.
	SetCredentials(email, password string) error

	// Token returns the stored session token data. Missing keys yield empty
	// string fields, never an error.
	Token() models.SessionToken

	// SetToken overwrites the session token data wholesale (token plus
	// optional ISO expire date) and persists the backing file immediately.
	SetToken(token, expireDate string) error

	// SetSection writes arbitrary key/value pairs into the named section
	// after validating every key against the section's fixed allowed set.
	// Returns [ErrInvalidKey] (leaving the section untouched) for any
	// unrecognised key and [ErrUnknownSection] for an unmanaged section.
	SetSection(name string, values map[string]string) error

	// DeleteSection removes the named section entirely and persists the
	// backing file. Deleting a section that does not exist is not an error;
	// subsequent reads behave as "no data".
	DeleteSection(name string) error

	// IsLoggedIn reports whether a non-empty session token is stored.
	IsLoggedIn() bool
}
