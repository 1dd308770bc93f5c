package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidKey is returned when a caller attempts to write a key outside
	// a section's fixed allowed set. It indicates a programming error in the
	// caller and is deliberately left to propagate instead of being absorbed
	// at the orchestration boundary.
	ErrInvalidKey = errors.New("invalid key for section")

	// ErrUnknownSection is returned when a write targets a section name the
	// store does not manage.
	ErrUnknownSection = errors.New("unknown section")

	// ErrLoadingStoreFile is returned when the backing file exists but cannot
	// be read or parsed.
	ErrLoadingStoreFile = errors.New("error loading store file")

	// ErrSavingStoreFile is returned when rewriting the backing file fails.
	ErrSavingStoreFile = errors.New("error saving store file")
)
