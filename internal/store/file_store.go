// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 EvickaStudio

package store

import (
	"fmt"
	"slices"

	"gopkg.in/ini.v1"

	"github.com/evickastudio/hugauth/internal/logger"
	"github.com/evickastudio/hugauth/models"
)

// Section and key names of the backing INI file.
const (
	// SectionLogin holds the stored credential pair.
	SectionLogin = "LOGIN"
	// SectionToken holds the stored session token data.
	SectionToken = "TOKEN"

	// KeyEmail is the credential section key for the account email.
	KeyEmail = "email"
	// KeyPassword is the credential section key for the account password.
	KeyPassword = "password"
	// KeyToken is the session section key for the opaque token value.
	KeyToken = "token"
	// KeyExpireDate is the session section key for the optional ISO expiry date.
	KeyExpireDate = "expire_date"
)

// sectionKeys maps each managed section to its fixed allowed key set.
var sectionKeys = map[string][]string{
	SectionLogin: {KeyEmail, KeyPassword},
	SectionToken: {KeyToken, KeyExpireDate},
}

// FileStore is the INI-file-backed implementation of [Store].
//
// The file is parsed once at construction and held in memory; every mutating
// call validates its keys, applies the change to the in-memory tree, and
// rewrites the whole file synchronously before returning. A missing backing
// file is not an error: the store starts empty and the file is created on the
// first write.
type FileStore struct {
	path string
	file *ini.File

	log *logger.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or initialises) the backing file at path.
//
// Returns a wrapped [ErrLoadingStoreFile] if the file exists but cannot be
// read or parsed as INI.
func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadingStoreFile, err)
	}

	return &FileStore{path: path, file: file, log: log}, nil
}

// Exists implements [Store]. It reports whether the credential section holds
// non-empty values for every required key.
func (s *FileStore) Exists() bool {
	s.log.Debug().Msg("checking if stored credentials exist")
	return s.Credentials().Complete()
}

// Credentials implements [Store]. Missing keys yield empty string fields.
func (s *FileStore) Credentials() models.Credentials {
	s.log.Debug().Msg("retrieving login details")

	section := s.file.Section(SectionLogin)
	return models.Credentials{
		Email:    section.Key(KeyEmail).String(),
		Password: section.Key(KeyPassword).String(),
	}
}

// SetCredentials implements [Store]. Both keys are written and the backing
// file is rewritten in full before the call returns.
func (s *FileStore) SetCredentials(email, password string) error {
	s.log.Debug().Msg("setting login details")

	return s.SetSection(SectionLogin, map[string]string{
		KeyEmail:    email,
		KeyPassword: password,
	})
}

// Token implements [Store]. Missing keys yield empty string fields.
func (s *FileStore) Token() models.SessionToken {
	s.log.Debug().Msg("retrieving token information")

	section := s.file.Section(SectionToken)
	return models.SessionToken{
		Token:      section.Key(KeyToken).String(),
		ExpireDate: section.Key(KeyExpireDate).String(),
	}
}

// SetToken implements [Store]. The session section is overwritten wholesale;
// expireDate may be empty when the login response carried no expiry.
func (s *FileStore) SetToken(token, expireDate string) error {
	s.log.Debug().Msg("setting token information")

	return s.SetSection(SectionToken, map[string]string{
		KeyToken:      token,
		KeyExpireDate: expireDate,
	})
}

// SetSection implements [Store]. Every key is validated against the section's
// fixed allowed set before any value is applied, so an invalid key leaves the
// stored section exactly as it was.
func (s *FileStore) SetSection(name string, values map[string]string) error {
	allowed, ok := sectionKeys[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	for key := range values {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("%w: %q is not allowed in section %q", ErrInvalidKey, key, name)
		}
	}

	section := s.file.Section(name)
	for key, value := range values {
		section.Key(key).SetValue(value)
	}

	return s.persist()
}

// DeleteSection implements [Store]. Deleting an absent section is a no-op
// apart from the file rewrite, which keeps the operation idempotent.
func (s *FileStore) DeleteSection(name string) error {
	s.log.Debug().Str("section", name).Msg("deleting section")

	s.file.DeleteSection(name)
	return s.persist()
}

// IsLoggedIn implements [Store].
func (s *FileStore) IsLoggedIn() bool {
	s.log.Debug().Msg("checking if logged in")
	return s.Token().Present()
}

// persist rewrites the whole backing file from the in-memory tree. There is
// no partial write or journaling: the file is small and single-writer.
func (s *FileStore) persist() error {
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrSavingStoreFile, err)
	}

	return nil
}
