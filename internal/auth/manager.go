// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 EvickaStudio

// Package auth orchestrates the credential/session lifecycle: it decides
// whether stored state can be reused or a fresh login is needed, owns the
// lifecycle transitions, and builds the authenticated client configuration.
//
// Error classification happens at this boundary. Login failures and
// persistence errors are logged and converted to boolean/nil results; callers
// of [Manager.SetUpAuthentication], [Manager.TearDownAuthentication] and
// [Manager.Authenticate] never observe an error return. The one exception is
// the store's key-validation error, which propagates from the store API
// directly to catch programmer misuse early.
package auth

import (
	"context"
	"errors"

	"github.com/evickastudio/hugauth/internal/config"
	"github.com/evickastudio/hugauth/internal/logger"
	"github.com/evickastudio/hugauth/internal/login"
	"github.com/evickastudio/hugauth/internal/store"
	"github.com/evickastudio/hugauth/models"
)

// loginClientFactory builds a single-use login client for a credential pair.
// Tests substitute it to avoid real network calls.
type loginClientFactory func(credentials models.Credentials) login.SessionClient

// Manager coordinates the credential store and the login client.
//
// It is stateless between calls: every authentication call rebuilds the
// client configuration from whatever the store currently holds.
type Manager struct {
	store          store.Store
	cfg            config.Login
	newLoginClient loginClientFactory

	log *logger.Logger
}

// NewManager constructs a Manager over the given store. cfg supplies the
// login endpoint and the User-Agent used both for the login exchange and for
// every authenticated client built from stored state.
func NewManager(st store.Store, cfg config.Login, log *logger.Logger) *Manager {
	return &Manager{
		store: st,
		cfg:   cfg,
		newLoginClient: func(credentials models.Credentials) login.SessionClient {
			return login.NewClient(credentials, cfg, log)
		},
		log: log,
	}
}

// SetUpAuthentication performs a fresh login with the given credentials and
// persists the outcome.
//
// On a successful sign-in the credential pair is stored, and the session
// token — the cookie named "token" from the login response — is stored with
// it. A login response without that cookie is not itself a failure: the
// credentials are still persisted and no token is written.
//
// Returns true only if the sign-in succeeded and the outcome was persisted.
// Login failures and persistence errors are logged here and surface only as a
// false return.
func (m *Manager) SetUpAuthentication(ctx context.Context, email, password string) bool {
	client := m.newLoginClient(models.Credentials{Email: email, Password: password})

	if err := client.SignIn(ctx); err != nil {
		var loginErr *login.Error
		if errors.As(err, &loginErr) {
			m.log.Error().Int("status", loginErr.StatusCode).Msg("authentication failed")
		} else {
			m.log.Error().Err(err).Msg("login request failed")
		}
		return false
	}

	cookies := client.Cookies()

	m.log.Debug().Msg("writing authentication data to store")
	if err := m.store.SetCredentials(email, password); err != nil {
		m.log.Error().Err(err).Msg("unexpected error persisting credentials")
		return false
	}

	token, ok := cookies[models.SessionCookieName]
	if !ok {
		m.log.Debug().Msg("no token cookie in login response")
		return true
	}

	// The login response carries no expiry information, so the token is
	// stored without an expire date.
	if err := m.store.SetToken(token, ""); err != nil {
		m.log.Error().Err(err).Msg("unexpected error persisting token")
		return false
	}

	return true
}

// TearDownAuthentication deletes the stored session data unconditionally,
// forcing a fresh login on the next setup while keeping the credentials.
// Tearing down when no session exists is not an error.
func (m *Manager) TearDownAuthentication() {
	if err := m.store.DeleteSection(store.SectionToken); err != nil {
		m.log.Error().Err(err).Msg("unexpected error deleting session data")
		return
	}

	m.log.Debug().Msg("session data cleared")
}

// Authenticate builds the authenticated client configuration from stored
// state: basic-auth from the stored credentials, the fixed User-Agent, and
// the stored token as a session cookie.
//
// Returns nil — not an error — when no usable credentials are stored; "not
// yet logged in" is an expected steady state and is logged as a warning. A
// stored token is reused as-is: its expire date is not checked against the
// current time before the client is built.
func (m *Manager) Authenticate() *models.ClientConfig {
	credentials := m.store.Credentials()
	if !credentials.Complete() {
		m.log.Warn().Msg("no authentication data found")
		return nil
	}

	token := m.store.Token()

	return &models.ClientConfig{
		Email:     credentials.Email,
		Password:  credentials.Password,
		UserAgent: m.cfg.UserAgent,
		Token:     token.Token,
	}
}
