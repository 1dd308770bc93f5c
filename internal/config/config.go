// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 EvickaStudio

package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration container for hugauth. It is
// populated from environment variables (optionally preloaded from a .env file
// by the bootstrap) with built-in defaults for every non-secret field.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is unset.
type Config struct {
	// Store holds backing-store settings.
	Store Store `envPrefix:"STORE_"`

	// Login holds remote login endpoint settings.
	Login Login `envPrefix:"LOGIN_"`

	// Auth holds optional first-run default credentials, used by the
	// bootstrap only when no credentials are stored yet.
	Auth Auth `envPrefix:"AUTH_"`
}

// Store holds configuration for the local backing store file.
type Store struct {
	// Path is the location of the INI-format credential/session file.
	// Defaults to "config.ini" in the working directory.
	// Env: STORE_PATH
	Path string `env:"PATH" envDefault:"config.ini"`
}

// Login holds settings for the remote login exchange and for the
// authenticated client configuration derived from stored state.
type Login struct {
	// URL is the remote service's login endpoint.
	// Env: LOGIN_URL
	URL string `env:"URL" envDefault:"https://huggingface.co/login"`

	// UserAgent is the literal User-Agent header value used on the login
	// exchange and on every authenticated client built from stored state.
	// Env: LOGIN_USER_AGENT
	UserAgent string `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko)"`

	// RequestTimeout bounds the single login HTTP request.
	// Env: LOGIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Auth holds first-run default credentials. Both fields may be empty, in
// which case a first run without stored credentials fails with a clear error
// instead of attempting a login with blank values.
type Auth struct {
	// Email is the default account email for first-time setup.
	// Env: AUTH_EMAIL
	Email string `env:"EMAIL"`

	// Password is the default account password for first-time setup.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetConfig builds a validated configuration from the environment.
//
// It parses env variables via [parseEnv] and validates the result; a wrapped
// error is returned if parsing fails or a required setting is invalid.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validate()
}
