package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidStoreConfigs indicates invalid backing-store settings
	// (for example, an empty store path).
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidLoginConfigs indicates invalid login endpoint settings
	// (for example, a malformed login URL or non-positive request timeout).
	ErrInvalidLoginConfigs = errors.New("invalid login configuration")
)
