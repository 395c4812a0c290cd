package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault client settings
	// (for example, an empty executable path or server URL).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidBackupConfigs indicates invalid backup run settings
	// (for example, an unsupported default export format).
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
	// ErrNoAccountsConfigured indicates the accounts file defined no
	// accounts to back up.
	ErrNoAccountsConfigured = errors.New("no accounts configured")
	// ErrInvalidAccountConfigs indicates an account entry that cannot be
	// used (missing email, half of an API key pair, unknown format).
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
)
