// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-warden/models"
)

// Config is the top-level configuration container for go-warden. It
// aggregates all sub-configurations and is populated by merging values from
// command-line flags, environment variables, and the JSON accounts file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All env lookups additionally carry the WARDEN_ prefix.
type Config struct {
	// Vault holds settings of the external Bitwarden CLI and the server it
	// talks to.
	Vault Vault `envPrefix:"VAULT_"`

	// Backup holds settings of the export run: output directory and the
	// run-level default format.
	Backup Backup `envPrefix:"BACKUP_"`

	// History holds settings of the local backup-run history database.
	History History `envPrefix:"HISTORY_"`

	// Accounts maps a human-readable label to one account to back up.
	// Populated from the JSON accounts file only.
	Accounts map[string]Account

	// AccountsFilePath is the path to the JSON accounts file. Populated from
	// the backup command's positional argument or the WARDEN_CONFIG variable.
	AccountsFilePath string `env:"CONFIG"`
}

// Vault holds settings of the external vault client.
type Vault struct {
	// Executable is the path to the Bitwarden CLI binary.
	// Env: WARDEN_VAULT_EXECUTABLE
	Executable string `env:"EXECUTABLE"`

	// ServerURL is the Bitwarden/Vaultwarden server the accounts live on.
	// Env: WARDEN_VAULT_SERVER_URL
	ServerURL string `env:"SERVER_URL" json:"server_url"`

	// CARootCertificate is an optional path to a root CA certificate for
	// servers with self-signed certificates. Handed to the CLI subprocess
	// via NODE_EXTRA_CA_CERTS.
	// Env: WARDEN_VAULT_CA_ROOT_CERTIFICATE
	CARootCertificate string `env:"CA_ROOT_CERTIFICATE" json:"ca_root_certificate"`
}

// Backup holds settings of the export run.
type Backup struct {
	// Dir is the directory export files are written to. Created if missing.
	// Env: WARDEN_BACKUP_DIR
	Dir string `env:"DIR"`

	// Format is the run-level default export format. Individual accounts
	// may override it.
	// Env: WARDEN_BACKUP_FORMAT
	Format models.ExportFormat `env:"FORMAT"`

	// SkipPreflight disables the server reachability probe that normally
	// runs before any account is processed.
	// Env: WARDEN_BACKUP_SKIP_PREFLIGHT
	SkipPreflight bool `env:"SKIP_PREFLIGHT"`
}

// History holds settings of the local run-history store.
type History struct {
	// DSN is the SQLite file path for the history database. An empty value
	// resolves to ~/.gowarden/history.db at startup.
	// Env: WARDEN_HISTORY_DSN
	DSN string `env:"DSN"`

	// Disabled turns off run-history recording entirely.
	// Env: WARDEN_HISTORY_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Account identifies one vault account to back up.
//
// If ClientID and ClientSecret are both present the account authenticates
// with an API key (login and unlock are separate steps); otherwise it
// authenticates with the master password alone.
type Account struct {
	// Email is the address the account is registered under. Required.
	Email string `json:"email"`

	// ClientID is the personal API key client id from the account settings.
	ClientID string `json:"client_id"`

	// ClientSecret is the personal API key client secret.
	ClientSecret string `json:"client_secret"`

	// Format optionally overrides the run-level export format for this
	// account.
	Format models.ExportFormat `json:"format"`
}

// UsesAPIKey reports whether the account carries a complete API key
// credential pair.
func (a Account) UsesAPIKey() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

// GetBackupConfig assembles the configuration for a backup run from flags,
// environment, the JSON accounts file, and defaults, then validates it.
// The accounts file must exist and define at least one account.
func GetBackupConfig(flagCfg *Config) (*Config, error) {
	cfg, err := newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building backup config: %w", err)
	}

	return cfg, cfg.validateForBackup()
}

// GetToolConfig assembles the configuration for auxiliary commands (status,
// history) that do not require an accounts file. The JSON file is still
// merged when a path is supplied, so server settings can come from it.
func GetToolConfig(flagCfg *Config) (*Config, error) {
	cfg, err := newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building tool config: %w", err)
	}

	return cfg, cfg.validateCommon()
}
