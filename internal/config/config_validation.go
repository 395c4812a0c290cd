// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validateCommon checks the settings every command depends on.
func (cfg *Config) validateCommon() error {
	if cfg.Vault.Executable == "" || cfg.Vault.ServerURL == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Backup.Format != "" && !cfg.Backup.Format.Valid() {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidBackupConfigs, cfg.Backup.Format)
	}

	return nil
}

// validateForBackup additionally requires a usable set of accounts.
//
// Invariant per account: email is required, and client_id/client_secret must
// be present together or not at all — a half-configured API key pair would
// silently fall back to password login, which is never what the operator
// intended.
func (cfg *Config) validateForBackup() error {
	if err := cfg.validateCommon(); err != nil {
		return err
	}

	if cfg.Backup.Dir == "" {
		return fmt.Errorf("%w: empty export directory", ErrInvalidBackupConfigs)
	}

	if len(cfg.Accounts) == 0 {
		return ErrNoAccountsConfigured
	}

	for label, acct := range cfg.Accounts {
		if acct.Email == "" {
			return fmt.Errorf("%w: account %q has no email", ErrInvalidAccountConfigs, label)
		}

		if (acct.ClientID == "") != (acct.ClientSecret == "") {
			return fmt.Errorf("%w: account %q has an incomplete api key pair", ErrInvalidAccountConfigs, label)
		}

		if acct.Format != "" && !acct.Format.Valid() {
			return fmt.Errorf("%w: account %q has unsupported format %q", ErrInvalidAccountConfigs, label, acct.Format)
		}
	}

	return nil
}
