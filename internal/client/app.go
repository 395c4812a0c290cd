// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/bitwarden"
	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/internal/store"
	"github.com/MKhiriev/go-warden/internal/tui"
	"github.com/MKhiriev/go-warden/models"
)

// App is the assembled application.
type App struct {
	cfg *config.Config
	log *logger.Logger

	runner bitwarden.CommandRunner
}

// NewApp wires an [App] around a validated configuration.
func NewApp(cfg *config.Config, log *logger.Logger) *App {
	return &App{
		cfg:    cfg,
		log:    log,
		runner: bitwarden.NewCommandRunner(),
	}
}

// clientConfig maps the tool configuration onto the session client's.
func (a *App) clientConfig() bitwarden.Config {
	return bitwarden.Config{
		Executable: a.cfg.Vault.Executable,
		ServerURL:  a.cfg.Vault.ServerURL,
		CACertPath: a.cfg.Vault.CARootCertificate,
	}
}

// newVaultClient builds a fresh session client. Each account of a backup
// run gets its own so no session state leaks between accounts.
func (a *App) newVaultClient(ctx context.Context) (service.VaultClient, error) {
	return bitwarden.NewClient(ctx, a.clientConfig(), a.runner, a.log.GetChildLogger())
}

// RunBackup performs one full backup run over every configured account.
func (a *App) RunBackup(ctx context.Context) (*service.RunReport, error) {
	if !a.cfg.Backup.SkipPreflight {
		if err := bitwarden.CheckServer(ctx, a.cfg.Vault.ServerURL, a.cfg.Vault.CARootCertificate, 0); err != nil {
			return nil, fmt.Errorf("preflight failed: %w", err)
		}
	}

	a.checkClientVersion(ctx)

	history, closeHistory := a.openHistory(ctx)
	defer closeHistory()

	svc := service.NewBackupService(a.cfg, a.newVaultClient, tui.NewTerminalPrompter(), history, a.log)

	return svc.Run(ctx)
}

// Status returns a fresh snapshot of the CLI's vault state.
func (a *App) Status(ctx context.Context) (*models.Status, error) {
	cli, err := a.newVaultClient(ctx)
	if err != nil {
		return nil, err
	}

	return cli.Status(ctx)
}

// History returns recorded export attempts matching the filter, newest
// first.
func (a *App) History(ctx context.Context, filter store.HistoryFilter) ([]models.BackupRecord, error) {
	if a.cfg.History.Disabled {
		return nil, fmt.Errorf("run history is disabled")
	}

	db, err := store.NewConnectSQLite(ctx, a.cfg.History, a.log)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return store.NewHistoryRepository(db, a.log).ListRecords(ctx, filter)
}

// checkClientVersion asks the CLI whether a newer release exists. The
// result only feeds a log line; failures never block the run.
func (a *App) checkClientVersion(ctx context.Context) {
	cli, err := bitwarden.NewClient(ctx, a.clientConfig(), a.runner, a.log.GetChildLogger())
	if err != nil {
		return
	}

	upToDate, err := cli.CheckClientUpdate(ctx)
	switch {
	case err != nil:
		a.log.Debug().Err(err).Msg("bw update check failed")
	case !upToDate:
		a.log.Warn().Msg("a newer bw CLI release is available")
	default:
		a.log.Debug().Msg("bw CLI is up to date")
	}
}

// openHistory opens the run-history store. History is best-effort during
// a backup: when disabled or unopenable the run proceeds without it.
func (a *App) openHistory(ctx context.Context) (service.HistoryRecorder, func()) {
	noop := func() {}

	if a.cfg.History.Disabled {
		return nil, noop
	}

	db, err := store.NewConnectSQLite(ctx, a.cfg.History, a.log)
	if err != nil {
		a.log.Warn().Err(err).Msg("run history unavailable, continuing without it")
		return nil, noop
	}

	if err = db.Migrate(); err != nil {
		a.log.Warn().Err(err).Msg("run history migration failed, continuing without it")
		db.Close()
		return nil, noop
	}

	return store.NewHistoryRepository(db, a.log), func() { db.Close() }
}
