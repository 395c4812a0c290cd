// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
	"github.com/google/uuid"
)

// exportTimestampLayout produces the YYYYMMDD-HHMM stamp embedded in export
// file names. It is captured once per account so all of an account's files
// share the same stamp.
const exportTimestampLayout = "20060102-1504"

// ClientFactory builds a fresh session client for one account. Every
// account gets its own client so that no session state leaks between
// accounts.
type ClientFactory func(ctx context.Context) (VaultClient, error)

// AccountResult is the outcome of processing one configured account.
type AccountResult struct {
	Label string
	Email string

	// Files lists the export files successfully written for the account.
	Files []string

	// Err is non-nil when the account was skipped or failed; the rest of
	// the run is unaffected.
	Err error
}

// RunReport summarizes one backup run across all accounts.
type RunReport struct {
	RunID     string
	StartedAt time.Time
	Accounts  []AccountResult
}

// Failed returns how many accounts did not complete their exports.
func (r *RunReport) Failed() int {
	n := 0
	for _, acct := range r.Accounts {
		if acct.Err != nil {
			n++
		}
	}
	return n
}

// BackupService orchestrates a full backup run: for every configured
// account it drives login/unlock through the matching [Authenticator],
// exports the personal vault plus every owned organization, and logs out.
// Accounts are processed strictly one at a time — the CLI keeps global
// single-account session state, so concurrent sessions are unsafe.
type BackupService struct {
	cfg       *config.Config
	newClient ClientFactory
	prompter  Prompter
	history   HistoryRecorder
	log       *logger.Logger

	// now is swapped out in tests to pin export file names.
	now func() time.Time
}

// NewBackupService wires a [BackupService]. history may be nil, which
// disables run-history recording.
func NewBackupService(cfg *config.Config, factory ClientFactory, prompter Prompter, history HistoryRecorder, log *logger.Logger) *BackupService {
	return &BackupService{
		cfg:       cfg,
		newClient: factory,
		prompter:  prompter,
		history:   history,
		log:       log,
		now:       time.Now,
	}
}

// Run processes every configured account in deterministic (label) order.
// One account's failure never aborts the batch: it is reported in the
// returned [RunReport] and processing moves on. The returned error is
// reserved for run-level problems such as an unusable export directory.
func (s *BackupService) Run(ctx context.Context) (*RunReport, error) {
	if err := s.ensureExportDir(); err != nil {
		return nil, err
	}

	report := &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: s.now(),
	}

	log := &logger.Logger{Logger: s.log.With().Str("run_id", report.RunID).Logger()}
	log.Info().Int("accounts", len(s.cfg.Accounts)).Msg("backup run started")

	labels := make([]string, 0, len(s.cfg.Accounts))
	for label := range s.cfg.Accounts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		account := s.cfg.Accounts[label]

		acctLog := &logger.Logger{Logger: log.With().Str("account", account.Email).Logger()}
		result := s.backupAccount(acctLog.WithContext(ctx), report.RunID, label, account)
		if result.Err != nil {
			acctLog.Error().Err(result.Err).Msg("account backup failed")
		} else {
			acctLog.Info().Int("files", len(result.Files)).Msg("account backup finished")
		}

		report.Accounts = append(report.Accounts, result)
	}

	log.Info().Int("failed", report.Failed()).Msg("backup run finished")
	return report, nil
}

func (s *BackupService) backupAccount(ctx context.Context, runID, label string, account config.Account) AccountResult {
	result := AccountResult{Label: label, Email: account.Email}

	client, err := s.newClient(ctx)
	if err != nil {
		result.Err = fmt.Errorf("create session client: %w", err)
		return result
	}

	// Leave no session behind whatever happens below.
	defer func() {
		if err := client.Logout(ctx); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("logout failed")
		}
	}()

	password, err := s.prompter.Password(ctx,
		fmt.Sprintf("Enter account password for %s on %s", account.Email, client.ServerURL()))
	if err != nil {
		result.Err = fmt.Errorf("obtain account password: %w", err)
		return result
	}

	// Clear any stale session from a previous run before authenticating.
	if err := client.Logout(ctx); err != nil {
		result.Err = fmt.Errorf("clear stale session: %w", err)
		return result
	}

	auth := NewAuthenticator(account, client)
	ok, err := auth.UnlockVault(ctx, password)
	if err != nil {
		result.Err = fmt.Errorf("unlock vault: %w", err)
		return result
	}
	if !ok {
		result.Err = fmt.Errorf("unlock vault: rejected for %s", account.Email)
		return result
	}

	format := s.cfg.Backup.Format
	if account.Format != "" {
		format = account.Format
	}

	encryptPassword := ""
	if format.Encrypted() {
		encryptPassword, err = s.prompter.Password(ctx,
			fmt.Sprintf("Enter backup password for %s on %s", account.Email, client.ServerURL()))
		if err != nil {
			result.Err = fmt.Errorf("obtain encryption password: %w", err)
			return result
		}
	}

	files, err := s.exportAll(ctx, runID, client, account.Email, format, encryptPassword)
	result.Files = files
	result.Err = err
	return result
}

// exportAll writes the personal vault and every owned or administered
// organization to timestamped files. The first failed export aborts the
// account's remaining targets.
func (s *BackupService) exportAll(ctx context.Context, runID string, client VaultClient, email string, format models.ExportFormat, encryptPassword string) ([]string, error) {
	stamp := s.now().Format(exportTimestampLayout)
	var files []string

	personalPath := filepath.Join(s.cfg.Backup.Dir, fmt.Sprintf("%s-%s.%s", email, stamp, format.Ext()))
	ok, err := client.ExportPersonalVault(ctx, personalPath, format, encryptPassword)
	s.record(ctx, models.BackupRecord{
		RunID:   runID,
		Account: email,
		Target:  models.TargetPersonal,
		Path:    personalPath,
		Format:  format,
		Success: ok && err == nil,
		Error:   errText(err, ok),
	})
	if err != nil {
		return files, fmt.Errorf("export personal vault: %w", err)
	}
	if !ok {
		return files, fmt.Errorf("export personal vault to %s failed", personalPath)
	}
	files = append(files, personalPath)

	orgs, err := client.ListOrganizations(ctx)
	if err != nil {
		return files, fmt.Errorf("list organizations: %w", err)
	}

	for _, org := range orgs {
		if !org.Exportable() {
			continue
		}

		orgPath := filepath.Join(s.cfg.Backup.Dir, fmt.Sprintf("%s-%s-%s.%s", email, org.Name, stamp, format.Ext()))
		ok, err := client.ExportOrganization(ctx, orgPath, org.ID, format, encryptPassword)
		s.record(ctx, models.BackupRecord{
			RunID:      runID,
			Account:    email,
			Target:     models.TargetOrganization,
			TargetName: org.Name,
			Path:       orgPath,
			Format:     format,
			Success:    ok && err == nil,
			Error:      errText(err, ok),
		})
		if err != nil {
			return files, fmt.Errorf("export organization %s: %w", org.Name, err)
		}
		if !ok {
			return files, fmt.Errorf("export organization %s to %s failed", org.Name, orgPath)
		}
		files = append(files, orgPath)
	}

	return files, nil
}

func (s *BackupService) record(ctx context.Context, record models.BackupRecord) {
	if s.history == nil {
		return
	}

	record.CreatedAt = s.now()
	if err := s.history.SaveRecord(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to record export in history")
	}
}

func (s *BackupService) ensureExportDir() error {
	dir := s.cfg.Backup.Dir
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create export directory %s: %w", dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat export directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export path %s is not a directory", dir)
	}

	return nil
}

func errText(err error, ok bool) string {
	if err != nil {
		return err.Error()
	}
	if !ok {
		return "export rejected by CLI"
	}
	return ""
}
