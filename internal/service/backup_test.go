// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/mock"
	"github.com/MKhiriev/go-warden/models"
)

var testStamp = time.Date(2026, 3, 14, 2, 30, 0, 0, time.UTC)

// newTestService wires a BackupService whose factory hands out the given
// clients in order, one per processed account.
func newTestService(t *testing.T, cfg *config.Config, clients []*mock.MockVaultClient, prompter Prompter, history HistoryRecorder) *BackupService {
	t.Helper()

	next := 0
	factory := func(ctx context.Context) (VaultClient, error) {
		if next >= len(clients) {
			t.Fatal("factory called more often than there are accounts")
		}
		client := clients[next]
		next++
		return client, nil
	}

	svc := NewBackupService(cfg, factory, prompter, history, logger.Nop())
	svc.now = func() time.Time { return testStamp }
	return svc
}

func testConfig(dir string, accounts map[string]config.Account) *config.Config {
	return &config.Config{
		Vault:    config.Vault{Executable: "bw", ServerURL: "https://vault.example.com"},
		Backup:   config.Backup{Dir: dir, Format: models.FormatJSON},
		Accounts: accounts,
	}
}

func expectHappyAccount(client *mock.MockVaultClient, email string, orgs []models.Organization) {
	client.EXPECT().ServerURL().Return("https://vault.example.com").AnyTimes()
	client.EXPECT().Logout(gomock.Any()).Return(nil).Times(2)
	client.EXPECT().LoginWithPassword(gomock.Any(), email, "hunter2", 0).Return(true, nil)
	client.EXPECT().ExportPersonalVault(gomock.Any(), gomock.Any(), models.FormatJSON, "").Return(true, nil)
	client.EXPECT().ListOrganizations(gomock.Any()).Return(orgs, nil)
}

func TestBackupService_Run_OneAccountFailureDoesNotAbortTheRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"alpha": {Email: "alpha@example.com"},
		"beta":  {Email: "beta@example.com"},
	})

	// alpha's unlock is rejected; beta finishes normally.
	alpha := mock.NewMockVaultClient(ctrl)
	alpha.EXPECT().ServerURL().Return("https://vault.example.com").AnyTimes()
	alpha.EXPECT().Logout(gomock.Any()).Return(nil).Times(2)
	alpha.EXPECT().LoginWithPassword(gomock.Any(), "alpha@example.com", "hunter2", 0).Return(false, nil)

	beta := mock.NewMockVaultClient(ctrl)
	expectHappyAccount(beta, "beta@example.com", nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("hunter2", nil).Times(2)

	svc := newTestService(t, cfg, []*mock.MockVaultClient{alpha, beta}, prompter, nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Accounts, 2)
	require.Equal(t, 1, report.Failed())

	// Labels are processed in sorted order.
	require.Equal(t, "alpha", report.Accounts[0].Label)
	require.Error(t, report.Accounts[0].Err)
	require.Empty(t, report.Accounts[0].Files)

	require.Equal(t, "beta", report.Accounts[1].Label)
	require.NoError(t, report.Accounts[1].Err)
	require.Equal(t,
		[]string{filepath.Join(dir, "beta@example.com-20260314-0230.json")},
		report.Accounts[1].Files)
}

func TestBackupService_Run_ExportsOwnedAndAdministeredOrganizationsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com"},
	})

	orgs := []models.Organization{
		{ID: "org-1", Name: "Acme", Type: models.OrgRoleOwner},
		{ID: "org-2", Name: "Globex", Type: models.OrgRoleUser},
		{ID: "org-3", Name: "Initech", Type: models.OrgRoleAdmin},
		{ID: "org-4", Name: "Umbrella", Type: models.OrgRoleManager},
	}

	client := mock.NewMockVaultClient(ctrl)
	expectHappyAccount(client, "ops@example.com", orgs)
	client.EXPECT().
		ExportOrganization(gomock.Any(), filepath.Join(dir, "ops@example.com-Acme-20260314-0230.json"), "org-1", models.FormatJSON, "").
		Return(true, nil)
	client.EXPECT().
		ExportOrganization(gomock.Any(), filepath.Join(dir, "ops@example.com-Initech-20260314-0230.json"), "org-3", models.FormatJSON, "").
		Return(true, nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("hunter2", nil)

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, report.Failed())

	// Personal vault first, then exportable organizations in listed order,
	// all sharing one timestamp.
	require.Equal(t, []string{
		filepath.Join(dir, "ops@example.com-20260314-0230.json"),
		filepath.Join(dir, "ops@example.com-Acme-20260314-0230.json"),
		filepath.Join(dir, "ops@example.com-Initech-20260314-0230.json"),
	}, report.Accounts[0].Files)
}

func TestBackupService_Run_EncryptedFormatPromptsForBackupPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	// The account overrides the run-level json default.
	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com", Format: models.FormatEncryptedJSON},
	})

	client := mock.NewMockVaultClient(ctrl)
	client.EXPECT().ServerURL().Return("https://vault.example.com").AnyTimes()
	client.EXPECT().Logout(gomock.Any()).Return(nil).Times(2)
	client.EXPECT().LoginWithPassword(gomock.Any(), "ops@example.com", "hunter2", 0).Return(true, nil)
	client.EXPECT().
		ExportPersonalVault(gomock.Any(), filepath.Join(dir, "ops@example.com-20260314-0230.json"), models.FormatEncryptedJSON, "backup-pw").
		Return(true, nil)
	client.EXPECT().ListOrganizations(gomock.Any()).Return(nil, nil)

	prompter := mock.NewMockPrompter(ctrl)
	gomock.InOrder(
		prompter.EXPECT().
			Password(gomock.Any(), "Enter account password for ops@example.com on https://vault.example.com").
			Return("hunter2", nil),
		prompter.EXPECT().
			Password(gomock.Any(), "Enter backup password for ops@example.com on https://vault.example.com").
			Return("backup-pw", nil),
	)

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, report.Failed())
}

func TestBackupService_Run_AbortedPromptSkipsAccountButLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com"},
	})

	client := mock.NewMockVaultClient(ctrl)
	client.EXPECT().ServerURL().Return("https://vault.example.com").AnyTimes()
	// Only the deferred logout runs; authentication is never attempted.
	client.EXPECT().Logout(gomock.Any()).Return(nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("", errors.New("prompt aborted"))

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Failed())
	require.ErrorContains(t, report.Accounts[0].Err, "obtain account password")
}

func TestBackupService_Run_FirstFailedExportAbortsRemainingTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com"},
	})

	orgs := []models.Organization{
		{ID: "org-1", Name: "Acme", Type: models.OrgRoleOwner},
		{ID: "org-2", Name: "Initech", Type: models.OrgRoleOwner},
	}

	client := mock.NewMockVaultClient(ctrl)
	expectHappyAccount(client, "ops@example.com", orgs)
	// Acme's export is rejected; Initech must not be attempted.
	client.EXPECT().
		ExportOrganization(gomock.Any(), gomock.Any(), "org-1", models.FormatJSON, "").
		Return(false, nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("hunter2", nil)

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Failed())
	require.ErrorContains(t, report.Accounts[0].Err, "export organization Acme")

	// The personal export had already succeeded and stays reported.
	require.Equal(t,
		[]string{filepath.Join(dir, "ops@example.com-20260314-0230.json")},
		report.Accounts[0].Files)
}

func TestBackupService_Run_RecordsHistoryPerTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com"},
	})

	orgs := []models.Organization{
		{ID: "org-1", Name: "Acme", Type: models.OrgRoleOwner},
	}

	client := mock.NewMockVaultClient(ctrl)
	expectHappyAccount(client, "ops@example.com", orgs)
	client.EXPECT().
		ExportOrganization(gomock.Any(), gomock.Any(), "org-1", models.FormatJSON, "").
		Return(false, nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("hunter2", nil)

	history := mock.NewMockHistoryRecorder(ctrl)
	var saved []models.BackupRecord
	history.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.BackupRecord) error {
			saved = append(saved, rec)
			return nil
		}).
		Times(2)

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, history)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, saved, 2)

	require.Equal(t, models.TargetPersonal, saved[0].Target)
	require.True(t, saved[0].Success)
	require.Equal(t, report.RunID, saved[0].RunID)

	require.Equal(t, models.TargetOrganization, saved[1].Target)
	require.Equal(t, "Acme", saved[1].TargetName)
	require.False(t, saved[1].Success)
	require.NotEmpty(t, saved[1].Error)
}

// History failures are logged and swallowed; the run keeps its outcome.
func TestBackupService_Run_HistoryFailureDoesNotFailTheRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	cfg := testConfig(dir, map[string]config.Account{
		"main": {Email: "ops@example.com"},
	})

	client := mock.NewMockVaultClient(ctrl)
	expectHappyAccount(client, "ops@example.com", nil)

	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), gomock.Any()).Return("hunter2", nil)

	history := mock.NewMockHistoryRecorder(ctrl)
	history.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("database is locked"))

	svc := newTestService(t, cfg, []*mock.MockVaultClient{client}, prompter, history)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, report.Failed())
}
