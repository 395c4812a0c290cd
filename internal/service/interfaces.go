// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-warden/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_deps_mock.go -package=mock

// VaultClient is the slice of the session client the service layer drives.
// The concrete implementation is [github.com/MKhiriev/go-warden/internal/bitwarden.Client];
// the interface exists so authenticator and orchestration logic can be
// tested against scripted doubles.
//
// Boolean results follow the CLI contract: false means the operation was
// rejected by the executable (ordinary failure), while errors report state
// or argument precondition violations and spawn failures.
type VaultClient interface {
	// ServerURL returns the server the client is configured against.
	ServerURL() string

	// Status returns a fresh `bw status` snapshot, or nil when the
	// command fails.
	Status(ctx context.Context) (*models.Status, error)

	// LoginWithPassword authenticates and unlocks in one step.
	// maxAttempts <= 0 selects the default retry budget.
	LoginWithPassword(ctx context.Context, email, password string, maxAttempts int) (bool, error)

	// LoginWithAPIKey authenticates without unlocking; a follow-up Unlock
	// is required before the vault can be used.
	LoginWithAPIKey(ctx context.Context, clientID, clientSecret string, maxAttempts int) (bool, error)

	// Unlock derives a session from the master password.
	Unlock(ctx context.Context, password string) (bool, error)

	// Logout ends any active session; it always clears the local token.
	Logout(ctx context.Context) error

	// ListOrganizations returns the organizations visible to the session.
	ListOrganizations(ctx context.Context) ([]models.Organization, error)

	// ExportPersonalVault exports the personal vault to path.
	ExportPersonalVault(ctx context.Context, path string, format models.ExportFormat, encryptPassword string) (bool, error)

	// ExportOrganization exports one organization's collections to path.
	ExportOrganization(ctx context.Context, path, organizationID string, format models.ExportFormat, encryptPassword string) (bool, error)
}

// Authenticator unlocks one account's vault from its master password,
// regardless of which login mode the account uses.
type Authenticator interface {
	// UnlockVault performs the login/unlock sequence appropriate for the
	// account's credential shape. false reports an ordinary unlock
	// rejection; errors report state violations or, for API key accounts,
	// a server-rejected authentication ([AuthenticationError]).
	UnlockVault(ctx context.Context, password string) (bool, error)
}

// Prompter obtains secrets interactively from the operator.
type Prompter interface {
	// Password shows prompt and returns the entered secret. An aborted
	// prompt returns an error, which skips the current account.
	Password(ctx context.Context, prompt string) (string, error)
}

// HistoryRecorder persists export attempts to the local run history.
type HistoryRecorder interface {
	// SaveRecord stores one export attempt. Failures must not disturb the
	// backup run; callers log and continue.
	SaveRecord(ctx context.Context, record models.BackupRecord) error
}
