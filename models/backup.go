// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupTarget names what one export file contains: the personal vault or
// one organization.
type BackupTarget string

const (
	// TargetPersonal is the account's own vault.
	TargetPersonal BackupTarget = "personal"

	// TargetOrganization is one organization's collections.
	TargetOrganization BackupTarget = "organization"
)

// BackupRecord is one row of the local run history: a single export attempt
// for a single target. It carries metadata only — vault contents never
// enter the history store.
type BackupRecord struct {
	// RunID groups all records of one backup run.
	RunID string

	// Account is the email of the account being backed up.
	Account string

	// Target tells whether the export covered the personal vault or an
	// organization.
	Target BackupTarget

	// TargetName is the organization name for organization exports, empty
	// for personal exports.
	TargetName string

	// Path is the export file the CLI was asked to write.
	Path string

	// Format is the export format used.
	Format ExportFormat

	// Success reports whether the CLI finished the export.
	Success bool

	// Error holds the failure reason when Success is false.
	Error string

	// CreatedAt is when this attempt finished.
	CreatedAt time.Time
}
