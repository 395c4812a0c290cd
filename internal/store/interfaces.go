// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-warden/models"
)

// HistoryFilter narrows a ListRecords query. Zero-valued fields are not
// applied.
type HistoryFilter struct {
	// Account restricts results to one account email.
	Account string

	// Since restricts results to attempts finished at or after the given
	// moment.
	Since time.Time

	// Limit caps the number of returned records; <= 0 means no cap.
	Limit int
}

// HistoryRepository is the local run-history storage.
type HistoryRepository interface {
	// SaveRecord stores one export attempt.
	SaveRecord(ctx context.Context, record models.BackupRecord) error

	// ListRecords returns export attempts matching the filter, newest
	// first.
	ListRecords(ctx context.Context, filter HistoryFilter) ([]models.BackupRecord, error)
}
