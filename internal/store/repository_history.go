// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

// NewHistoryRepository returns the SQLite-backed run history.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) SaveRecord(ctx context.Context, record models.BackupRecord) error {
	log := logger.FromContext(ctx)

	_, err := h.DB.ExecContext(ctx, saveBackupRecord,
		record.RunID,
		record.Account,
		string(record.Target),
		record.TargetName,
		record.Path,
		string(record.Format),
		record.Success,
		record.Error,
		record.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveRecord").
			Str("run_id", record.RunID).
			Str("account", record.Account).
			Msg("failed to execute insert for backup record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (h *historyRepository) ListRecords(ctx context.Context, filter HistoryFilter) ([]models.BackupRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListRecords").
			Msg("failed to build history query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.ListRecords").
			Msg("failed to execute history query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.BackupRecord
	for rows.Next() {
		var rec models.BackupRecord
		if err = rows.Scan(
			&rec.RunID,
			&rec.Account,
			&rec.Target,
			&rec.TargetName,
			&rec.Path,
			&rec.Format,
			&rec.Success,
			&rec.Error,
			&rec.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "historyRepository.ListRecords").
				Msg("failed to scan backup record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
