// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	saveBackupRecord = `
		INSERT INTO backup_runs (
			run_id,
			account,
			target,
			target_name,
			path,
			format,
			success,
			error,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// buildListRecordsQuery builds the filtered history SELECT. Zero-valued
// filter fields add no clause.
func buildListRecordsQuery(filter HistoryFilter) (string, []any, error) {
	builder := sq.
		Select(
			"run_id",
			"account",
			"target",
			"target_name",
			"path",
			"format",
			"success",
			"error",
			"created_at",
		).
		From("backup_runs").
		OrderBy("created_at DESC, rowid DESC")

	if filter.Account != "" {
		builder = builder.Where(sq.Eq{"account": filter.Account})
	}
	if !filter.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.Since})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	return builder.ToSql()
}
