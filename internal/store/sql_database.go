// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/migrations"
)

// DB wraps the raw connection so repositories share one handle and one
// migration entry point.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the history schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
