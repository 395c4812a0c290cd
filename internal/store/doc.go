// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local backup-run history in a SQLite file.
// The history holds metadata about export attempts only; exported vault
// contents never pass through this package.
package store
