// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildListRecordsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListRecordsQuery(HistoryFilter{})
	require.NoError(t, err)

	require.Contains(t, query, "FROM backup_runs")
	require.Contains(t, query, "ORDER BY created_at DESC")
	require.NotContains(t, query, "WHERE")
	require.NotContains(t, query, "LIMIT")
	require.Empty(t, args)
}

func Test_buildListRecordsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListRecordsQuery(HistoryFilter{})
	require.NoError(t, err)

	for _, column := range []string{
		"run_id",
		"account",
		"target",
		"target_name",
		"path",
		"format",
		"success",
		"error",
		"created_at",
	} {
		require.Contains(t, query, column)
	}
	require.NotContains(t, query, "*")
}

func Test_buildListRecordsQuery_Filters(t *testing.T) {
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter HistoryFilter
		check  func(t *testing.T, query string, args []any)
	}{
		{
			name:   "account filter adds equality clause",
			filter: HistoryFilter{Account: "ops@example.com"},
			check: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "account = ?")
				require.Equal(t, []any{"ops@example.com"}, args)
			},
		},
		{
			name:   "since filter adds lower bound",
			filter: HistoryFilter{Since: since},
			check: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "created_at >= ?")
				require.Equal(t, []any{since}, args)
			},
		},
		{
			name:   "limit caps result set",
			filter: HistoryFilter{Limit: 10},
			check: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "LIMIT 10")
				require.Empty(t, args)
			},
		},
		{
			name:   "all filters combine with AND",
			filter: HistoryFilter{Account: "ops@example.com", Since: since, Limit: 5},
			check: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "account = ?")
				require.Contains(t, query, "created_at >= ?")
				require.Contains(t, query, "LIMIT 5")
				require.Equal(t, 1, strings.Count(query, "AND"))
				require.Equal(t, []any{"ops@example.com", since}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRecordsQuery(tt.filter)
			require.NoError(t, err)
			tt.check(t, query, args)
		})
	}
}
