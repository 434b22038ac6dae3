// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/carpartcert/carcert-cli/models"
)

func Test_buildInsertLedgerCallQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	created := time.Date(2026, 10, 15, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	query, args, err := buildInsertLedgerCallQuery(b, models.LedgerCall{
		ID:        "call-1",
		SessionID: "session-1",
		Identity:  "appUser",
		Kind:      models.CallSubmit,
		Function:  "DeleteAsset",
		Args:      []string{"674.24354-2754962514"},
		Succeeded: true,
		Duration:  1500 * time.Millisecond,
		CreatedAt: created,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into ledger_calls")
	require.Contains(t, query, "$11")
	require.Len(t, args, len(ledgerCallColumns))

	require.Equal(t, "submit", args[3])
	require.Equal(t, `["674.24354-2754962514"]`, args[5])
	require.Equal(t, int64(1500), args[9])
	require.Equal(t, time.UTC, args[10].(time.Time).Location())
}

func Test_buildInsertLedgerCallQuery_NilArgsStoredAsEmptyArray(t *testing.T) {
	_, args, err := buildInsertLedgerCallQuery(sq.StatementBuilder, models.LedgerCall{Function: "GetAllAssets"})
	require.NoError(t, err)
	require.Equal(t, `[]`, args[5])
}

func Test_buildSelectLedgerCallsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.LedgerCallFilter
		wantParts  []string
		absent     []string
		wantArgs   []any
	}{
		{
			name:      "no filter",
			filter:    models.LedgerCallFilter{},
			wantParts: []string{"from ledger_calls", "order by created_at desc"},
			absent:    []string{"where", "limit"},
			wantArgs:  nil,
		},
		{
			name:      "function and limit",
			filter:    models.LedgerCallFilter{Function: "ReadAsset", Limit: 5},
			wantParts: []string{"where function_name = ?", "limit 5"},
			wantArgs:  []any{"ReadAsset"},
		},
		{
			name:      "identity",
			filter:    models.LedgerCallFilter{Identity: "Sender"},
			wantParts: []string{"where identity = ?"},
			absent:    []string{"limit"},
			wantArgs:  []any{"Sender"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectLedgerCallsQuery(sq.StatementBuilder, tt.filter)
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, part := range tt.wantParts {
				require.Contains(t, q, part)
			}
			for _, part := range tt.absent {
				require.NotContains(t, q, part)
			}
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
