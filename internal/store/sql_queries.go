package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/carpartcert/carcert-cli/models"
)

const ledgerCallsTable = "ledger_calls"

var ledgerCallColumns = []string{
	"id",
	"session_id",
	"identity",
	"kind",
	"function_name",
	"args",
	"succeeded",
	"error",
	"payload_size",
	"duration_ms",
	"created_at",
}

// buildInsertLedgerCallQuery renders the INSERT for one journal entry. Args
// are stored as a JSON array.
func buildInsertLedgerCallQuery(b sq.StatementBuilderType, call models.LedgerCall) (string, []any, error) {
	args := call.Args
	if args == nil {
		args = []string{}
	}
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		return "", nil, fmt.Errorf("encode args: %w", err)
	}

	return b.Insert(ledgerCallsTable).
		Columns(ledgerCallColumns...).
		Values(
			call.ID,
			call.SessionID,
			call.Identity,
			string(call.Kind),
			call.Function,
			string(encodedArgs),
			call.Succeeded,
			call.Error,
			call.PayloadSize,
			call.Duration.Milliseconds(),
			call.CreatedAt.UTC(),
		).
		ToSql()
}

// buildSelectLedgerCallsQuery renders the listing query for filter, newest
// entries first.
func buildSelectLedgerCallsQuery(b sq.StatementBuilderType, filter models.LedgerCallFilter) (string, []any, error) {
	query := b.Select(ledgerCallColumns...).
		From(ledgerCallsTable).
		OrderBy("created_at DESC", "id DESC")

	if filter.Function != "" {
		query = query.Where(sq.Eq{"function_name": filter.Function})
	}
	if filter.Identity != "" {
		query = query.Where(sq.Eq{"identity": filter.Identity})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}
