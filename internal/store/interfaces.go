// Package store persists the local invocation journal.
//
// The journal lives in SQLite (default) or PostgreSQL, selected by the DSN
// handed to [NewClientStorages]. Queries are built with squirrel using the
// placeholder format of the active driver and the schema is applied by the
// migrations package on connect.
package store

import (
	"context"

	"github.com/carpartcert/carcert-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository records ledger calls and lists them back.
type JournalRepository interface {
	// Record stores one call. Calls are append-only.
	Record(ctx context.Context, call models.LedgerCall) error

	// Recent returns recorded calls matching filter, newest first.
	Recent(ctx context.Context, filter models.LedgerCallFilter) ([]models.LedgerCall, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
