package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the journal whether a failed write is worth one
// more attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: a dropped connection, a busy
	// database or a rolled back transaction.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for journals
// stored in PostgreSQL through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE with
// [classifyJournalWrite]. Errors that did not come from the server are
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return classifyJournalWrite(pgErr.Code)
}

// classifyJournalWrite decides for the single INSERT of a ledger call.
// Retried:
//   - class 08, connection exceptions
//   - class 40, serialization failures and deadlocks
//   - 57P01 and 57P03, the server is restarting
//   - 53300, too many connections
//
// A unique_violation is reported as [ErrDuplicateLedgerCall] by the
// repository and is never retried, like every other constraint or syntax
// error.
func classifyJournalWrite(code string) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	}

	switch code {
	case pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow,
		pgerrcode.TooManyConnections:
		return Retryable
	}

	return NonRetryable
}
