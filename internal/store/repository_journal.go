package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/models"
)

// journalRepository is the SQL implementation of [JournalRepository] over
// the "ledger_calls" table.
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		db:     db,
		logger: logger,
	}
}

// Record inserts call. A failure the driver classifies as [Retryable] is
// attempted once more.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateLedgerCall].
//   - Zero affected rows → [ErrLedgerCallNotSaved].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *journalRepository) Record(ctx context.Context, call models.LedgerCall) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLedgerCallQuery(r.db.builder(), call)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Record").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*journalRepository.Record").Msg("retrying journal insert")
		result, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Record").Msg("error inserting ledger call")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDuplicateLedgerCall
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLedgerCallNotSaved
	}

	return nil
}

// Recent lists journal entries matching filter, newest first.
func (r *journalRepository) Recent(ctx context.Context, filter models.LedgerCallFilter) ([]models.LedgerCall, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLedgerCallsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Recent").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Recent").Msg("error selecting ledger calls")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	calls := make([]models.LedgerCall, 0)
	for rows.Next() {
		var (
			call        models.LedgerCall
			kind        string
			encodedArgs string
			durationMS  int64
		)
		if err = rows.Scan(
			&call.ID,
			&call.SessionID,
			&call.Identity,
			&kind,
			&call.Function,
			&encodedArgs,
			&call.Succeeded,
			&call.Error,
			&call.PayloadSize,
			&durationMS,
			&call.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err = json.Unmarshal([]byte(encodedArgs), &call.Args); err != nil {
			return nil, fmt.Errorf("%w: decode args of %s: %w", ErrScanningRows, call.ID, err)
		}
		call.Kind = models.CallKind(kind)
		call.Duration = time.Duration(durationMS) * time.Millisecond

		calls = append(calls, call)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return calls, nil
}
