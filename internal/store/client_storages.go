package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
)

// ClientStorages groups the client-side repositories. JournalRepository is
// nil when the journal is disabled.
type ClientStorages struct {
	// JournalRepository records every ledger call of the session.
	JournalRepository JournalRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. An empty cfg.DSN disables the journal and returns empty storages.
//  2. postgres:// and postgresql:// DSNs connect through pgx; anything else
//     is a SQLite file, created if it does not exist.
//  3. Pending schema migrations are applied via [DB.Migrate].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientJournal, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DSN == "" {
		logger.Debug().Msg("journal disabled")
		return &ClientStorages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DSN, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("journal connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		JournalRepository: NewJournalRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the journal database, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
