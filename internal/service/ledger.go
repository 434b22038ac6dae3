package service

import (
	"context"
	"time"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/store"
	"github.com/carpartcert/carcert-cli/internal/utils"
	"github.com/carpartcert/carcert-cli/models"
)

type ledgerService struct {
	session *Session
	journal store.JournalRepository
	ids     idGenerator
	now     func() time.Time
}

// NewLedgerService returns a [LedgerService] bound to session. journal may be
// nil, which disables recording.
func NewLedgerService(session *Session, journal store.JournalRepository) LedgerService {
	return &ledgerService{
		session: session,
		journal: journal,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

func (s *ledgerService) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return s.invoke(ctx, models.CallEvaluate, fn, args)
}

func (s *ledgerService) Submit(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return s.invoke(ctx, models.CallSubmit, fn, args)
}

func (s *ledgerService) invoke(ctx context.Context, kind models.CallKind, fn string, args []string) ([]byte, error) {
	if s.session.Closed() {
		return nil, ErrSessionClosed
	}

	log := logger.FromContext(ctx)
	contract := s.session.Contract()

	started := s.now()
	var (
		payload []byte
		err     error
	)
	if kind == models.CallSubmit {
		payload, err = contract.Submit(ctx, fn, args...)
	} else {
		payload, err = contract.Evaluate(ctx, fn, args...)
	}
	elapsed := s.now().Sub(started)

	if err != nil {
		log.Err(err).
			Str("func", "ledgerService.invoke").
			Str("kind", string(kind)).
			Str("function", fn).
			Strs("args", args).
			Str("class", string(adapter.Classify(err))).
			Dur("duration", elapsed).
			Msg("ledger call failed")
	} else {
		log.Info().
			Str("func", "ledgerService.invoke").
			Str("kind", string(kind)).
			Str("function", fn).
			Strs("args", args).
			Int("payload_size", len(payload)).
			Dur("duration", elapsed).
			Msg("ledger call succeeded")
	}

	s.record(ctx, kind, fn, args, payload, err, started, elapsed)

	return payload, err
}

// record writes the call to the journal. Failures are logged only.
func (s *ledgerService) record(ctx context.Context, kind models.CallKind, fn string, args []string, payload []byte, callErr error, started time.Time, elapsed time.Duration) {
	if s.journal == nil {
		return
	}

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		sessionID = s.session.ID
	}

	call := models.LedgerCall{
		ID:          s.ids.Generate(),
		SessionID:   sessionID,
		Identity:    s.session.Identity,
		Kind:        kind,
		Function:    fn,
		Args:        args,
		Succeeded:   callErr == nil,
		PayloadSize: len(payload),
		Duration:    elapsed,
		CreatedAt:   started,
	}
	if callErr != nil {
		call.Error = callErr.Error()
	}

	if err := s.journal.Record(ctx, call); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "ledgerService.record").
			Str("function", fn).
			Msg("error recording ledger call")
	}
}
