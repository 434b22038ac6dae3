package service

import (
	"context"

	"github.com/carpartcert/carcert-cli/internal/store"
	"github.com/carpartcert/carcert-cli/models"
)

type journalService struct {
	journal store.JournalRepository
}

// NewJournalService returns a [JournalService]; journal may be nil.
func NewJournalService(journal store.JournalRepository) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) Recent(ctx context.Context, filter models.LedgerCallFilter) ([]models.LedgerCall, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}

	return s.journal.Recent(ctx, filter)
}
