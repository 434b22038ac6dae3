package service

import (
	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/store"
)

// ClientServices groups the session-independent services. Ledger services
// are created per session with [NewLedgerService].
type ClientServices struct {
	SessionService SessionService
	JournalService JournalService

	journal store.JournalRepository
}

func NewClientServices(ledger adapter.Ledger, storages *store.ClientStorages, cfg config.ClientLedger, logger *logger.Logger) *ClientServices {
	var journal store.JournalRepository
	if storages != nil {
		journal = storages.JournalRepository
	}

	return &ClientServices{
		SessionService: NewSessionService(ledger, cfg, logger),
		JournalService: NewJournalService(journal),
		journal:        journal,
	}
}

// LedgerService returns a [LedgerService] for session that records into the
// configured journal.
func (s *ClientServices) LedgerService(session *Session) LedgerService {
	return NewLedgerService(session, s.journal)
}
