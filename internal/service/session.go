package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/utils"
)

// Session is one open connection with its resolved contract. It must be
// closed exactly once by its owner; further Close calls are no-ops.
type Session struct {
	// ID is a UUIDv7 that tags log entries and journal records.
	ID string
	// Identity is the wallet label the session is connected as.
	Identity string

	conn     adapter.Connection
	contract adapter.Contract

	closeOnce sync.Once
	closed    atomic.Bool
	logger    *logger.Logger
}

// Contract returns the resolved contract handle.
func (s *Session) Contract() adapter.Contract {
	return s.contract
}

// Context returns ctx carrying the session id and a logger tagged with it.
func (s *Session) Context(ctx context.Context) context.Context {
	ctx = utils.WithSessionID(ctx, s.ID)
	return s.logger.WithContext(ctx)
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// Close releases the connection.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.conn.Close()
		s.logger.Info().Str("func", "Session.Close").Msg("gateway disconnected")
	})
}

type sessionService struct {
	ledger adapter.Ledger
	cfg    config.ClientLedger
	ids    idGenerator
	logger *logger.Logger
}

func NewSessionService(ledger adapter.Ledger, cfg config.ClientLedger, logger *logger.Logger) SessionService {
	return &sessionService{
		ledger: ledger,
		cfg:    cfg,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *sessionService) Open(ctx context.Context, identity string) (*Session, error) {
	log := s.logger.With().Str("identity", identity).Logger()

	profile, err := adapter.ReadConnectionProfile(s.cfg.ConnectionProfile)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Open").Str("profile", s.cfg.ConnectionProfile).Msg("error reading connection profile")
		return nil, err
	}

	wallet, err := s.ledger.OpenWallet(s.cfg.WalletPath)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Open").Str("wallet", s.cfg.WalletPath).Msg("error opening wallet")
		return nil, err
	}

	if !wallet.Exists(identity) {
		labels, listErr := wallet.List()
		if listErr != nil {
			log.Warn().Err(listErr).Str("func", "sessionService.Open").Msg("error listing wallet identities")
		}
		log.Warn().
			Str("func", "sessionService.Open").
			Str("wallet", s.cfg.WalletPath).
			Str("known", strings.Join(labels, ",")).
			Msg("identity is not enrolled")
		return nil, fmt.Errorf("%w: %q", ErrIdentityNotEnrolled, identity)
	}

	conn, err := s.ledger.Connect(ctx, adapter.ConnectOptions{
		Profile:     profile,
		Wallet:      wallet,
		Identity:    identity,
		AsLocalhost: s.cfg.AsLocalhost,
		Timeout:     s.cfg.Timeout,
	})
	if err != nil {
		log.Err(err).Str("func", "sessionService.Open").Msg("error connecting gateway")
		return nil, err
	}

	contract, err := conn.Contract(s.cfg.Channel, s.cfg.Contract)
	if err != nil {
		log.Err(err).
			Str("func", "sessionService.Open").
			Str("channel", s.cfg.Channel).
			Str("contract", s.cfg.Contract).
			Msg("error resolving contract")
		conn.Close()
		return nil, err
	}

	sessionID := s.ids.Generate()
	sessionLogger := s.logger.GetChildLogger(map[string]any{
		"identity":   identity,
		"session_id": sessionID,
	})
	sessionLogger.Info().
		Str("func", "sessionService.Open").
		Str("channel", s.cfg.Channel).
		Str("contract", contract.Name()).
		Msg("session opened")

	return &Session{
		ID:       sessionID,
		Identity: identity,
		conn:     conn,
		contract: contract,
		logger:   sessionLogger,
	}, nil
}
