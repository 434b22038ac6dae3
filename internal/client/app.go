package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/carpartcert/carcert-cli/internal/app"
	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/profiles"
	"github.com/carpartcert/carcert-cli/internal/service"
	"github.com/carpartcert/carcert-cli/internal/shell"
)

// App runs one profile's menu over one ledger session.
type App struct {
	profile  profiles.Profile
	cfg      *config.ClientConfig
	services *service.ClientServices
	term     *shell.IO
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(profile profiles.Profile, cfg *config.ClientConfig, services *service.ClientServices, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		profile:  profile,
		cfg:      cfg,
		services: services,
		term:     shell.NewIO(in, out),
		logger:   logger,
	}
}

// Run opens the session, runs the menu until exit and closes the session.
// A missing identity prints enrollment guidance and returns
// [service.ErrIdentityNotEnrolled].
func (a *App) Run(ctx context.Context) error {
	identity := a.cfg.Ledger.Identity
	if identity == "" {
		identity = a.profile.Identity
	}

	walletPath, err := filepath.Abs(a.cfg.Ledger.WalletPath)
	if err != nil {
		walletPath = a.cfg.Ledger.WalletPath
	}
	a.term.Printf(app.MsgWalletPath, walletPath)

	session, err := a.services.SessionService.Open(ctx, identity)
	if errors.Is(err, service.ErrIdentityNotEnrolled) {
		a.term.Printf(app.MsgIdentityMissing, identity)
		a.term.Println(app.MsgRunRegisterUser)
		return err
	}
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	ctx = session.Context(ctx)
	a.logger.Info().
		Str("func", "App.Run").
		Str("profile", a.profile.Name).
		Str("identity", identity).
		Str("session_id", session.ID).
		Msg("menu started")

	menu, err := a.profile.Menu(a.services.LedgerService(session), profiles.MenuOptions{
		PromptArgs: a.cfg.Shell.PromptArgs,
	})
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}

	return shell.New(menu, a.term, a.logger).Run(ctx)
}
