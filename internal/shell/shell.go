package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/carpartcert/carcert-cli/internal/app"
	"github.com/carpartcert/carcert-cli/internal/logger"
)

// Shell runs a [Menu] against an [IO].
type Shell struct {
	menu   *Menu
	io     *IO
	logger *logger.Logger
}

func New(menu *Menu, io *IO, logger *logger.Logger) *Shell {
	return &Shell{menu: menu, io: io, logger: logger}
}

// Run loops until the exit command is chosen, an action returns [Stop],
// input ends or ctx is done. The first action error ends the loop and is
// returned. Unrecognised input triggers no action.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.render()

		token, err := s.io.ReadLine("\n" + app.MsgChoicePrompt)
		if errors.Is(err, io.EOF) {
			s.io.Println()
			s.logger.Debug().Str("func", "Shell.Run").Msg("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		cmd, ok := s.menu.Lookup(token)
		if !ok {
			s.logger.Debug().Str("func", "Shell.Run").Str("token", token).Msg("unrecognized choice")
			s.io.Errorf(app.MsgUnrecognizedChoice, token)
			continue
		}

		if cmd.Exit {
			s.logger.Debug().Str("func", "Shell.Run").Str("key", cmd.Key).Msg("exit chosen")
			return nil
		}

		s.logger.Debug().Str("func", "Shell.Run").Str("key", cmd.Key).Str("label", cmd.Label).Msg("running command")

		control, err := cmd.Action(ctx, s.io)
		if err != nil {
			return err
		}
		if control == Stop {
			return nil
		}
	}
}

func (s *Shell) render() {
	s.io.Title(s.menu.Title())
	for _, cmd := range s.menu.Commands() {
		s.io.Printf("%s) %s", cmd.Key, cmd.Label)
	}
}
