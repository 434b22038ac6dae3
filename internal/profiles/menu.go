package profiles

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/carpartcert/carcert-cli/internal/app"
	"github.com/carpartcert/carcert-cli/internal/service"
	"github.com/carpartcert/carcert-cli/internal/shell"
	"github.com/carpartcert/carcert-cli/models"
)

// MenuOptions tunes how entries collect their arguments.
type MenuOptions struct {
	// PromptArgs asks for every field, offering its default.
	PromptArgs bool
}

// Menu turns p into a [shell.Menu] whose actions call ledger.
func (p Profile) Menu(ledger service.LedgerService, opts MenuOptions) (*shell.Menu, error) {
	commands := make([]shell.Command, 0, len(p.Entries))
	for _, entry := range p.Entries {
		if entry.Invocation == nil {
			commands = append(commands, shell.ExitCommand(entry.Key, entry.Label))
			continue
		}

		commands = append(commands, shell.Command{
			Key:    entry.Key,
			Label:  entry.Label,
			Action: invocationAction(*entry.Invocation, ledger, opts),
		})
	}

	return shell.NewMenu(app.MenuTitle, commands...)
}

func invocationAction(inv Invocation, ledger service.LedgerService, opts MenuOptions) shell.Action {
	return func(ctx context.Context, term *shell.IO) (shell.Control, error) {
		args, err := collectArgs(term, inv.Fields, opts.PromptArgs)
		if errors.Is(err, io.EOF) {
			// input closed mid-prompt: leave like the exit entry
			return shell.Stop, nil
		}
		if err != nil {
			return shell.Stop, err
		}

		if inv.Kind == models.CallSubmit {
			if _, err = ledger.Submit(ctx, inv.Function, args...); err != nil {
				term.Errorf(app.MsgSubmitFailed, err)
				return shell.Stop, err
			}
			if inv.Echo {
				term.Println(echoLine(inv.Function, args))
			}
			term.Println(inv.Confirm)
			return shell.Continue, nil
		}

		payload, err := ledger.Evaluate(ctx, inv.Function, args...)
		if err != nil {
			term.Errorf(app.MsgEvaluateFailed, err)
			return shell.Stop, err
		}
		if inv.Echo {
			term.Println(echoLine(inv.Function, args))
		}
		term.Printf(app.MsgEvaluated, string(payload))

		return shell.Continue, nil
	}
}

func collectArgs(term *shell.IO, fields []Field, prompt bool) ([]string, error) {
	args := make([]string, len(fields))
	for i, f := range fields {
		if !prompt {
			args[i] = f.Default
			continue
		}

		v, err := term.Prompt(f.Name, f.Default)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return args, nil
}

func echoLine(fn string, args []string) string {
	return strings.Join(append([]string{fn}, args...), " ")
}
