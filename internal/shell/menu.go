// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shell implements a line-oriented numbered menu loop.
//
// A [Menu] is an ordered list of [Command] descriptors. [Shell.Run] prints
// the menu, reads one line, dispatches to the first command whose key equals
// the trimmed input and repeats until the exit command is chosen, an action
// asks to stop, an action fails or the input ends.
package shell

import (
	"context"
	"errors"
	"fmt"
)

// Control tells the loop what to do after an action returns.
type Control int

const (
	// Continue redisplays the menu.
	Continue Control = iota
	// Stop ends the loop.
	Stop
)

// Action is the behaviour of a menu entry.
type Action func(ctx context.Context, io *IO) (Control, error)

// Command is one menu entry.
type Command struct {
	// Key is the exact token that selects the command.
	Key string
	// Label is shown next to Key.
	Label string
	// Action runs when the command is selected. It may be nil for the exit
	// command.
	Action Action
	// Exit marks the command that ends the loop.
	Exit bool
}

// ExitCommand returns the exit entry for key.
func ExitCommand(key, label string) Command {
	return Command{Key: key, Label: label, Exit: true}
}

var (
	ErrNoExitCommand        = errors.New("menu has no exit command")
	ErrMultipleExitCommands = errors.New("menu has more than one exit command")
	ErrEmptyKey             = errors.New("menu command has an empty key")
	ErrDuplicateKey         = errors.New("menu command key is not unique")
	ErrNoAction             = errors.New("menu command has no action")
)

// Menu is a validated, ordered command list.
type Menu struct {
	title    string
	commands []Command
}

// NewMenu validates commands: keys must be non-empty and unique, exactly one
// command must be the exit command and every other command needs an action.
func NewMenu(title string, commands ...Command) (*Menu, error) {
	seen := make(map[string]struct{}, len(commands))
	exits := 0

	for _, cmd := range commands {
		if cmd.Key == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyKey, cmd.Label)
		}
		if _, ok := seen[cmd.Key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, cmd.Key)
		}
		seen[cmd.Key] = struct{}{}

		if cmd.Exit {
			exits++
			continue
		}
		if cmd.Action == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoAction, cmd.Key)
		}
	}

	switch {
	case exits == 0:
		return nil, ErrNoExitCommand
	case exits > 1:
		return nil, ErrMultipleExitCommands
	}

	return &Menu{title: title, commands: commands}, nil
}

// Title returns the menu heading.
func (m *Menu) Title() string {
	return m.title
}

// Commands returns the entries in display order.
func (m *Menu) Commands() []Command {
	return m.commands
}

// Lookup returns the first command whose key equals token.
func (m *Menu) Lookup(token string) (Command, bool) {
	for _, cmd := range m.commands {
		if cmd.Key == token {
			return cmd, true
		}
	}

	return Command{}, false
}
