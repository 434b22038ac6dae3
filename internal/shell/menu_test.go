package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, *IO) (Control, error) { return Continue, nil }

func TestNewMenu(t *testing.T) {
	tests := []struct {
		name     string
		commands []Command
		wantErr  error
	}{
		{
			name:     "valid",
			commands: []Command{{Key: "1", Label: "Read", Action: noop}, ExitCommand("2", "Exit")},
		},
		{
			name:     "no exit",
			commands: []Command{{Key: "1", Label: "Read", Action: noop}},
			wantErr:  ErrNoExitCommand,
		},
		{
			name:     "two exits",
			commands: []Command{ExitCommand("1", "Exit"), ExitCommand("2", "Quit")},
			wantErr:  ErrMultipleExitCommands,
		},
		{
			name:     "empty key",
			commands: []Command{{Key: "", Label: "Read", Action: noop}, ExitCommand("2", "Exit")},
			wantErr:  ErrEmptyKey,
		},
		{
			name:     "duplicate key",
			commands: []Command{{Key: "1", Label: "Read", Action: noop}, ExitCommand("1", "Exit")},
			wantErr:  ErrDuplicateKey,
		},
		{
			name:     "missing action",
			commands: []Command{{Key: "1", Label: "Read"}, ExitCommand("2", "Exit")},
			wantErr:  ErrNoAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMenu("title", tt.commands...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Len(t, m.Commands(), len(tt.commands))
		})
	}
}

func TestMenu_LookupFirstMatch(t *testing.T) {
	m, err := NewMenu("title",
		Command{Key: "1", Label: "Read", Action: noop},
		ExitCommand("2", "Exit"),
	)
	require.NoError(t, err)

	cmd, ok := m.Lookup("2")
	assert.True(t, ok)
	assert.True(t, cmd.Exit)

	_, ok = m.Lookup(" 1")
	assert.False(t, ok)
	_, ok = m.Lookup("01")
	assert.False(t, ok)
}
