package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet(t,
		"-c", "/tmp/carcert.json",
		"--connection-profile", "/tmp/ccp.json",
		"--wallet", "/tmp/wallet",
		"--identity", "Sender",
		"--channel", "partschannel",
		"--contract", "carcert",
		"--discovery-external-hosts",
		"--ledger-timeout", "1m",
		"--operations-url", "http://localhost:9443",
		"--journal-dsn", "journal.db",
		"--prompt-args",
		"--log-file", "/tmp/carcert.log",
		"--log-level", "info",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/carcert.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/ccp.json", cfg.Ledger.ConnectionProfile)
	assert.Equal(t, "/tmp/wallet", cfg.Ledger.WalletPath)
	assert.Equal(t, "Sender", cfg.Ledger.Identity)
	assert.Equal(t, "partschannel", cfg.Ledger.Channel)
	assert.Equal(t, "carcert", cfg.Ledger.Contract)
	assert.True(t, cfg.Ledger.DiscoveryExternalHosts)
	assert.Equal(t, time.Minute, cfg.Ledger.Timeout)
	assert.Equal(t, "http://localhost:9443", cfg.Ledger.OperationsURL)
	assert.Equal(t, "journal.db", cfg.Journal.DSN)
	assert.True(t, cfg.Shell.PromptArgs)
	assert.Equal(t, "/tmp/carcert.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseFlags_NoFlagsYieldsZeroConfig(t *testing.T) {
	fs := newTestFlagSet(t)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)

	cfg, err := parseFlags(fs)
	require.Error(t, err)
	assert.Nil(t, cfg)
}
