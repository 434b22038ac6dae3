package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientLedger holds the gateway settings used by the ledger adapter.
type ClientLedger struct {
	// ConnectionProfile is the path to the JSON network connection profile.
	ConnectionProfile string
	// WalletPath is the file-system wallet directory.
	WalletPath string
	// Identity overrides the wallet label of the selected profile.
	Identity string
	// Channel is the channel name.
	Channel string
	// Contract is the chaincode name.
	Contract string
	// AsLocalhost maps discovered peer endpoints to localhost.
	AsLocalhost bool
	// Timeout is the gateway timeout; zero keeps the SDK default.
	Timeout time.Duration
	// OperationsURL is the peer operations service base URL.
	OperationsURL string
}

// ClientJournal holds the invocation journal settings.
type ClientJournal struct {
	// DSN is the SQLite path or PostgreSQL URL; empty disables the journal.
	DSN string
}

// ClientShell holds interactive menu settings.
type ClientShell struct {
	// PromptArgs makes ledger commands ask for their arguments.
	PromptArgs bool
}

// ClientLog holds log sink settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Ledger contains gateway settings.
	Ledger ClientLedger
	// Journal contains invocation journal settings.
	Journal ClientJournal
	// Shell contains menu settings.
	Shell ClientShell
	// Log contains log sink settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into
// the client view, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Ledger: ClientLedger{
			ConnectionProfile: cfg.Ledger.ConnectionProfile,
			WalletPath:        cfg.Ledger.WalletPath,
			Identity:          cfg.Ledger.Identity,
			Channel:           cfg.Ledger.Channel,
			Contract:          cfg.Ledger.Contract,
			AsLocalhost:       !cfg.Ledger.DiscoveryExternalHosts,
			Timeout:           cfg.Ledger.Timeout,
			OperationsURL:     cfg.Ledger.OperationsURL,
		},
		Journal: ClientJournal{DSN: cfg.Journal.DSN},
		Shell:   ClientShell{PromptArgs: cfg.Shell.PromptArgs},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
