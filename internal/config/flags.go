package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig                 = "config"
	FlagConnectionProfile      = "connection-profile"
	FlagWallet                 = "wallet"
	FlagIdentity               = "identity"
	FlagChannel                = "channel"
	FlagContract               = "contract"
	FlagDiscoveryExternalHosts = "discovery-external-hosts"
	FlagLedgerTimeout          = "ledger-timeout"
	FlagOperationsURL          = "operations-url"
	FlagJournalDSN             = "journal-dsn"
	FlagPromptArgs             = "prompt-args"
	FlagLogFile                = "log-file"
	FlagLogLevel               = "log-level"
)

// RegisterFlags defines all configuration flags on fs. Every flag defaults to
// its zero value so that unset flags never shadow env, JSON or defaults.
//
// Flags:
//
//	-c/--config json file path with configs
//	--connection-profile network connection profile (JSON)
//	--wallet file-system wallet directory
//	--identity wallet label, overrides the profile identity
//	--channel channel name
//	--contract contract name
//	--discovery-external-hosts do not map discovered peers to localhost
//	--ledger-timeout gateway timeout (e.g. "30s")
//	--operations-url peer operations service base URL
//	--journal-dsn invocation journal DSN
//	--prompt-args prompt for transaction arguments
//	--log-file log file path
//	--log-level log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagConnectionProfile, "", "Network connection profile (JSON)")
	fs.String(FlagWallet, "", "File-system wallet directory")
	fs.String(FlagIdentity, "", "Wallet identity label")
	fs.String(FlagChannel, "", "Channel name")
	fs.String(FlagContract, "", "Contract name")
	fs.Bool(FlagDiscoveryExternalHosts, false, "Use discovered peer endpoints as announced")
	fs.Duration(FlagLedgerTimeout, 0, "Gateway timeout (e.g. 30s, 1m)")
	fs.String(FlagOperationsURL, "", "Peer operations service URL")
	fs.String(FlagJournalDSN, "", "Invocation journal DSN (SQLite path or postgres:// URL)")
	fs.Bool(FlagPromptArgs, false, "Prompt for transaction arguments")
	fs.String(FlagLogFile, "", "Log file path")
	fs.String(FlagLogLevel, "", "Log level")
}

// parseFlags reads the flags registered by RegisterFlags from an already
// parsed fs. Flags that were never registered are reported as errors.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var (
		cfg StructuredConfig
		err error
	)

	get := func(name string) string {
		if err != nil {
			return ""
		}
		var v string
		v, err = fs.GetString(name)
		return v
	}

	cfg.JSONFilePath = get(FlagConfig)
	cfg.Ledger.ConnectionProfile = get(FlagConnectionProfile)
	cfg.Ledger.WalletPath = get(FlagWallet)
	cfg.Ledger.Identity = get(FlagIdentity)
	cfg.Ledger.Channel = get(FlagChannel)
	cfg.Ledger.Contract = get(FlagContract)
	cfg.Ledger.OperationsURL = get(FlagOperationsURL)
	cfg.Journal.DSN = get(FlagJournalDSN)
	cfg.Log.File = get(FlagLogFile)
	cfg.Log.Level = get(FlagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	if cfg.Ledger.DiscoveryExternalHosts, err = fs.GetBool(FlagDiscoveryExternalHosts); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Shell.PromptArgs, err = fs.GetBool(FlagPromptArgs); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.Ledger.Timeout, err = fs.GetDuration(FlagLedgerTimeout); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return &cfg, nil
}
