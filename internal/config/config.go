// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the carcert
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Ledger holds everything needed to reach the carcert contract: the
	// connection profile, the wallet, the identity label and the
	// channel/contract names.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Journal holds the local invocation journal settings.
	Journal Journal `envPrefix:"JOURNAL_"`

	// Shell holds interactive menu settings.
	Shell Shell `envPrefix:"SHELL_"`

	// Log holds log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Ledger holds the Fabric gateway settings.
type Ledger struct {
	// ConnectionProfile is the path to the JSON network connection profile.
	// Env: LEDGER_CONNECTION_PROFILE
	ConnectionProfile string `env:"CONNECTION_PROFILE"`

	// WalletPath is the directory of the file-system wallet.
	// Env: LEDGER_WALLET_PATH
	WalletPath string `env:"WALLET_PATH"`

	// Identity overrides the wallet label used by the selected profile.
	// Env: LEDGER_IDENTITY
	Identity string `env:"IDENTITY"`

	// Channel is the channel the contract is deployed to.
	// Env: LEDGER_CHANNEL
	Channel string `env:"CHANNEL"`

	// Contract is the chaincode name.
	// Env: LEDGER_CONTRACT
	Contract string `env:"CONTRACT"`

	// DiscoveryExternalHosts disables mapping of discovered peer endpoints to
	// localhost. Leave unset when the network runs in local containers.
	// Env: LEDGER_DISCOVERY_EXTERNAL_HOSTS
	DiscoveryExternalHosts bool `env:"DISCOVERY_EXTERNAL_HOSTS"`

	// Timeout is handed to the gateway as its commit/query timeout. Zero
	// keeps the SDK default.
	// Env: LEDGER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// OperationsURL is the base URL of a peer operations service
	// (e.g. "http://localhost:9443"), used by the health subcommand.
	// Env: LEDGER_OPERATIONS_URL
	OperationsURL string `env:"OPERATIONS_URL"`
}

// Journal holds settings of the local invocation journal.
type Journal struct {
	// DSN selects the journal database. postgres:// and postgresql:// DSNs
	// use PostgreSQL, anything else is a SQLite file path. Empty disables
	// the journal.
	// Env: JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Shell holds interactive menu settings.
type Shell struct {
	// PromptArgs makes every ledger command ask for its arguments, offering
	// the built-in values as defaults.
	// Env: SHELL_PROMPT_ARGS
	PromptArgs bool `env:"PROMPT_ARGS"`
}

// Log holds log sink settings.
type Log struct {
	// File is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first non-zero value wins, in this
// order:
//  1. Command-line flags registered with [RegisterFlags] on fs
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
