// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Defaults fill every required field, so only malformed values are rejected
// here; required-field checks live on [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Ledger.Timeout < 0 {
		return ErrInvalidLedgerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	l := cfg.Ledger
	if strings.TrimSpace(l.ConnectionProfile) == "" ||
		strings.TrimSpace(l.WalletPath) == "" ||
		strings.TrimSpace(l.Channel) == "" ||
		strings.TrimSpace(l.Contract) == "" ||
		l.Timeout < 0 {
		return ErrInvalidLedgerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

// ValidateHealth reports whether the settings needed by the peer health probe
// are present.
func (cfg *ClientConfig) ValidateHealth() error {
	if strings.TrimSpace(cfg.Ledger.OperationsURL) == "" {
		return ErrInvalidHealthConfigs
	}

	return nil
}
