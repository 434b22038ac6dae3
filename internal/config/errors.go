package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidLedgerConfigs indicates invalid gateway settings
	// (for example, empty channel name or negative timeout).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidHealthConfigs indicates that the health probe was requested
	// without a peer operations URL.
	ErrInvalidHealthConfigs = errors.New("invalid health configuration")
)
