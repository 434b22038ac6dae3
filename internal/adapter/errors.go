package adapter

import "errors"

// Sentinel errors for the ledger-side collaborator. Every error returned by
// this package wraps exactly one of them.
var (
	ErrInvalidProfile = errors.New("invalid connection profile")
	ErrWallet         = errors.New("wallet unavailable")
	ErrConnection     = errors.New("gateway connection failed")
	ErrResolution     = errors.New("contract resolution failed")
	ErrQuery          = errors.New("transaction evaluation failed")
	ErrSubmission     = errors.New("transaction submission failed")
	ErrHealthProbe    = errors.New("health probe failed")
)
