// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the ledger-side collaborators of the carcert
// client.
//
// [Ledger], [Wallet], [Connection] and [Contract] decouple the service layer
// from the Hyperledger Fabric SDK. The package ships a gateway implementation
// ([NewFabricLedger]) built on fabric-sdk-go and an HTTP probe of the peer
// operations service ([NewOperationsHealthProber]).
//
// SDK errors are mapped onto the sentinels in errors.go by mapLedgerError so
// that callers can use [errors.Is] without importing the SDK
// (e.g. [ErrSubmission] for a rejected transaction).
package adapter

import (
	"context"
	"time"

	"github.com/carpartcert/carcert-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Ledger opens wallets and gateway connections.
type Ledger interface {
	// OpenWallet opens the file-system wallet rooted at path. The directory
	// is created when missing.
	OpenWallet(path string) (Wallet, error)

	// Connect opens a gateway connection using opts. The returned
	// [Connection] must be closed by the caller. Errors wrap
	// [ErrConnection].
	Connect(ctx context.Context, opts ConnectOptions) (Connection, error)
}

// Wallet is a read-only view of an identity store.
type Wallet interface {
	// Exists reports whether an identity with the given label is stored.
	Exists(label string) bool

	// List returns the labels of all stored identities.
	List() ([]string, error)
}

// Connection is one open session to the ledger network.
type Connection interface {
	// Contract resolves the named contract on channel. Errors wrap
	// [ErrResolution].
	Contract(channel, name string) (Contract, error)

	// Close releases the connection.
	Close()
}

// Contract invokes functions of one deployed contract.
type Contract interface {
	// Name returns the contract name.
	Name() string

	// Evaluate runs fn as a query on a single peer. The ledger state is not
	// changed. Errors wrap [ErrQuery].
	Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)

	// Submit endorses fn, sends it for ordering and waits for the commit
	// event. Errors wrap [ErrSubmission].
	Submit(ctx context.Context, fn string, args ...string) ([]byte, error)
}

// HealthProber queries a peer operations service.
type HealthProber interface {
	// Health fetches the current health report. An unhealthy peer is
	// reported through the returned report, not as an error.
	Health(ctx context.Context) (models.HealthReport, error)
}

// ConnectOptions carries everything [Ledger.Connect] needs.
type ConnectOptions struct {
	// Profile is the raw JSON network connection profile.
	Profile []byte
	// Wallet must come from the same Ledger's OpenWallet.
	Wallet Wallet
	// Identity is the wallet label to connect as.
	Identity string
	// AsLocalhost maps discovered peer endpoints to localhost.
	AsLocalhost bool
	// Timeout overrides the gateway timeout when positive.
	Timeout time.Duration
}
