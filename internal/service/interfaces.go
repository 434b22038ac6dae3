// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases of carcert: opening a ledger
// session, invoking contract functions with logging and journaling, listing
// the journal and probing peer health.
package service

import (
	"context"

	"github.com/carpartcert/carcert-cli/models"
)

// SessionService opens ledger sessions.
type SessionService interface {
	// Open reads the connection profile, opens the wallet, checks that
	// identity is enrolled, connects and resolves the configured contract.
	//
	// A missing identity returns [ErrIdentityNotEnrolled] before any
	// connection is attempted. If contract resolution fails the connection
	// is closed before returning.
	Open(ctx context.Context, identity string) (*Session, error)
}

// LedgerService invokes functions of the session contract.
type LedgerService interface {
	// Evaluate runs fn as a query and returns the raw payload.
	Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)

	// Submit runs fn as a transaction and waits for its commit. It is never
	// retried.
	Submit(ctx context.Context, fn string, args ...string) ([]byte, error)
}

// JournalService reads the local invocation journal.
type JournalService interface {
	// Recent lists recorded calls, newest first. Returns [ErrJournalDisabled]
	// when no journal is configured.
	Recent(ctx context.Context, filter models.LedgerCallFilter) ([]models.LedgerCall, error)
}

// HealthService reports peer health.
type HealthService interface {
	Check(ctx context.Context) (models.HealthReport, error)
}

type idGenerator interface {
	Generate() string
}
