// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CallKind tells whether a contract function was evaluated (query, no state
// change) or submitted (endorsed, ordered and committed).
type CallKind string

const (
	CallEvaluate CallKind = "evaluate"
	CallSubmit   CallKind = "submit"
)

// LedgerCall is one contract invocation as recorded in the local journal.
type LedgerCall struct {
	ID          string
	SessionID   string
	Identity    string
	Kind        CallKind
	Function    string
	Args        []string
	Succeeded   bool
	Error       string
	PayloadSize int
	Duration    time.Duration
	CreatedAt   time.Time
}

// LedgerCallFilter narrows a journal listing. Zero values mean "no filter".
type LedgerCallFilter struct {
	Function string
	Identity string
	Limit    uint64
}
