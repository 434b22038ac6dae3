// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing text of the carcert client.
//
// Menu labels, prompts and confirmation lines are kept identical across the
// console, sender and receiver command sets. Keeping them in one place
// ensures consistent wording in the shell and in the tests that assert on it.
package app

const (
	// MenuTitle heads every interactive menu.
	MenuTitle = "Possible interaction with the network"

	// MsgChoicePrompt is printed before each menu choice is read.
	MsgChoicePrompt = "Enter the number of your choice: "

	// MsgUnrecognizedChoice is printed (with the offending token) when the
	// input matches no menu key.
	MsgUnrecognizedChoice = "Unrecognized choice %q"

	// MsgFieldPrompt asks for one transaction argument, showing its default.
	MsgFieldPrompt = "%s [%s]: "
)

// Menu labels.
const (
	LabelCreate = "Create new asset"
	LabelRead   = "Read specific asset"
	LabelUpdate = "Update specific asset"
	LabelDelete = "Delete specific asset"
	LabelGetAll = "Get all assets"
	LabelExists = "Verify presence of an asset"
	LabelExit   = "Exit"
)

// Transaction outcome lines.
const (
	// MsgEvaluated prefixes the UTF-8 payload of an evaluated transaction.
	MsgEvaluated = "Transaction has been evaluated, result is: %s"

	MsgCreated = "Creating new Asset -> Transaction has been submitted"
	MsgUpdated = "Updating Asset -> Transaction has been submitted"
	MsgDeleted = "Deleting Asset -> Transaction has been submitted"

	// MsgEvaluateFailed and MsgSubmitFailed report the error that ended the
	// session.
	MsgEvaluateFailed = "Failed to evaluate transaction: %v"
	MsgSubmitFailed   = "Failed to submit transaction: %v"
)

// Bootstrap messages.
const (
	// MsgWalletPath reports the resolved wallet directory.
	MsgWalletPath = "Wallet path: %s"

	// MsgIdentityMissing and MsgRunRegisterUser are printed when the wallet
	// has no identity under the configured label.
	MsgIdentityMissing = "An identity for the user %q does not exist in the wallet"
	MsgRunRegisterUser = "Run the registerUser application before retrying"
)

// Journal and health output.
const (
	MsgNoJournal      = "The invocation journal is disabled; set journal.dsn to enable it"
	MsgNoJournalCalls = "No ledger calls recorded"
	MsgPeerHealthy    = "Peer status: %s"
	MsgPeerCheck      = "  %s: %s"
)
