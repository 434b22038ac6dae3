// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires session bootstrap, the selected command set and the menu loop
// into a single process lifecycle: open, loop, close.
package client
