// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vaultctl application runtime.
//
// It wires the terminal UI flows and the vault client service into a single
// process lifecycle.
package client
