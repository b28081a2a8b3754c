// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "tally user" subcommands: self-service
// registration, account inspection, funds movement through the
// transfer guard, delegation tokens, and resolution of pending
// transactions.
package user
