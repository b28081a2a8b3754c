// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Tally is the CLI for the accounting service. It provides user
// subcommands for registration, balances, funds movement, and
// delegation tokens (user), and administrative subcommands for the
// user registry (admin).
package main
