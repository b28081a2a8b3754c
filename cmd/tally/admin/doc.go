// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package admin implements the "tally admin" subcommands: account
// creation, balance crediting, and user registry queries against the
// accounting service's administrative API.
package admin
