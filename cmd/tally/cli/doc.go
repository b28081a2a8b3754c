// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the tally CLI:
// a nested command tree dispatched over spf13/pflag flag sets,
// struct-tag flag binding, --json output support, typo suggestions
// for unknown commands and flags, terminal styling, password
// prompting, and connection helpers that resolve service settings
// from flags, environment, and the config file.
package cli
