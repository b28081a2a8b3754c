// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete tally CLI command tree.
package commands

import (
	"fmt"

	admincmd "github.com/tally-foundation/tally/cmd/tally/admin"
	"github.com/tally-foundation/tally/cmd/tally/cli"
	usercmd "github.com/tally-foundation/tally/cmd/tally/user"
)

// version is stamped at build time via
// -ldflags "-X .../cmd/tally/commands.version=v1.2.3".
var version = "dev"

// Root builds and returns the complete tally CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "tally",
		Description: `Tally: client for the accounting service.

Move funds between accounts through a create/confirm protocol,
inspect balances and history, and administer the user registry.`,
		Subcommands: []*cli.Command{
			usercmd.Command(),
			admincmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("tally %s\n", version)
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Register an account",
				Command:     "tally user add --email alice@example.com",
			},
			{
				Description: "Send funds",
				Command:     "tally user send --to bob@example.com --amount 25",
			},
		},
	}
}
