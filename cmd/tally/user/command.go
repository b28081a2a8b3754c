// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"github.com/tally-foundation/tally/cmd/tally/cli"
)

// Command returns the "user" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "User operations",
		Description: `Operate on the accounting service as an authenticated user.

User commands authenticate with basic auth (--email and --password,
TALLY_EMAIL and TALLY_PASSWORD, or the config file; the password is
prompted when absent everywhere). "tally user add" is the exception:
it registers a new account and needs no prior credential.`,
		Subcommands: []*cli.Command{
			addCommand(),
			infoCommand(),
			historyCommand(),
			sendCommand(),
			tokenCommand(),
			confirmCommand(),
			cancelCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Show your account",
				Command:     "tally user info",
			},
			{
				Description: "Send 25 to another account",
				Command:     "tally user send --to bob@example.com --amount 25",
			},
		},
	}
}
