// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"github.com/tally-foundation/tally/cmd/tally/cli"
)

// Command returns the "admin" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "admin",
		Summary: "Administrative operations",
		Description: `Manage accounts on the accounting service as an administrator.

Administrative commands authenticate with a bearer key (--admin-key,
TALLY_ADMIN_KEY, or the config file) and can create users, credit
balances, and inspect the user registry. Moving funds between accounts
is a user operation; see "tally user send".`,
		Subcommands: []*cli.Command{
			createUserCommand(),
			addBalanceCommand(),
			getUserCommand(),
			listUsersCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Create an account with a generated password",
				Command:     "tally admin create-user --email alice@example.com",
			},
			{
				Description: "Credit an account",
				Command:     "tally admin add-balance --email alice@example.com --amount 100",
			},
		},
	}
}
