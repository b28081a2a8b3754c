// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/cmd/tally/cli"
	"github.com/tally-foundation/tally/lib/accounting"
)

type listUsersParams struct {
	cli.AdminSession
	cli.JSONOutput
	Format string `flag:"format" desc:"JSON shape: list (array) or dict (keyed by email)" default:"list"`
}

func listUsersCommand() *cli.Command {
	var params listUsersParams

	return &cli.Command{
		Name:    "list-users",
		Summary: "List every account",
		Description: `List every account on the service.

With --json the --format flag selects the output shape: "list" emits
an array of accounts, "dict" emits an object keyed by email address.`,
		Usage: "tally admin list-users [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list-users", &params)
		},
		Examples: []cli.Example{
			{
				Description: "All accounts keyed by email",
				Command:     "tally admin list-users --json --format dict",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Format != "list" && params.Format != "dict" {
				return fmt.Errorf("invalid --format %q (expected list or dict)", params.Format)
			}

			logger := cli.NewCommandLogger().With("command", "admin/list-users")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if params.Format == "dict" {
				users, err := client.UsersByEmail(ctx)
				if err != nil {
					return err
				}
				if done, err := params.EmitJSON(users); done {
					return err
				}
				return printUserMap(users)
			}

			users, err := client.ListUsers(ctx)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(users); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "EMAIL\tBALANCE\tID")
			for _, user := range users {
				fmt.Fprintf(writer, "%s\t%g\t%s\n", user.Email, user.Balance, user.ID)
			}
			return writer.Flush()
		},
	}
}

// printUserMap renders the dict shape as text, sorted by email so the
// output is deterministic.
func printUserMap(users map[string]accounting.User) error {
	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	slices.Sort(emails)
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "EMAIL\tBALANCE\tID")
	for _, email := range emails {
		user := users[email]
		fmt.Fprintf(writer, "%s\t%g\t%s\n", email, user.Balance, user.ID)
	}
	return writer.Flush()
}
