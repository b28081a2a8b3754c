// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/cmd/tally/cli"
)

type getUserParams struct {
	cli.AdminSession
	cli.JSONOutput
	Email string `flag:"email,e" desc:"account to look up (required)"`
}

func getUserCommand() *cli.Command {
	var params getUserParams

	return &cli.Command{
		Name:    "get-user",
		Summary: "Look up an account",
		Usage:   "tally admin get-user --email <address> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get-user", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Show one account as JSON",
				Command:     "tally admin get-user --email alice@example.com --json",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Email == "" {
				return fmt.Errorf("--email is required")
			}

			logger := cli.NewCommandLogger().With("command", "admin/get-user")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, err := client.GetUser(ctx, params.Email)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(user); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "id:\t%s\n", user.ID)
			fmt.Fprintf(writer, "email:\t%s\n", user.Email)
			fmt.Fprintf(writer, "balance:\t%g\n", user.Balance)
			return writer.Flush()
		},
	}
}
