// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/cmd/tally/cli"
)

type addBalanceParams struct {
	cli.AdminSession
	cli.JSONOutput
	Email  string  `flag:"email,e" desc:"account to credit (required)"`
	Amount float64 `flag:"amount,a" desc:"amount to credit; must be positive (required)"`
}

func addBalanceCommand() *cli.Command {
	var params addBalanceParams

	return &cli.Command{
		Name:    "add-balance",
		Summary: "Credit an account",
		Description: `Credit an amount to an account and print the updated balance.

The amount must be strictly positive; the command rejects zero and
negative amounts without contacting the service.`,
		Usage: "tally admin add-balance --email <address> --amount <value> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add-balance", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Credit 100 to an account",
				Command:     "tally admin add-balance --email alice@example.com --amount 100",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Email == "" {
				return fmt.Errorf("--email is required")
			}

			logger := cli.NewCommandLogger().With("command", "admin/add-balance")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, err := client.AddBalance(ctx, params.Email, params.Amount)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(user); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s credited %s to %s (balance: %s)\n",
				cli.Success("ok:"),
				cli.Value(fmt.Sprintf("%g", params.Amount)),
				cli.Value(user.Email),
				cli.Value(fmt.Sprintf("%g", user.Balance)))
			return nil
		},
	}
}
