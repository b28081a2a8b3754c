// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/cmd/tally/cli"
	"github.com/tally-foundation/tally/lib/accounting"
)

type sendParams struct {
	cli.UserSession
	cli.JSONOutput
	To     string  `flag:"to" desc:"recipient for a direct transfer"`
	From   string  `flag:"from" desc:"sender account for a delegated transfer (requires --token)"`
	Token  string  `flag:"token" desc:"delegation token authorizing a --from transfer"`
	Amount float64 `flag:"amount,a" desc:"amount to transfer; must be positive (required)"`
	Yes    bool    `flag:"yes,y" desc:"confirm the transfer without prompting"`
}

func sendCommand() *cli.Command {
	var params sendParams

	return &cli.Command{
		Name:    "send",
		Summary: "Move funds",
		Description: `Move funds through the create/confirm protocol.

A direct transfer (--to) draws on your account. A delegated transfer
(--from with --token) draws on another account that issued you a
delegation token; the funds arrive in your account.

The command creates a pending transaction, shows it, and asks for
confirmation. Declining, or any failure before confirmation, cancels
the pending transaction so no funds stay in limbo. Pass --yes to
confirm without the interactive prompt.`,
		Usage: "tally user send (--to <address> | --from <address> --token <token>) --amount <value> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("send", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Send 25 to another account",
				Command:     "tally user send --to bob@example.com --amount 25",
			},
			{
				Description: "Draw 10 from an account that issued you a token",
				Command:     "tally user send --from carol@example.com --token <token> --amount 10 --yes",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			switch {
			case params.To != "" && params.From != "":
				return fmt.Errorf("--to and --from are mutually exclusive")
			case params.To == "" && params.From == "":
				return fmt.Errorf("either --to or --from is required")
			case params.From != "" && params.Token == "":
				return fmt.Errorf("--from requires --token")
			case params.To != "" && params.Token != "":
				return fmt.Errorf("--token only applies to --from transfers")
			}

			logger := cli.NewCommandLogger().With("command", "user/send")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			var transfer *accounting.Transfer
			if params.To != "" {
				transfer = client.Transfer(params.To, params.Amount)
			} else {
				transfer = client.DelegatedTransfer(params.From, params.Amount, params.Token)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			err = transfer.Run(ctx, func(transfer *accounting.Transfer) error {
				pending, _ := transfer.Transaction()
				if !params.Yes {
					if params.OutputJSON {
						return fmt.Errorf("--json requires --yes (no interactive prompt)")
					}
					question := fmt.Sprintf("Send %s from %s to %s?",
						cli.Value(fmt.Sprintf("%g", pending.Amount)),
						cli.Value(pending.SenderEmail),
						cli.Value(pending.RecipientEmail))
					confirmed, err := cli.Confirm(question)
					if err != nil {
						return err
					}
					if !confirmed {
						fmt.Fprintln(os.Stderr, cli.Warn("declined; cancelling pending transaction"))
						return nil
					}
				}
				_, err := transfer.Confirm(ctx)
				return err
			})
			if err != nil {
				return err
			}

			final, ok := transfer.Transaction()
			if !ok {
				return fmt.Errorf("no transaction recorded")
			}

			if done, err := params.EmitJSON(final); done {
				return err
			}

			if transfer.Confirmed() {
				fmt.Fprintf(os.Stdout, "%s transaction %s %s\n",
					cli.Success("completed:"),
					cli.Value(final.ID),
					final.Status)
				return nil
			}
			fmt.Fprintf(os.Stdout, "%s transaction %s %s\n",
				cli.Warn("cancelled:"),
				cli.Value(final.ID),
				final.Status)
			return &cli.ExitError{Code: 1}
		},
	}
}
