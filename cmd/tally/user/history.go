// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/tally-foundation/tally/cmd/tally/cli"
)

type historyParams struct {
	cli.UserSession
	cli.JSONOutput
}

func historyCommand() *cli.Command {
	var params historyParams

	return &cli.Command{
		Name:    "history",
		Summary: "List your transactions",
		Description: `List every transaction involving your account, in the order the
service returns them.`,
		Usage: "tally user history [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("history", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Transaction history as JSON",
				Command:     "tally user history --json",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "user/history")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			transactions, err := client.TransactionHistory(ctx)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(transactions); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSENDER\tRECIPIENT\tAMOUNT\tSTATUS\tCREATED")
			for _, transaction := range transactions {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%g\t%s\t%s\n",
					transaction.ID,
					transaction.SenderEmail,
					transaction.RecipientEmail,
					transaction.Amount,
					transaction.Status,
					transaction.CreatedAt.Format(time.RFC3339))
			}
			return writer.Flush()
		},
	}
}
