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

// The confirm and cancel commands share everything but the client call
// and the output verb.

type resolveParams struct {
	cli.UserSession
	cli.JSONOutput
}

func confirmCommand() *cli.Command {
	return resolveCommand(
		"confirm",
		"Confirm a pending transaction",
		"completed:",
		func(ctx context.Context, client *accounting.UserClient, id string) (accounting.Transaction, error) {
			return client.ConfirmTransaction(ctx, id)
		},
	)
}

func cancelCommand() *cli.Command {
	return resolveCommand(
		"cancel",
		"Cancel a pending transaction",
		"cancelled:",
		func(ctx context.Context, client *accounting.UserClient, id string) (accounting.Transaction, error) {
			return client.CancelTransaction(ctx, id)
		},
	)
}

func resolveCommand(name, summary, verb string, resolve func(context.Context, *accounting.UserClient, string) (accounting.Transaction, error)) *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    name,
		Summary: summary,
		Description: summary + ` by its identifier.

The service decides whether you may resolve the transaction; already
resolved transactions and transactions you are not a party to are
rejected.`,
		Usage: fmt.Sprintf("tally user %s <transaction-id> [flags]", name),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams(name, &params)
		},
		Examples: []cli.Example{
			{
				Description: summary,
				Command:     fmt.Sprintf("tally user %s 2c1f1e0a", name),
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one transaction id argument")
			}
			id := args[0]

			logger := cli.NewCommandLogger().With("command", "user/"+name)
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			transaction, err := resolve(ctx, client, id)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(transaction); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s transaction %s %s (resolved by %s)\n",
				cli.Success(verb),
				cli.Value(transaction.ID),
				transaction.Status,
				transaction.ResolvedBy)
			return nil
		},
	}
}
