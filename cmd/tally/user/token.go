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
)

type tokenParams struct {
	cli.UserSession
	cli.JSONOutput
	To string `flag:"to" desc:"account authorized to draw on yours (required)"`
}

func tokenCommand() *cli.Command {
	var params tokenParams

	return &cli.Command{
		Name:    "token",
		Summary: "Issue a delegation token",
		Description: `Issue a token authorizing another account to create one transaction
drawing on your account. Hand the token to the recipient; they redeem
it with "tally user send --from <your-address> --token <token>".`,
		Usage: "tally user token --to <address> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("token", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Authorize bob to draw on your account",
				Command:     "tally user token --to bob@example.com",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.To == "" {
				return fmt.Errorf("--to is required")
			}

			logger := cli.NewCommandLogger().With("command", "user/token")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			token, err := client.CreateTransactionToken(ctx, params.To)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(struct {
				Token string `json:"token"`
			}{Token: token}); done {
				return err
			}

			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}
}
