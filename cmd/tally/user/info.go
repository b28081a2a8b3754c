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

type infoParams struct {
	cli.UserSession
	cli.JSONOutput
}

func infoCommand() *cli.Command {
	var params infoParams

	return &cli.Command{
		Name:    "info",
		Summary: "Show your account",
		Usage:   "tally user info [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("info", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "user/info")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, err := client.UserInfo(ctx)
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
