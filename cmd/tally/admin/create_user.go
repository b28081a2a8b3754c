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

// createUserParams holds the parameters for admin create-user.
type createUserParams struct {
	cli.AdminSession
	cli.JSONOutput
	Email    string `flag:"email,e" desc:"email address for the new account (required)"`
	Password string `flag:"password,p" desc:"password for the new account; generated when omitted"`
}

// createUserOutput is the JSON output for admin create-user.
type createUserOutput struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
	Password string  `json:"password"`
}

func createUserCommand() *cli.Command {
	var params createUserParams

	return &cli.Command{
		Name:    "create-user",
		Summary: "Create an account",
		Description: `Create a new account on the accounting service.

When --password is omitted the service generates one and prints it
once; it cannot be retrieved later.`,
		Usage: "tally admin create-user --email <address> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create-user", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Create an account with a generated password",
				Command:     "tally admin create-user --email alice@example.com",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Email == "" {
				return fmt.Errorf("--email is required")
			}

			logger := cli.NewCommandLogger().With("command", "admin/create-user")
			client, err := params.Connect(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, password, err := client.CreateUser(ctx, params.Email, params.Password)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(createUserOutput{
				ID:       user.ID,
				Email:    user.Email,
				Balance:  user.Balance,
				Password: password,
			}); done {
				return err
			}

			fmt.Fprintln(os.Stdout, cli.Success("created account:"))
			fmt.Fprintf(os.Stdout, "  email:    %s\n", cli.Value(user.Email))
			fmt.Fprintf(os.Stdout, "  password: %s  %s\n",
				cli.Value(password),
				cli.Warn("<- write this down, it cannot be shown again"))
			return nil
		},
	}
}
