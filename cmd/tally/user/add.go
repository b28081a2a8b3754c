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

type addParams struct {
	cli.ServiceConfig
	cli.JSONOutput
	Email    string `flag:"email,e" desc:"email address for the new account (required)"`
	Password string `flag:"password,p" desc:"password for the new account; generated when omitted"`
}

type addOutput struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
	Password string  `json:"password"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Register a new account",
		Description: `Register a new account on the accounting service.

Registration needs no existing credential. When --password is omitted
the service generates one and prints it once; it cannot be retrieved
later.`,
		Usage: "tally user add --email <address> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Register with a generated password",
				Command:     "tally user add --email alice@example.com",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Email == "" {
				return fmt.Errorf("--email is required")
			}

			serviceURL, err := params.ServiceURL()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			user, password, err := accounting.SignUp(ctx, serviceURL, params.Email, params.Password)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(addOutput{
				ID:       user.ID,
				Email:    user.Email,
				Balance:  user.Balance,
				Password: password,
			}); done {
				return err
			}

			fmt.Fprintln(os.Stdout, cli.Success("registered:"))
			fmt.Fprintf(os.Stdout, "  email:    %s\n", cli.Value(user.Email))
			fmt.Fprintf(os.Stdout, "  password: %s  %s\n",
				cli.Value(password),
				cli.Warn("<- write this down, it cannot be shown again"))
			return nil
		},
	}
}
