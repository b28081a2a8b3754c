// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecute_DispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "tally",
		Subcommands: []*Command{
			{
				Name: "user",
				Subcommands: []*Command{
					{
						Name: "info",
						Run: func(args []string) error {
							ran = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"user", "info", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "extra" {
		t.Errorf("remaining args = %v, want [extra]", ran)
	}
}

func TestExecute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "tally",
		Subcommands: []*Command{
			{Name: "admin"},
			{Name: "user"},
		},
	}

	err := root.Execute([]string{"usre"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "user"`) {
		t.Errorf("error should suggest the close match: %v", err)
	}
}

func TestExecute_UnknownCommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name:        "tally",
		Subcommands: []*Command{{Name: "admin"}},
	}

	err := root.Execute([]string{"frobnicate"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("no suggestion should be offered for a distant name: %v", err)
	}
}

func TestExecute_GroupWithoutSubcommand(t *testing.T) {
	root := &Command{
		Name:        "tally",
		Subcommands: []*Command{{Name: "admin"}},
	}
	if err := root.Execute(nil); err == nil {
		t.Fatal("a group command without a subcommand must fail")
	}
}

func TestExecute_ParsesFlags(t *testing.T) {
	var amount float64
	command := &Command{
		Name: "send",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("send", pflag.ContinueOnError)
			flagSet.Float64Var(&amount, "amount", 0, "amount to transfer")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--amount", "12.5"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if amount != 12.5 {
		t.Errorf("amount = %v, want 12.5", amount)
	}
}

func TestExecute_UnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "send",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("send", pflag.ContinueOnError)
			flagSet.Float64("amount", 0, "amount to transfer")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--amuont", "5"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "--amount") {
		t.Errorf("error should suggest the close flag: %v", err)
	}
}

func TestPrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:        "tally",
		Description: "Client for the accounting service.",
		Subcommands: []*Command{
			{Name: "user", Summary: "User operations"},
			{Name: "admin", Summary: "Administrative operations"},
		},
		Examples: []Example{
			{Description: "Show your account", Command: "tally user info"},
		},
	}

	var output strings.Builder
	root.PrintHelp(&output)
	help := output.String()

	for _, want := range []string{"user", "Administrative operations", "tally user info", "Client for the accounting service."} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"usre", "user", 2},
		{"histry", "history", 1},
		{"kitten", "sitting", 3},
	}
	for _, testCase := range cases {
		if got := levenshtein(testCase.a, testCase.b); got != testCase.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", testCase.a, testCase.b, got, testCase.want)
		}
	}
}
