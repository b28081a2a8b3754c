// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// styleEnabled gates ANSI styling: stdout must be a terminal and the
// environment must advertise a color profile (NO_COLOR and TERM=dumb
// both downgrade to Ascii).
var styleEnabled = term.IsTerminal(int(os.Stdout.Fd())) &&
	termenv.EnvColorProfile() != termenv.Ascii

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Success styles text as a positive outcome.
func Success(text string) string {
	if !styleEnabled {
		return text
	}
	return successStyle.Render(text)
}

// Warn styles text as a caution the operator should read.
func Warn(text string) string {
	if !styleEnabled {
		return text
	}
	return warnStyle.Render(text)
}

// Value styles a data value (an email, an amount, a password) so it
// stands out from the surrounding label text.
func Value(text string) string {
	if !styleEnabled {
		return text
	}
	return valueStyle.Render(text)
}

// Fail styles text as a negative outcome.
func Fail(text string) string {
	if !styleEnabled {
		return text
	}
	return failStyle.Render(text)
}
