// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. The CLI's main function checks returned errors for
// the ExitCode method and exits silently with that code — the command
// is expected to have already written its own output. Useful where a
// non-zero exit is a valid outcome rather than an unexpected error
// (e.g., a transfer deliberately cancelled by the operator).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
