// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError ends the process with Code after the command has written
// its own output. "switchboard run" returns one when no table command
// matched, carrying the table's failure exit status.
type ExitError struct {
	Code int

	// Reason is reported by Error, for callers that log the error
	// rather than exiting.
	Reason string
}

func (e *ExitError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (exit %d)", e.Reason, e.Code)
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitStatus maps an error from [Command.Execute] to a process exit
// status. It reports false for errors that still need printing.
func ExitStatus(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 1, false
}
