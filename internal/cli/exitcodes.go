package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the todo binary.
const (
	// ExitSuccess covers every completed command, including mark/remove
	// calls with an out-of-range number.
	ExitSuccess = 0

	// ExitFailure indicates an I/O or configuration failure.
	ExitFailure = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2
)

// exitError carries the exit code a command failed with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

func failure(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: ExitFailure, err: err}
}

// exitCode maps an error returned by the command tree to a process exit
// code. Errors not produced by this package (unknown commands, bad flags)
// come from cobra and count as usage errors.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsage
}
