package main

import "errors"

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, unknown store kind)
	ExitDataError   = 3 // Data error (malformed labels, corrupt manifest)
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error

	// reported is set when the command already wrote its response, so the
	// runner must not print an error document after it.
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func configError(err error) error { return withCode(ExitConfigError, err) }
func dataError(err error) error   { return withCode(ExitDataError, err) }

// reportedError fails the command without a second output document.
func reportedError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: ExitError, err: err, reported: true}
}

func isReported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.reported
}

// exitCode maps err to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}
