package cli

import "fmt"

// Exit codes for the embedcheck CLI. These support programmatic
// composition and CI integration.
const (
	// ExitSuccess indicates every document validated cleanly.
	ExitSuccess = 0
	// ExitValidationFailed indicates at least one document was invalid.
	ExitValidationFailed = 1
	// ExitInvalidArguments indicates bad command arguments or an
	// unreadable input file.
	ExitInvalidArguments = 2
	// ExitConfigError indicates broken tool configuration.
	ExitConfigError = 3
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error carrying an exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode extracts the exit code from an error returned by Execute.
// nil maps to ExitSuccess; errors without a code map to
// ExitInvalidArguments.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return ExitInvalidArguments
}
