// Package errors defines the typed CLI errors embedcheck commands
// return, with categories, remediation hints, and terminal-aware
// formatting.
package errors

// ErrorCategory groups CLI errors for display and exit-code mapping.
type ErrorCategory int

const (
	// Argument errors: the user invoked a command incorrectly.
	Argument ErrorCategory = iota
	// Configuration errors: the tool's own configuration is broken
	// (bad config file, unknown schema name, unresolved reference).
	Configuration
	// Validation errors: the supplied document failed schema validation.
	Validation
	// Runtime errors: everything else (I/O failures, unreadable input).
	Runtime
)

// String returns the display heading for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Validation:
		return "Validation Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing command error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string   // usage line shown for argument errors
	Remediation []string // "to fix this" steps, shown in order
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an argument error carrying a usage line.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a configuration error with remediation steps.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewValidationError creates a validation error with remediation steps.
func NewValidationError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Validation, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a runtime error with remediation steps.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}
