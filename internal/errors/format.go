package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError for terminal display, with colors when
// the destination supports them (fatih/color handles NO_COLOR and
// non-TTY detection). Returns "" for nil.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	heading := color.New(color.FgRed, color.Bold).Sprint(err.Category.String())
	return format(err, heading)
}

// FormatErrorPlain renders a CLIError without any color codes.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, err.Category.String())
}

func format(err *CLIError, heading string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteString(": ")
	sb.WriteString(err.Message)
	sb.WriteString("\n")

	if err.Usage != "" {
		sb.WriteString("\nUsage: ")
		sb.WriteString(err.Usage)
		sb.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		sb.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			sb.WriteString("  - ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FormatSimpleError wraps an arbitrary error under a category heading.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes a formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted error to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
