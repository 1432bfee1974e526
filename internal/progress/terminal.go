// Package progress provides terminal capability detection and a
// spinner-backed indicator for batch validation runs.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the output terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// Detect inspects stdout and the environment for terminal features.
func Detect() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("EMBEDCHECK_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// Symbols holds the pass/fail marks and spinner charset for the
// detected terminal.
type Symbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}

// SelectSymbols returns the symbol set matching the capabilities.
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14, // Unicode dots
		}
	}
	return Symbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // ASCII: | / - \
	}
}
