package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator shows activity while a batch of documents is validated.
// On a TTY it animates a spinner; otherwise it prints plain lines.
type Indicator struct {
	caps    TerminalCapabilities
	symbols Symbols
	spinner *spinner.Spinner
}

// NewIndicator creates an indicator for the given capabilities.
func NewIndicator(caps TerminalCapabilities) *Indicator {
	return &Indicator{caps: caps, symbols: SelectSymbols(caps)}
}

// Symbols exposes the selected symbol set so callers can reuse the
// pass/fail marks in their own output.
func (i *Indicator) Symbols() Symbols {
	return i.symbols
}

// Start begins showing activity with the given message.
func (i *Indicator) Start(msg string) {
	if i.caps.IsTTY {
		i.spinner = spinner.New(
			spinner.CharSets[i.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		// Spinner goes to stderr so result lines on stdout stay clean.
		i.spinner.Writer = os.Stderr
		i.spinner.Suffix = " " + msg
		i.spinner.Start()
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Update changes the message while the indicator runs.
func (i *Indicator) Update(msg string) {
	if i.spinner != nil {
		i.spinner.Suffix = " " + msg
	}
}

// Stop ends the animation, leaving the terminal clean.
func (i *Indicator) Stop() {
	if i.spinner != nil {
		i.spinner.Stop()
		i.spinner = nil
	}
}
