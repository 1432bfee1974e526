package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	unicode := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})
	assert.Equal(t, "✓", unicode.Checkmark)
	assert.Equal(t, "✗", unicode.Failure)

	ascii := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})
	assert.Equal(t, "[OK]", ascii.Checkmark)
	assert.Equal(t, "[FAIL]", ascii.Failure)
	assert.NotEqual(t, unicode.SpinnerSet, ascii.SpinnerSet)
}

func TestDetect_NonTTY(t *testing.T) {
	// Test processes run without a terminal on stdout.
	caps := Detect()
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
	assert.False(t, caps.SupportsUnicode)
	assert.Equal(t, 0, caps.Width)
}

func TestIndicator_NonTTYLifecycle(t *testing.T) {
	ind := NewIndicator(TerminalCapabilities{})
	ind.Start("validating 3 documents")
	ind.Update("second.json")
	ind.Stop()
	ind.Stop() // stopping twice is harmless

	assert.Equal(t, "[OK]", ind.Symbols().Checkmark)
}
