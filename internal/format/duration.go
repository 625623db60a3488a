// Package format provides display formatting helpers shared by the CLI,
// the TUI and the report renderers.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders a duration as fractional seconds with two decimals,
// the way the report summary lines present totals (e.g. "3.52 seconds").
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f seconds", d.Seconds())
}

// FormatSpeedup renders the ratio between a sequential and a concurrent
// duration (e.g. "2.40x"). A non-positive concurrent duration yields "n/a"
// rather than a division by zero.
func FormatSpeedup(sequential, concurrent time.Duration) string {
	if concurrent <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", float64(sequential)/float64(concurrent))
}
