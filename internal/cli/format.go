// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/model"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats an already-scaled percentage, e.g. 12.5 -> "12.50%".
func FormatPercent(p float64) string {
	return budget.FormatPercentage(p)
}

// FormatCountdown renders a countdown on one line.
// e.g., "10,957d 04h 09m 03s", or "finished"
func FormatCountdown(c model.Countdown) string {
	if c.Finished {
		return "finished"
	}
	return fmt.Sprintf("%sd %02dh %02dm %02ds", FormatNumber(c.Days), c.Hours, c.Minutes, c.Seconds)
}

// FormatYears converts a day count into approximate years, e.g. "82.1 years".
func FormatYears(days int) string {
	return fmt.Sprintf("%.1f years", float64(days)/365.2425)
}
