package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// FormatHours renders a fractional hour count for display (e.g. "2h",
// "2h 30m", "45m").
func FormatHours(hours float64) string {
	total := int(hours*60 + 0.5)
	if total < 0 {
		total = 0
	}
	h := total / 60
	m := total % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatInterval renders a start-end clock pair.
func FormatInterval(start, end string) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// padCell truncates or pads a string to exactly width display columns.
// Truncation is width-aware so styled text never breaks mid-escape.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + spaces(width-ansi.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
