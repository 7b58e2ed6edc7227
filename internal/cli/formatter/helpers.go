package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom describes t relative to now in whole days, looking back
// only: journal entries are never in the future.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(now.Sub(t).Hours() / 24))

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// HumanDate returns "Today", "Yesterday" or an absolute date for t as seen
// from now, in now's location.
func HumanDate(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a short relative timestamp for recent times and
// falls back to HumanDate after a day.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t, now)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Excerpt shortens text to at most n runes on a single line.
func Excerpt(text string, n int) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if n <= 0 || len(runes) <= n {
		return flat
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// labelLine renders an aligned "LABEL  value" line used in detail views.
func labelLine(label, value string) string {
	return fmt.Sprintf("  %s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", strings.ToUpper(label))), value)
}
