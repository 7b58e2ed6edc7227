package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a styled header and a separator
// line. Column widths are measured on visible width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := 0; i < len(widths) && i < len(cells); i++ {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", max(0, w-lipgloss.Width(cell))+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, Dim)

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
