package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%. Green above two thirds,
// yellow above one third, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCycleProgress renders how far a user is through their prompt cycle,
// e.g. "[██░░░] 40%  2/5". An empty cycle renders as a dim dash.
func RenderCycleProgress(answered, size, width int) string {
	if size <= 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%s  %d/%d", RenderProgress(float64(answered)/float64(size), width), answered, size)
}
