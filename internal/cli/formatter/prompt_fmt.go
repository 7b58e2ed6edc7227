package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
)

const cycleBarWidth = 20

// FormatPromptList renders the prompt catalog in ID order.
func FormatPromptList(prompts []*domain.Prompt) string {
	if len(prompts) == 0 {
		return Dim("The prompt catalog is empty. Add one with: journey prompt add --text <prompt>")
	}
	rows := make([][]string, len(prompts))
	for i, p := range prompts {
		origin := Dim(string(p.Origin))
		if p.Origin == domain.OriginAdmin {
			origin = StylePurple.Render(string(p.Origin))
		}
		rows[i] = []string{fmt.Sprintf("%d", p.ID), origin, Excerpt(p.Content, 70)}
	}
	return RenderTable([]string{"ID", "ORIGIN", "PROMPT"}, rows)
}

// FormatTodayPrompt renders today's prompt, the user's place in the cycle
// and, when the prompt was answered before, that earlier answer.
func FormatTodayPrompt(resp *contract.TodayPromptResponse, now time.Time) string {
	if resp.Prompt == nil {
		return RenderBox("Today's prompt", Dim("No prompt available. The catalog is empty."))
	}

	var b strings.Builder
	b.WriteString(Dim(fmt.Sprintf("#%d", resp.Prompt.ID)) + "  " + Bold(resp.Prompt.Content) + "\n\n")
	b.WriteString(labelLine("cycle", RenderCycleProgress(resp.AnsweredInCycle, resp.CycleSize, cycleBarWidth)))
	b.WriteString(labelLine("remaining", fmt.Sprintf("%d", resp.RemainingInCycle)))
	b.WriteString(labelLine("answered", fmt.Sprintf("%d total", resp.AnsweredCount)))
	if resp.PreviousAnswer != nil {
		b.WriteString("\n" + formatPreviousAnswer(resp.PreviousAnswer, now))
	}
	return RenderBox("Today's prompt", strings.TrimRight(b.String(), "\n"))
}

func formatPreviousAnswer(prev *contract.PreviousAnswer, now time.Time) string {
	return fmt.Sprintf("%s %s\n  %s\n",
		StyleBlue.Render("Last time"),
		Dim("("+RelativeDateFrom(prev.AnsweredAt, now)+")"),
		StyleFg.Render(Excerpt(prev.Content, 200)))
}
