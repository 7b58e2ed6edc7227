package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
)

// FormatReport renders the on-demand insight report.
func FormatReport(r *contract.ReportResponse) string {
	var b strings.Builder

	b.WriteString(labelLine("answers", fmt.Sprintf("%d", r.TotalAnswers)))
	b.WriteString(labelLine("prompts", fmt.Sprintf("%d covered", r.UniquePromptsCovered)))
	b.WriteString(labelLine("streak", StreakIndicator(r.Streak)))
	if r.LastAnsweredAt != nil {
		b.WriteString(labelLine("last", RelativeDateFrom(*r.LastAnsweredAt, r.GeneratedAt)))
	}
	b.WriteString(labelLine("cycle", RenderCycleProgress(r.Cycle.AnsweredInCycle, r.Cycle.CycleSize, cycleBarWidth)))

	if len(r.TopKeywords) > 0 {
		words := make([]string, len(r.TopKeywords))
		for i, k := range r.TopKeywords {
			words[i] = fmt.Sprintf("%s %s", Bold(k.Word), Dim(fmt.Sprintf("×%d", k.Count)))
		}
		b.WriteString("\n" + Header("Top keywords") + "\n  " + strings.Join(words, "   ") + "\n")
	}

	if len(r.RelationshipHints) > 0 {
		b.WriteString("\n" + Header("Relationships") + "\n")
		for _, h := range r.RelationshipHints {
			b.WriteString("  " + StylePurple.Render(h.Keyword) + "  " + Dim(Excerpt(h.Description, 70)) + "\n")
		}
	}

	writeList(&b, "Highlights", StyleGreen.Render("+"), r.Highlights)
	writeList(&b, "Opportunities", StyleYellow.Render("→"), r.Opportunities)

	if len(r.RecentAnswers) > 0 {
		b.WriteString("\n" + Header("Recent answers") + "\n")
		for _, a := range r.RecentAnswers {
			b.WriteString(fmt.Sprintf("  %s  %s\n    %s\n",
				Dim(domain.FormatDay(a.AnsweredAt.In(r.GeneratedAt.Location()))),
				StyleBlue.Render(Excerpt(a.PromptContent, 60)),
				Excerpt(a.Content, 80)))
		}
	}

	return RenderBox("Reflection report", strings.TrimRight(b.String(), "\n"))
}

func writeList(b *strings.Builder, title, bullet string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + Header(title) + "\n")
	for _, it := range items {
		b.WriteString("  " + bullet + " " + it + "\n")
	}
}
