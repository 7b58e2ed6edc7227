package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
)

// FormatSubmitResult confirms a saved answer. The previous answer to the
// same prompt is shown so the user can compare.
func FormatSubmitResult(resp *contract.SubmitAnswerResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Answer saved.") + " " + TruncID(resp.AnswerID) + "\n")
	if resp.AnalysisQueued {
		b.WriteString(Dim("Analysis is running in the background. See it later with: journey analysis") + "\n")
	} else {
		b.WriteString(StyleYellow.Render("Analysis was skipped because the queue is busy.") + "\n")
	}
	if resp.PreviousAnswer != nil {
		b.WriteString("\n" + formatPreviousAnswer(resp.PreviousAnswer, now))
	}
	return b.String()
}

// FormatHistory renders answers newest first with their analysis summary.
func FormatHistory(entries []contract.AnswerHistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No answers found.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		at := e.AnsweredAt.In(now.Location())
		b.WriteString(Dim(HumanDate(at, now)+"  "+at.Format("15:04")) + "  " + TruncID(e.AnswerID) + "\n")
		b.WriteString("  " + StyleBlue.Render(e.PromptContent) + "\n")
		b.WriteString("  " + StyleFg.Render(e.Content) + "\n")
		if e.Analysis != nil {
			if e.Analysis.Values != "" {
				b.WriteString("  " + StylePurple.Render("values: ") + Excerpt(e.Analysis.Values, 80) + "\n")
			}
			if e.Analysis.Strengths != "" {
				b.WriteString("  " + StyleGreen.Render("strengths: ") + Excerpt(e.Analysis.Strengths, 80) + "\n")
			}
		}
	}
	return b.String()
}
