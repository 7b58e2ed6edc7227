package formatter

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

// FormatAnalysis renders the latest analysis with one section per field.
// Empty sections are skipped.
func FormatAnalysis(a *domain.AnalysisResult, now time.Time) string {
	if a == nil {
		return RenderBox("Analysis", Dim("No analysis yet. Answer a prompt and check back shortly."))
	}

	var b strings.Builder
	b.WriteString(Dim("Analyzed "+HumanTimestamp(a.AnalyzedAt, now)+" for answer ") + TruncID(a.AnswerID) + "\n")

	sections := []struct {
		title string
		body  string
	}{
		{"Strengths", a.Strengths},
		{"Weaknesses", a.Weaknesses},
		{"Values", a.Values},
		{"Suggestions", a.ImprovementSuggestions},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		b.WriteString("\n" + Header(s.title) + "\n" + StyleFg.Render(s.body) + "\n")
	}

	if len(a.Relationships) > 0 {
		names := make([]string, 0, len(a.Relationships))
		for name := range a.Relationships {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\n" + Header("Relationships") + "\n")
		for _, name := range names {
			b.WriteString("  " + StylePurple.Render(name) + "  " + a.Relationships[name] + "\n")
		}
	}
	return RenderBox("Analysis", strings.TrimRight(b.String(), "\n"))
}
