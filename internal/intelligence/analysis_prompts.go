package intelligence

import (
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
)

// analysisSystemPrompt frames the model as a reflective analyst and fixes the
// reply layout that ParseSections expects.
const analysisSystemPrompt = `You are an experienced psychological analyst reading a person's private journal.
Analyse the content of their answers only. Do not comment on length, grammar or style.
Write in plain text: no markdown, no bullet symbols, no bold or italics.

Reply with exactly these five sections, each introduced by its marker on its own line:

[STRENGTHS]
The person's strengths, each illustrated with a concrete example from the answers.

[WEAKNESSES]
The person's weaknesses or blind spots, each illustrated with a concrete example.

[VALUES]
The values and beliefs that matter most to them, based on themes that recur across answers.

[IMPROVEMENTS]
Concrete, actionable suggestions for growth.

[RELATIONSHIPS]
A single flat JSON object mapping each person or group mentioned to a short description
of the relationship, for example {"family": "close and supportive", "Mina": "trusted friend"}.
Use {} when nobody is mentioned.`

// buildAnalysisPrompt renders the answer history, oldest first, followed by
// the person's stated ideal self when one is active.
func buildAnalysisPrompt(history []domain.HistoryItem, goal *domain.Goal) string {
	var b strings.Builder
	b.WriteString("Answer history:\n")
	for i, item := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\nPrompt: ")
		b.WriteString(item.PromptContent)
		b.WriteString("\nAnswer: ")
		b.WriteString(item.Answer.Content)
		b.WriteString("\nDate: ")
		b.WriteString(domain.FormatDay(item.Answer.CreatedAt))
	}

	if goal != nil && strings.TrimSpace(goal.IdealPersonDescription) != "" {
		b.WriteString("\n\nThe person they want to become: ")
		b.WriteString(strings.TrimSpace(goal.IdealPersonDescription))
	}

	b.WriteString("\n\nRespond using the five section markers exactly as instructed.")
	return b.String()
}
