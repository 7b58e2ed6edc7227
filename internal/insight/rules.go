package insight

import (
	"fmt"
	"strings"
)

// ConsistencyStreak is the streak length from which consistency is praised.
const ConsistencyStreak = 3

const (
	msgStartToday       = "Start with today's prompt to begin building your reflection history."
	msgBeMoreSpecific   = "Try writing more specifically about what happened and how it felt."
	msgRecordPeople     = "Try mentioning the people in your life and the emotions they bring up."
	msgKeepGoing        = "Every answer is a step toward knowing yourself better. Keep going."
	fmtTopKeyword       = "Your reflections keep returning to %q."
	fmtRelationships    = "You wrote about your relationships with: %s."
	fmtConsistentStreak = "You have reflected %d days in a row. Consistency builds self-awareness."
)

// Highlights returns the positive observations for a report. It always
// returns at least one message.
func Highlights(keywords []KeywordCount, hints []RelationshipHint, totalAnswers, streak int) []string {
	var out []string
	if totalAnswers > 0 && len(keywords) > 0 {
		out = append(out, fmt.Sprintf(fmtTopKeyword, keywords[0].Word))
	}
	if len(hints) > 0 {
		names := make([]string, len(hints))
		for i, h := range hints {
			names[i] = h.Keyword
		}
		out = append(out, fmt.Sprintf(fmtRelationships, strings.Join(names, ", ")))
	}
	if streak >= ConsistencyStreak {
		out = append(out, fmt.Sprintf(fmtConsistentStreak, streak))
	}
	if len(out) == 0 {
		out = append(out, msgKeepGoing)
	}
	return out
}

// Opportunities returns suggestions for richer reflection. A user with no
// answers only gets the nudge to start.
func Opportunities(keywords []KeywordCount, hints []RelationshipHint, totalAnswers int) []string {
	if totalAnswers == 0 {
		return []string{msgStartToday}
	}
	var out []string
	if len(keywords) == 0 {
		out = append(out, msgBeMoreSpecific)
	}
	if len(hints) == 0 {
		out = append(out, msgRecordPeople)
	}
	return out
}
