package insight

import "strings"

// RelationshipHint is a relationship keyword found in the user's answers with
// its canned description.
type RelationshipHint struct {
	Keyword     string
	Description string
}

type dictionaryEntry struct {
	keyword     string
	description string
}

// relationshipDictionary is scanned in declared order for every answer.
var relationshipDictionary = []dictionaryEntry{
	{"family", "Family appears as a recurring source of meaning."},
	{"friend", "Friendships play a visible part in your reflections."},
	{"colleague", "Work relationships shape part of your days."},
	{"partner", "Your partner is present in your thoughts."},
	{"parent", "Your parents come up when you reflect."},
	{"mother", "Your mother is part of your story."},
	{"father", "Your father is part of your story."},
	{"sibling", "Your siblings appear in your reflections."},
	{"child", "Children are part of what you care about."},
	{"mentor", "Mentors influence how you grow."},
	{"team", "Being part of a team matters to you."},
	{"neighbor", "Your neighbourhood and the people around you come up."},
}

// RelationshipHints scans answers in order and records the first match of
// each dictionary keyword. Later matches never overwrite an earlier hint.
func RelationshipHints(texts []string) []RelationshipHint {
	seen := make(map[string]bool)
	var hints []RelationshipHint
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, e := range relationshipDictionary {
			if seen[e.keyword] || !strings.Contains(lower, e.keyword) {
				continue
			}
			seen[e.keyword] = true
			hints = append(hints, RelationshipHint{Keyword: e.keyword, Description: e.description})
		}
	}
	return hints
}

// HintMap returns hints keyed by keyword.
func HintMap(hints []RelationshipHint) map[string]string {
	m := make(map[string]string, len(hints))
	for _, h := range hints {
		m[h.Keyword] = h.Description
	}
	return m
}
