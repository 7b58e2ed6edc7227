package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlights(t *testing.T) {
	kw := []KeywordCount{{Word: "family", Count: 3}}
	hints := []RelationshipHint{{Keyword: "family"}, {Keyword: "friend"}}

	tests := []struct {
		name   string
		kw     []KeywordCount
		hints  []RelationshipHint
		total  int
		streak int
		want   []string
	}{
		{"no answers", nil, nil, 0, 0, []string{msgKeepGoing}},
		{"keyword only", kw, nil, 2, 1, []string{`Your reflections keep returning to "family".`}},
		{"all rules", kw, hints, 5, 4, []string{
			`Your reflections keep returning to "family".`,
			"You wrote about your relationships with: family, friend.",
			"You have reflected 4 days in a row. Consistency builds self-awareness.",
		}},
		{"streak below threshold", nil, nil, 2, 2, []string{msgKeepGoing}},
		{"streak at threshold", nil, nil, 3, 3, []string{
			"You have reflected 3 days in a row. Consistency builds self-awareness.",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlights(tt.kw, tt.hints, tt.total, tt.streak))
		})
	}
}

func TestOpportunities(t *testing.T) {
	kw := []KeywordCount{{Word: "work", Count: 1}}
	hints := []RelationshipHint{{Keyword: "team"}}

	assert.Equal(t, []string{msgStartToday}, Opportunities(nil, nil, 0))
	assert.Equal(t, []string{msgBeMoreSpecific, msgRecordPeople}, Opportunities(nil, nil, 1))
	assert.Equal(t, []string{msgRecordPeople}, Opportunities(kw, nil, 1))
	assert.Empty(t, Opportunities(kw, hints, 1))
}
