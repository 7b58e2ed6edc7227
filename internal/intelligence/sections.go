package intelligence

import (
	"strings"

	"github.com/alexanderramin/journey/internal/llm"
)

// Section markers delimiting the fields of an analysis reply, in the order
// the model is asked to emit them.
const (
	MarkerStrengths     = "[STRENGTHS]"
	MarkerWeaknesses    = "[WEAKNESSES]"
	MarkerValues        = "[VALUES]"
	MarkerImprovements  = "[IMPROVEMENTS]"
	MarkerRelationships = "[RELATIONSHIPS]"
)

// NoResultPlaceholder fills a text section whose marker is absent.
const NoResultPlaceholder = "no analysis result"

var markerOrder = []string{
	MarkerStrengths,
	MarkerWeaknesses,
	MarkerValues,
	MarkerImprovements,
	MarkerRelationships,
}

// ParsedAnalysis is the structured form of one analysis reply.
type ParsedAnalysis struct {
	Strengths     string
	Weaknesses    string
	Values        string
	Improvements  string
	Relationships map[string]string
}

// ParseSections splits a free-form reply into its labeled sections. Each
// marker is located on its own, so a missing or reordered section never
// disturbs the others. Relationships is never nil.
func ParseSections(text string) ParsedAnalysis {
	bodies := make(map[string]string, len(markerOrder))
	for i, marker := range markerOrder {
		if body, ok := sectionBody(text, marker, markerOrder[i+1:]); ok {
			bodies[marker] = body
		}
	}

	orPlaceholder := func(marker string) string {
		if body, ok := bodies[marker]; ok {
			return body
		}
		return NoResultPlaceholder
	}

	return ParsedAnalysis{
		Strengths:     orPlaceholder(MarkerStrengths),
		Weaknesses:    orPlaceholder(MarkerWeaknesses),
		Values:        orPlaceholder(MarkerValues),
		Improvements:  orPlaceholder(MarkerImprovements),
		Relationships: parseRelationships(bodies[MarkerRelationships]),
	}
}

// sectionBody returns the trimmed text after the first occurrence of marker,
// up to the nearest later-declared marker that appears after it.
func sectionBody(text, marker string, later []string) (string, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}
	start := idx + len(marker)
	rest := text[start:]

	end := len(rest)
	for _, next := range later {
		if j := strings.Index(rest, next); j >= 0 && j < end {
			end = j
		}
	}
	return strings.TrimSpace(rest[:end]), true
}

// parseRelationships decodes the relationship block as a flat JSON object.
// Any failure yields an empty map.
func parseRelationships(block string) map[string]string {
	if strings.TrimSpace(block) == "" {
		return map[string]string{}
	}
	m, err := llm.ExtractJSON[map[string]string](block, nil)
	if err != nil || m == nil {
		return map[string]string{}
	}
	return m
}
