package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

// Convert turns a validated catalog into prompts ready for insertion, in
// file order. Prompts whose content matches one in existing are skipped so
// a catalog can be imported repeatedly.
func Convert(schema *CatalogSchema, existing []*domain.Prompt, now time.Time) (add []*domain.Prompt, skipped int) {
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[normalizeContent(p.Content)] = true
	}

	for _, p := range schema.Prompts {
		key := normalizeContent(p.Content)
		if known[key] {
			skipped++
			continue
		}
		known[key] = true

		origin := domain.OriginSystem
		if p.Origin != "" {
			origin = domain.PromptOrigin(p.Origin)
		}
		add = append(add, &domain.Prompt{
			Content:   strings.TrimSpace(p.Content),
			Origin:    origin,
			CreatedAt: now.UTC(),
		})
	}
	return add, skipped
}
