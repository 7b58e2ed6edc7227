package importer

import (
	"fmt"
	"strings"
)

var validOrigins = map[string]bool{"": true, "system": true, "admin": true}

// ValidateCatalogSchema checks the catalog before conversion and returns
// every problem found.
func ValidateCatalogSchema(schema *CatalogSchema) []error {
	if len(schema.Prompts) == 0 {
		return []error{fmt.Errorf("prompts: at least one prompt is required")}
	}

	var errs []error
	seen := make(map[string]int, len(schema.Prompts))
	for i, p := range schema.Prompts {
		field := fmt.Sprintf("prompts[%d]", i)
		key := normalizeContent(p.Content)
		if key == "" {
			errs = append(errs, fmt.Errorf("%s.content is required", field))
		} else if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s.content duplicates prompts[%d]", field, first))
		} else {
			seen[key] = i
		}
		if !validOrigins[p.Origin] {
			errs = append(errs, fmt.Errorf("%s.origin: invalid value %q", field, p.Origin))
		}
	}
	return errs
}

// normalizeContent is the key used to detect duplicate prompts: case and
// whitespace differences do not make a new prompt.
func normalizeContent(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
