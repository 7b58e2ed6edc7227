package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// CatalogSchema is the top-level JSON structure for a prompt catalog file.
type CatalogSchema struct {
	Prompts []PromptImport `json:"prompts"`
}

// PromptImport is one catalog entry. Origin defaults to "system".
type PromptImport struct {
	Content string `json:"content"`
	Origin  string `json:"origin,omitempty"`
}

// LoadCatalogSchema reads and parses a prompt catalog JSON file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogSchema(data)
}

// ParseCatalogSchema parses catalog JSON. Unknown fields are rejected so
// typos surface instead of being silently dropped.
func ParseCatalogSchema(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
