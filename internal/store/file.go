package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bilanco-dev/bilanco/internal/balance"
)

// SaveJSON writes a document to path as indented JSON.
func SaveJSON(path string, doc *balance.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// LoadJSON reads a document from a JSON file.
func LoadJSON(path string) (*balance.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc balance.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}
