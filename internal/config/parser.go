package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a graph document from disk, parses and validates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a YAML graph document and validates it. yaml.v3 already
// reports line numbers in its messages; they are passed through unchanged.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
