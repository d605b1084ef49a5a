package glossary

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOverlay reads extra glossary pairs from a YAML file:
//
//	terms:
//	  quantum: क्वांटम
//	  vector: सदिश
//
// Pairs are returned in document order so that appending them after the
// built-ins gives them override precedence in NewTable.
func LoadOverlay(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read glossary overlay: %w", err)
	}

	var doc struct {
		Terms yaml.Node `yaml:"terms"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse glossary overlay %s: %w", path, err)
	}

	if doc.Terms.Kind == 0 {
		return nil, fmt.Errorf("glossary overlay %s: missing terms mapping", path)
	}
	if doc.Terms.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("glossary overlay %s: terms must be a mapping", path)
	}

	entries := make([]Entry, 0, len(doc.Terms.Content)/2)
	for i := 0; i+1 < len(doc.Terms.Content); i += 2 {
		source := strings.TrimSpace(doc.Terms.Content[i].Value)
		target := strings.TrimSpace(doc.Terms.Content[i+1].Value)
		if source == "" || target == "" {
			return nil, fmt.Errorf("glossary overlay %s: line %d: empty source or target",
				path, doc.Terms.Content[i].Line)
		}
		entries = append(entries, Entry{Source: source, Target: target})
	}
	return entries, nil
}

// LoadTable builds the active Table: the built-in vocabulary, optionally
// merged with an overlay file when path is non-empty.
func LoadTable(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	overlay, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return NewTable(append(BuiltinEntries(), overlay...))
}
