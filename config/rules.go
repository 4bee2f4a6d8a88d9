package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imgvalid/imgvalid/registry"
)

// LoadRules reads a YAML rules document from disk.
func LoadRules(path string) (registry.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingRules, err)
	}
	return ParseRules(bytes.NewReader(data))
}

// ParseRules decodes a YAML rules document: a top-level mapping from
// dotted-path keys to rule maps, for example
//
//	myapp.models:
//	  SIZE: 100
//	myapp.models.Profile.avatar:
//	  FORMAT: [jpeg, png]
//	  DIMENSIONS:
//	    w: {gte: 300}
//
// Document order is preserved, so later entries of equal specificity
// override earlier ones where they overlap.
func ParseRules(r io.Reader) (registry.Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidRulesDoc)
		}
		return nil, errors.Join(ErrReadingRules, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrInvalidRulesDoc
	}

	cfg := make(registry.Config, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var key string
		if err := root.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("%w: key at line %d", ErrInvalidRulesDoc, root.Content[i].Line)
		}
		var rules map[string]any
		if err := root.Content[i+1].Decode(&rules); err != nil {
			return nil, fmt.Errorf("%w: entry %q", ErrInvalidRulesDoc, key)
		}
		cfg = append(cfg, registry.Entry{Key: key, Rules: rules})
	}
	return cfg, nil
}
