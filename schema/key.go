package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// modelsWord is the mandatory second word of every configuration key.
const modelsWord = "models"

// Specificity levels of a configuration key.
const (
	SpecificityApp   = 1 // app.models
	SpecificityModel = 2 // app.models.Model
	SpecificityField = 3 // app.models.Model.field
)

// Key is a parsed configuration key: a dotted path denoting every image
// field of an app, of a model, or one concrete field.
type Key struct {
	App   string
	Model string // empty at app specificity
	Field string // empty below field specificity
	raw   string
}

// ParseKey validates and parses a raw dotted-path key.
func ParseKey(raw string) (Key, error) {
	if raw == "" {
		return Key{}, fmt.Errorf("%w: key must be a non-empty dotted path", ErrInvalidKey)
	}
	words := strings.Split(raw, ".")
	if len(words) < 2 || len(words) > 4 {
		return Key{}, fmt.Errorf("%w: %q must consist of two to four dot-separated words", ErrInvalidKey, raw)
	}
	for _, w := range words {
		if !isIdentifier(w) {
			return Key{}, fmt.Errorf("%w: %q is not a valid dotted path, check for typos", ErrInvalidKey, raw)
		}
	}
	if words[1] != modelsWord {
		return Key{}, fmt.Errorf("%w: the second word of %q should be %q, not %q", ErrInvalidKey, raw, modelsWord, words[1])
	}

	k := Key{App: words[0], raw: raw}
	if len(words) > 2 {
		k.Model = words[2]
	}
	if len(words) > 3 {
		k.Field = words[3]
	}
	return k, nil
}

// Specificity returns the key's precedence rank: 1 for app-wide keys,
// 2 for model-wide keys, 3 for field-specific keys. Higher wins.
func (k Key) Specificity() int {
	switch {
	case k.Field != "":
		return SpecificityField
	case k.Model != "":
		return SpecificityModel
	default:
		return SpecificityApp
	}
}

func (k Key) String() string {
	return k.raw
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
