package rule

import (
	"errors"
	"fmt"
	"strings"
)

// Violation describes one failed rule for one uploaded image.
type Violation struct {
	Rule    Name
	Message string
	// Custom is true when Message came from the rule's err override
	// rather than the default humanized template. Custom messages are
	// passed through verbatim; escaping is the renderer's concern.
	Custom bool
}

func (v Violation) Error() string {
	return v.Message
}

// Violations aggregates every failed rule for one image so the caller can
// surface all problems with a single upload at once.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "image validation failed"
	}
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Message)
	}
	return "image validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation.
func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

// Has reports whether any violation concerns the given rule name.
func (vs Violations) Has(name Name) bool {
	for _, v := range vs {
		if v.Rule == name {
			return true
		}
	}
	return false
}

// Get returns the messages of every violation for the given rule name.
func (vs Violations) Get(name Name) []string {
	var messages []string
	for _, v := range vs {
		if v.Rule == name {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Rules returns the distinct rule names present, in occurrence order.
func (vs Violations) Rules() []Name {
	var names []Name
	seen := make(map[Name]bool)
	for _, v := range vs {
		if !seen[v.Rule] {
			names = append(names, v.Rule)
			seen[v.Rule] = true
		}
	}
	return names
}

// IsEmpty reports whether no rule was violated.
func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// AsViolations extracts a Violations value from err, or nil if err does not
// carry one.
func AsViolations(err error) Violations {
	if err == nil {
		return nil
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

// IsViolation reports whether err carries image rule violations.
func IsViolation(err error) bool {
	var vs Violations
	return err != nil && errors.As(err, &vs)
}

// violation builds the default-message violation for one failed rule.
func violation(name Name, actual, humanized string) Violation {
	return Violation{
		Rule:    name,
		Message: defaultMessage(name, actual, humanized),
	}
}

// customViolation wraps a user-supplied error text.
func customViolation(name Name, text string) Violation {
	return Violation{Rule: name, Message: text, Custom: true}
}

// defaultMessage renders the standard violation template.
func defaultMessage(name Name, actual, humanized string) string {
	return fmt.Sprintf("[IMAGE %s] Validation error: %s does not meet validation rule: %s.",
		name.Display(), actual, humanized)
}
