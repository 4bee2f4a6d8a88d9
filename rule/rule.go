package rule

import (
	"strings"

	"github.com/imgvalid/imgvalid/imagemeta"
)

// Name identifies one of the checkable image attributes.
type Name string

const (
	Size        Name = "SIZE"
	Dimensions  Name = "DIMENSIONS"
	Format      Name = "FORMAT"
	AspectRatio Name = "ASPECT_RATIO"
)

// Order returns the fixed evaluation order of rules attached to one field.
func Order() []Name {
	return []Name{Size, Dimensions, Format, AspectRatio}
}

// Known reports whether n is a recognized validation name.
func (n Name) Known() bool {
	switch n {
	case Size, Dimensions, Format, AspectRatio:
		return true
	}
	return false
}

// Display returns the name as it appears in error messages.
func (n Name) Display() string {
	return strings.ReplaceAll(string(n), "_", " ")
}

// exclusiveNames lists validation names that may not share one
// configuration entry. Constraining exact dimensions and aspect ratio
// at the same time is either redundant or contradictory.
var exclusiveNames = [][2]Name{
	{Dimensions, AspectRatio},
}

// Validator checks decoded image metadata against one normalized rule.
// On violation it returns a Violations error; nil otherwise.
type Validator func(meta imagemeta.Meta) error

// Normalized is the canonical, self-contained form of one rule after
// parsing its raw configuration value.
type Normalized interface {
	// Name returns the validation name this rule constrains.
	Name() Name
	// Validator compiles the rule into its check closure.
	Validator() Validator
	// Humanize renders the rule as natural language for default
	// error messages.
	Humanize() string
}

// Set holds the final rules for one field, keyed by validation name.
type Set map[Name]Normalized

// Validators compiles the set into closures in stable rule order.
func (s Set) Validators() []Validator {
	var out []Validator
	for _, name := range Order() {
		if r, ok := s[name]; ok {
			out = append(out, r.Validator())
		}
	}
	return out
}

// Clone returns a shallow copy of the set. Normalized rules are immutable,
// so sharing them between sets is safe.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name, r := range s {
		out[name] = r
	}
	return out
}
