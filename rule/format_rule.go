package rule

import (
	"fmt"
	"strings"

	"github.com/imgvalid/imgvalid/imagemeta"
)

// FormatRule constrains the image's encoding format. Formats have no
// ordering, so only eq and ne apply: eq passes when the actual format
// matches any listed format, ne passes when it matches none.
type FormatRule struct {
	Op      Operator
	Formats []string
	ErrText string
}

func (r *FormatRule) Name() Name { return Format }

func normalizeFormat(raw any) (*FormatRule, error) {
	if s, ok := raw.(string); ok {
		f, err := checkFormat(s)
		if err != nil {
			return nil, err
		}
		return &FormatRule{Op: EQ, Formats: []string{f}}, nil
	}

	if list, ok := toStringList(raw); ok {
		formats, err := checkFormats(list)
		if err != nil {
			return nil, err
		}
		return &FormatRule{Op: EQ, Formats: formats}, nil
	}

	m, ok := toRuleMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: FORMAT value must be a format name, a list of names, or a map", ErrInvalidRuleValue)
	}
	ops, errText, err := operatorEntries(Format, m)
	if err != nil {
		return nil, err
	}
	if len(ops) > 1 {
		return nil, fmt.Errorf("%w: FORMAT accepts a single eq or ne operator", ErrInvalidRuleValue)
	}
	for op, v := range ops {
		if op != EQ && op != NE {
			return nil, fmt.Errorf("%w: FORMAT has no ordering, %s is not applicable", ErrInvalidRuleValue, op)
		}
		var formats []string
		if s, ok := v.(string); ok {
			f, err := checkFormat(s)
			if err != nil {
				return nil, err
			}
			formats = []string{f}
		} else if list, ok := toStringList(v); ok {
			formats, err = checkFormats(list)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("%w: FORMAT %s bound must be a format name or a list of names", ErrInvalidRuleValue, op)
		}
		return &FormatRule{Op: op, Formats: formats, ErrText: errText}, nil
	}
	// unreachable: operatorEntries guarantees at least one operator
	return nil, ErrMissingOperator
}

func checkFormat(s string) (string, error) {
	f := strings.ToLower(s)
	if !imagemeta.IsSupported(f) {
		return "", fmt.Errorf("%w: %q, supported: %s",
			ErrUnsupportedFormat, s, strings.Join(imagemeta.Supported(), ", "))
	}
	return f, nil
}

func checkFormats(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	for _, s := range list {
		f, err := checkFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *FormatRule) Humanize() string {
	pretty := make([]string, 0, len(r.Formats))
	for _, f := range r.Formats {
		pretty = append(pretty, upperCaser.String(f))
	}
	if len(pretty) == 1 {
		return r.Op.Human() + " " + pretty[0]
	}
	if r.Op == EQ {
		return r.Op.Human() + " one of the following formats " + joinHuman(pretty, "or")
	}
	return r.Op.Human() + " the following formats " + joinHuman(pretty, "and")
}

func (r *FormatRule) Validator() Validator {
	return func(meta imagemeta.Meta) error {
		actual := strings.ToLower(meta.Format)
		passed := r.Op == NE
		for _, f := range r.Formats {
			if r.Op == EQ && actual == f {
				passed = true
				break
			}
			if r.Op == NE && actual == f {
				passed = false
				break
			}
		}
		if passed {
			return nil
		}
		if r.ErrText != "" {
			return Violations{customViolation(Format, r.ErrText)}
		}
		return Violations{violation(Format, upperCaser.String(actual), r.Humanize())}
	}
}
