package registry

import (
	"fmt"
	"sort"

	"github.com/imgvalid/imgvalid/rule"
	"github.com/imgvalid/imgvalid/schema"
)

// obligation is one configuration entry after parsing: the rules it
// declares and the concrete fields it covers.
type obligation struct {
	key         schema.Key
	specificity int
	rules       rule.Set
	fields      []schema.Field
}

// resolve folds the whole configuration into per-field rule sets.
//
// Entries are applied in ascending specificity: app-wide rules first,
// then model-wide, then field-specific. Within one specificity level a
// later entry overrides an earlier one for the rules they share.
// A rule name set at higher specificity replaces the lower one wholesale;
// rule names not re-declared are kept.
func resolve(cfg Config, s *schema.Schema) (map[schema.Field]rule.Set, error) {
	if len(cfg) == 0 {
		return nil, ErrEmptyConfig
	}

	obligations := make([]obligation, 0, len(cfg))
	for _, e := range cfg {
		key, err := schema.ParseKey(e.Key)
		if err != nil {
			return nil, err
		}
		rules, err := rule.NormalizeSet(e.Rules)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Key, err)
		}
		fields, err := s.FieldsFor(key)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Key, err)
		}
		obligations = append(obligations, obligation{
			key:         key,
			specificity: key.Specificity(),
			rules:       rules,
			fields:      fields,
		})
	}

	// Stable sort keeps declaration order within one specificity level,
	// which is the documented tie-break for equal-specificity entries
	// touching the same field.
	sort.SliceStable(obligations, func(i, j int) bool {
		return obligations[i].specificity < obligations[j].specificity
	})

	merged := make(map[schema.Field]rule.Set)
	for _, ob := range obligations {
		for _, f := range ob.fields {
			set, ok := merged[f]
			if !ok {
				merged[f] = ob.rules.Clone()
				continue
			}
			for _, name := range rule.Order() {
				if r, ok := ob.rules[name]; ok {
					set[name] = r
				}
			}
		}
	}
	return merged, nil
}
