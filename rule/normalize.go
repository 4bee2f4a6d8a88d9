package rule

import (
	"fmt"
	"sort"
)

// Normalize parses one raw rule value for the given validation name into
// its canonical, self-contained form. Raw values are whatever a decoded
// configuration document yields: scalars, []any sequences and
// map[string]any mappings.
func Normalize(name Name, raw any) (Normalized, error) {
	switch name {
	case Size:
		return normalizeSize(raw)
	case Dimensions:
		return normalizeDimensions(raw)
	case Format:
		return normalizeFormat(raw)
	case AspectRatio:
		return normalizeAspectRatio(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, string(name))
	}
}

// NormalizeSet parses one configuration entry's value: a mapping from
// validation name to raw rule value. Keys are processed in sorted order so
// the first reported problem is deterministic.
func NormalizeSet(raw map[string]any) (Set, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: entry declares no validation rules", ErrEmptyRule)
	}

	names := make([]string, 0, len(raw))
	for k := range raw {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		if !Name(k).Known() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, k)
		}
	}
	for _, pair := range exclusiveNames {
		_, hasA := raw[string(pair[0])]
		_, hasB := raw[string(pair[1])]
		if hasA && hasB {
			return nil, fmt.Errorf("%w: %s and %s", ErrExclusiveRules, pair[0], pair[1])
		}
	}

	set := make(Set, len(raw))
	for _, k := range names {
		nr, err := Normalize(Name(k), raw[k])
		if err != nil {
			return nil, err
		}
		set[Name(k)] = nr
	}
	return set, nil
}

// operatorEntries splits a raw rule map into typed-later operator bounds
// and the optional custom error text, rejecting unknown operators,
// operator conflicts, and operator-free maps.
func operatorEntries(name Name, m map[string]any) (map[Operator]any, string, error) {
	if len(m) == 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrEmptyRule, name)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errText string
	ops := make(map[Operator]any)
	present := make([]Operator, 0, len(m))
	for _, k := range keys {
		if k == ErrKey {
			s, ok := m[k].(string)
			if !ok {
				return nil, "", fmt.Errorf("%w: %s err entry must be a string", ErrInvalidRuleValue, name)
			}
			errText = s
			continue
		}
		op := Operator(k)
		if !op.Known() {
			return nil, "", fmt.Errorf("%w: %q in %s rule", ErrUnknownOperator, k, name)
		}
		ops[op] = m[k]
		present = append(present, op)
	}

	if len(ops) == 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrMissingOperator, name)
	}
	if a, b, conflict := findConflict(present); conflict {
		return nil, "", fmt.Errorf("%w: %s and %s in %s rule", ErrConflictingOperators, a, b, name)
	}
	return ops, errText, nil
}

// sortedOps returns the map's operators in the stable rendering order.
func sortedOps[T any](bounds map[Operator]T) []Operator {
	var out []Operator
	for _, op := range operatorOrder {
		if _, ok := bounds[op]; ok {
			out = append(out, op)
		}
	}
	return out
}

// toInt accepts the integer representations a decoded config can produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	if n, ok := toInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func toRuleMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// toPair accepts a two-element integer sequence.
func toPair(v any) ([2]int, bool) {
	switch seq := v.(type) {
	case [2]int:
		return seq, true
	case []int:
		if len(seq) != 2 {
			return [2]int{}, false
		}
		return [2]int{seq[0], seq[1]}, true
	case []any:
		if len(seq) != 2 {
			return [2]int{}, false
		}
		a, okA := toInt(seq[0])
		b, okB := toInt(seq[1])
		if !okA || !okB {
			return [2]int{}, false
		}
		return [2]int{a, b}, true
	}
	return [2]int{}, false
}

// toPairList accepts a non-empty sequence of two-element integer pairs.
// A bare pair like [800, 600] is not a pair list; the caller tries toPair
// first to disambiguate.
func toPairList(v any) ([][2]int, bool) {
	var elems []any
	switch seq := v.(type) {
	case []any:
		elems = seq
	case [][2]int:
		if len(seq) == 0 {
			return nil, false
		}
		return seq, true
	case [][]int:
		for _, p := range seq {
			elems = append(elems, p)
		}
	default:
		return nil, false
	}
	if len(elems) == 0 {
		return nil, false
	}
	out := make([][2]int, 0, len(elems))
	for _, e := range elems {
		p, ok := toPair(e)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

func toStringList(v any) ([]string, bool) {
	switch seq := v.(type) {
	case []string:
		if len(seq) == 0 {
			return nil, false
		}
		return seq, true
	case []any:
		if len(seq) == 0 {
			return nil, false
		}
		out := make([]string, 0, len(seq))
		for _, e := range seq {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func positivePair(p [2]int) bool {
	return p[0] > 0 && p[1] > 0
}
