package registry

import "sort"

// Entry is one configuration entry: a dotted-path key and the raw
// validation rules applying to the fields it denotes.
type Entry struct {
	Key   string
	Rules map[string]any
}

// Config is the full, ordered rule configuration. Order matters only
// among entries of equal specificity that touch the same field: the
// later entry wins.
type Config []Entry

// FromMap converts a literal map configuration into a Config. Entries are
// ordered by key so the result is deterministic; use a Config literal
// when explicit declaration order is needed.
func FromMap(m map[string]map[string]any) Config {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cfg := make(Config, 0, len(m))
	for _, k := range keys {
		cfg = append(cfg, Entry{Key: k, Rules: m[k]})
	}
	return cfg
}
