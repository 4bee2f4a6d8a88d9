package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/imgvalid/imgvalid/imagemeta"
	"github.com/imgvalid/imgvalid/rule"
	"github.com/imgvalid/imgvalid/schema"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used during registry construction.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// Registry owns the compiled validator closures for every configured
// field. It is built once — eagerly via Build or lazily on first lookup —
// and is read-only afterwards, so lookups need no locking beyond the
// guarded build itself.
type Registry struct {
	cfg    Config
	schema *schema.Schema
	log    *slog.Logger

	mu         sync.Mutex
	built      bool
	buildErr   error
	rules      map[schema.Field]rule.Set
	validators map[schema.Field][]rule.Validator
}

// New creates a registry over the given configuration and schema.
// Nothing is resolved until Build or the first lookup.
func New(cfg Config, s *schema.Schema, opts ...Option) *Registry {
	r := &Registry{
		cfg:    cfg,
		schema: s,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build resolves and compiles the whole configuration. It is idempotent:
// repeated calls return the first outcome until Invalidate. Any
// configuration problem fails the build as a whole; no partial registry
// is ever published.
func (r *Registry) Build() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buildLocked()
}

func (r *Registry) buildLocked() error {
	if r.built {
		return r.buildErr
	}
	r.built = true

	merged, err := resolve(r.cfg, r.schema)
	if err != nil {
		r.buildErr = fmt.Errorf("build image validation registry: %w", err)
		return r.buildErr
	}

	r.rules = merged
	r.validators = make(map[schema.Field][]rule.Validator, len(merged))
	for f, set := range merged {
		r.validators[f] = set.Validators()
		r.log.Debug("registered image validators",
			slog.String("field", f.String()),
			slog.Int("rules", len(set)))
	}
	return nil
}

// Invalidate drops the built state so the next Build or lookup resolves
// the configuration again. Intended for test isolation.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built = false
	r.buildErr = nil
	r.rules = nil
	r.validators = nil
}

// ValidatorsFor returns the ordered validator closures for a field,
// building the registry first if needed. Fields never mentioned by the
// configuration get an empty list.
func (r *Registry) ValidatorsFor(f schema.Field) ([]rule.Validator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.buildLocked(); err != nil {
		return nil, err
	}
	return r.validators[f], nil
}

// RulesFor returns the resolved rule set for a field.
func (r *Registry) RulesFor(f schema.Field) (rule.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.buildLocked(); err != nil {
		return nil, err
	}
	return r.rules[f], nil
}

// Fields returns every field the registry holds validators for, sorted
// by their dotted path.
func (r *Registry) Fields() ([]schema.Field, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.buildLocked(); err != nil {
		return nil, err
	}
	out := make([]schema.Field, 0, len(r.validators))
	for f := range r.validators {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out, nil
}

// Validate runs every validator attached to the field against the decoded
// image metadata, collecting all violations so the caller sees every
// problem with one upload at once. The returned error is a
// rule.Violations when rules were violated.
func (r *Registry) Validate(f schema.Field, meta imagemeta.Meta) error {
	validators, err := r.ValidatorsFor(f)
	if err != nil {
		return err
	}

	var all rule.Violations
	for _, validate := range validators {
		if err := validate(meta); err != nil {
			vs := rule.AsViolations(err)
			if vs == nil {
				return err
			}
			all = append(all, vs...)
		}
	}
	if all.IsEmpty() {
		return nil
	}
	return all
}
