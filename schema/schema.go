package schema

import (
	"fmt"
	"strings"
	"sync"
)

// Field identifies one image field on one model.
type Field struct {
	App   string
	Model string
	Name  string
}

func (f Field) String() string {
	return f.App + "." + modelsWord + "." + f.Model + "." + f.Name
}

// Schema is the in-process catalog of image-capable fields. The host
// application registers its fields once at startup; configuration keys
// are then resolved against the catalog. Registration order is preserved
// so resolution output is deterministic.
type Schema struct {
	mu   sync.RWMutex
	apps []*appEntry
}

type appEntry struct {
	name   string
	models []*modelEntry
}

type modelEntry struct {
	name   string
	fields []string
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{}
}

// AddField registers one image field. Duplicate registrations are ignored.
func (s *Schema) AddField(app, model, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.app(app)
	if a == nil {
		a = &appEntry{name: app}
		s.apps = append(s.apps, a)
	}
	m := a.model(model)
	if m == nil {
		m = &modelEntry{name: model}
		a.models = append(a.models, m)
	}
	for _, f := range m.fields {
		if f == field {
			return
		}
	}
	m.fields = append(m.fields, field)
}

func (s *Schema) app(name string) *appEntry {
	for _, a := range s.apps {
		if a.name == name {
			return a
		}
	}
	return nil
}

func (a *appEntry) model(name string) *modelEntry {
	for _, m := range a.models {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Apps returns the registered app names in registration order.
func (s *Schema) Apps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, a.name)
	}
	return out
}

// FieldsFor resolves a parsed key to the concrete set of image fields it
// denotes: every field in the app, every field of the model, or the one
// named field. Unknown names fail with diagnostics listing what is
// available.
func (s *Schema) FieldsFor(k Key) ([]Field, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.app(k.App)
	if a == nil {
		return nil, fmt.Errorf("%w: %q has no registered image fields, registered apps: %s",
			ErrUnknownApp, k.App, strings.Join(s.appNamesLocked(), ", "))
	}

	if k.Specificity() == SpecificityApp {
		var out []Field
		for _, m := range a.models {
			for _, f := range m.fields {
				out = append(out, Field{App: a.name, Model: m.name, Name: f})
			}
		}
		return out, nil
	}

	m := a.model(k.Model)
	if m == nil {
		return nil, fmt.Errorf("%w: %q in app %q, registered models: %s",
			ErrUnknownModel, k.Model, k.App, strings.Join(a.modelNames(), ", "))
	}

	if k.Specificity() == SpecificityModel {
		out := make([]Field, 0, len(m.fields))
		for _, f := range m.fields {
			out = append(out, Field{App: a.name, Model: m.name, Name: f})
		}
		return out, nil
	}

	for _, f := range m.fields {
		if f == k.Field {
			return []Field{{App: a.name, Model: m.name, Name: f}}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q on model %q, registered image fields: %s",
		ErrUnknownField, k.Field, k.Model, strings.Join(m.fields, ", "))
}

func (s *Schema) appNamesLocked() []string {
	out := make([]string, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, a.name)
	}
	return out
}

func (a *appEntry) modelNames() []string {
	out := make([]string, 0, len(a.models))
	for _, m := range a.models {
		out = append(out, m.name)
	}
	return out
}
