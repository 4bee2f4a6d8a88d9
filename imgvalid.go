package imgvalid

import (
	"fmt"

	"github.com/imgvalid/imgvalid/config"
	"github.com/imgvalid/imgvalid/logger"
	"github.com/imgvalid/imgvalid/registry"
	"github.com/imgvalid/imgvalid/schema"
)

// Init builds a validation registry eagerly from a literal configuration.
// Any configuration problem — malformed key, unknown operator, conflicting
// operators, unresolvable field — fails here, before any image is
// validated.
func Init(cfg registry.Config, s *schema.Schema, opts ...registry.Option) (*registry.Registry, error) {
	r := registry.New(cfg, s, opts...)
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r, nil
}

// InitFromEnv loads settings from the environment, reads the YAML rules
// document they point at, and builds the registry with a logger
// configured per those settings.
func InitFromEnv(s *schema.Schema, opts ...registry.Option) (*registry.Registry, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	format, err := logger.ParseFormat(settings.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	log := logger.New(logger.WithLevel(level), logger.WithFormat(format))

	cfg, err := config.LoadRules(settings.RulesFile)
	if err != nil {
		return nil, err
	}

	opts = append([]registry.Option{registry.WithLogger(log)}, opts...)
	return Init(cfg, s, opts...)
}
