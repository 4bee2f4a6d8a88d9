package registry

import "errors"

var (
	// ErrEmptyConfig is returned when the configuration declares no
	// entries at all.
	ErrEmptyConfig = errors.New("image validation configuration is empty")

	// ErrNotBuilt is returned when a lookup runs against a registry whose
	// build failed.
	ErrNotBuilt = errors.New("registry has not been built")
)
