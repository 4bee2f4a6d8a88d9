package schema

import "errors"

var (
	// ErrInvalidKey is returned for a configuration key that is not a
	// dotted path of the form app.models[.Model[.field]].
	ErrInvalidKey = errors.New("invalid configuration key")

	// ErrUnknownApp is returned when a key names an app that has no
	// registered models.
	ErrUnknownApp = errors.New("unknown app")

	// ErrUnknownModel is returned when a key names a model not registered
	// under its app.
	ErrUnknownModel = errors.New("unknown model")

	// ErrUnknownField is returned when a key names a field that is not a
	// registered image field of its model.
	ErrUnknownField = errors.New("unknown image field")
)
