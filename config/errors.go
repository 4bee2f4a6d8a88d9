package config

import "errors"

var (
	// ErrParsingSettings is returned when environment variables cannot be
	// parsed into the settings struct.
	ErrParsingSettings = errors.New("failed to parse environment settings")

	// ErrReadingRules is returned when the rules document cannot be read.
	ErrReadingRules = errors.New("failed to read rules document")

	// ErrInvalidRulesDoc is returned when the rules document is not a
	// mapping from dotted-path keys to rule maps.
	ErrInvalidRulesDoc = errors.New("rules document must be a mapping of dotted keys to rule maps")
)
