package rule

import "errors"

// Configuration-time errors. All of them surface during normalization,
// before any image is ever validated.
var (
	// ErrUnknownRule is returned for a validation name outside
	// SIZE, DIMENSIONS, FORMAT and ASPECT_RATIO.
	ErrUnknownRule = errors.New("unknown validation rule name")

	// ErrUnknownOperator is returned for an operator token outside
	// gte, lte, gt, lt, eq and ne.
	ErrUnknownOperator = errors.New("unknown comparison operator")

	// ErrConflictingOperators is returned when a rule combines operators
	// that cannot both hold, such as eq with gt.
	ErrConflictingOperators = errors.New("conflicting comparison operators")

	// ErrInvalidRuleValue is returned when a raw rule value has the wrong
	// shape or element type for its validation name.
	ErrInvalidRuleValue = errors.New("invalid rule value")

	// ErrNonPositiveBound is returned when a numeric bound is zero or negative.
	ErrNonPositiveBound = errors.New("rule bound must be positive")

	// ErrEmptyRule is returned for an empty rule map.
	ErrEmptyRule = errors.New("rule value must be a non-empty map")

	// ErrMissingOperator is returned when a rule map holds only the err
	// entry and no operator at all.
	ErrMissingOperator = errors.New("rule value needs at least one operator")

	// ErrExclusiveRules is returned when one configuration entry combines
	// validation names that are mutually exclusive.
	ErrExclusiveRules = errors.New("mutually exclusive validation rules")

	// ErrUnsupportedFormat is returned for a FORMAT bound outside the
	// supported web image formats.
	ErrUnsupportedFormat = errors.New("unsupported image format in rule")
)
