package rule

import "fmt"

// Operator is one of the comparison tokens usable inside a rule value.
type Operator string

const (
	GT  Operator = "gt"
	GTE Operator = "gte"
	LT  Operator = "lt"
	LTE Operator = "lte"
	EQ  Operator = "eq"
	NE  Operator = "ne"
)

// ErrKey is the optional rule-map entry carrying a custom error message.
const ErrKey = "err"

// Numeric covers the bound types operators compare against.
type Numeric interface {
	~int | ~int64 | ~float64
}

var operatorWords = map[Operator]string{
	LT:  "less than",
	LTE: "less than or equal to",
	GT:  "greater than",
	GTE: "greater than or equal to",
	NE:  "not equal to",
	EQ:  "equal to",
}

// Known reports whether op is a recognized operator token.
func (op Operator) Known() bool {
	_, ok := operatorWords[op]
	return ok
}

// Human returns the natural-language form of the operator,
// e.g. "greater than or equal to" for gte.
func (op Operator) Human() string {
	return operatorWords[op]
}

// Compare evaluates actual against bound under op.
func Compare[T Numeric](op Operator, actual, bound T) (bool, error) {
	switch op {
	case LT:
		return actual < bound, nil
	case LTE:
		return actual <= bound, nil
	case GT:
		return actual > bound, nil
	case GTE:
		return actual >= bound, nil
	case EQ:
		return actual == bound, nil
	case NE:
		return actual != bound, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}
}

// CompareString evaluates actual against bound under op. Strings have no
// ordering here, so only eq and ne are accepted.
func CompareString(op Operator, actual, bound string) (bool, error) {
	switch op {
	case EQ:
		return actual == bound, nil
	case NE:
		return actual != bound, nil
	default:
		return false, fmt.Errorf("%w: %q is not applicable to strings", ErrUnknownOperator, string(op))
	}
}

// conflictingPairs lists operator combinations that make no sense inside a
// single rule. An attribute cannot be "less than X" and "equal to Y" as
// independent constraints, and lt/lte (or gt/gte) together are redundant
// at best and contradictory at worst.
var conflictingPairs = [][2]Operator{
	{LT, LTE},
	{GT, GTE},
	{LT, EQ},
	{GT, EQ},
	{LTE, EQ},
	{GTE, EQ},
	{NE, EQ},
}

// Conflicting reports whether a and b may not co-occur in one rule.
func Conflicting(a, b Operator) bool {
	for _, pair := range conflictingPairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// findConflict returns the first conflicting pair present in ops.
func findConflict(ops []Operator) (Operator, Operator, bool) {
	for i := 0; i < len(ops); i++ {
		for j := i + 1; j < len(ops); j++ {
			if Conflicting(ops[i], ops[j]) {
				return ops[i], ops[j], true
			}
		}
	}
	return "", "", false
}
