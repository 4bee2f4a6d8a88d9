package rule

import (
	"fmt"
	"strconv"

	"github.com/imgvalid/imgvalid/imagemeta"
)

// SizeRule constrains the uploaded image's payload size. Bounds are
// expressed in whole kilobytes.
type SizeRule struct {
	Bounds  map[Operator]int
	ErrText string
}

func (r *SizeRule) Name() Name { return Size }

func normalizeSize(raw any) (*SizeRule, error) {
	if n, ok := toInt(raw); ok {
		if n <= 0 {
			return nil, fmt.Errorf("%w: SIZE %d", ErrNonPositiveBound, n)
		}
		return &SizeRule{Bounds: map[Operator]int{EQ: n}}, nil
	}

	m, ok := toRuleMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: SIZE value must be a positive integer or a map of operator bounds", ErrInvalidRuleValue)
	}
	ops, errText, err := operatorEntries(Size, m)
	if err != nil {
		return nil, err
	}

	bounds := make(map[Operator]int, len(ops))
	for op, v := range ops {
		n, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: SIZE %s bound must be an integer", ErrInvalidRuleValue, op)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: SIZE %s bound %d", ErrNonPositiveBound, op, n)
		}
		bounds[op] = n
	}
	return &SizeRule{Bounds: bounds, ErrText: errText}, nil
}

func (r *SizeRule) Humanize() string {
	return humanizeBounds(r.Bounds, operatorOrder, func(n int) string {
		return strconv.Itoa(n) + "KB"
	})
}

func (r *SizeRule) Validator() Validator {
	return func(meta imagemeta.Meta) error {
		actual := meta.SizeKB()
		for _, op := range sortedOps(r.Bounds) {
			ok, err := Compare(op, actual, r.Bounds[op])
			if err != nil {
				return err
			}
			if !ok {
				if r.ErrText != "" {
					return Violations{customViolation(Size, r.ErrText)}
				}
				return Violations{violation(Size, strconv.Itoa(actual)+"KB", r.Humanize())}
			}
		}
		return nil
	}
}
