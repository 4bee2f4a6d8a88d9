package rule

import (
	"fmt"
	"strconv"

	"github.com/imgvalid/imgvalid/imagemeta"
)

// AspectRatioRule constrains width over height, rounded to two decimals.
type AspectRatioRule struct {
	Bounds  map[Operator]float64
	ErrText string
}

func (r *AspectRatioRule) Name() Name { return AspectRatio }

func normalizeAspectRatio(raw any) (*AspectRatioRule, error) {
	if _, isMap := raw.(map[string]any); !isMap {
		f, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: ASPECT_RATIO value must be a positive number or a map of operator bounds", ErrInvalidRuleValue)
		}
		if f <= 0 {
			return nil, fmt.Errorf("%w: ASPECT_RATIO %v", ErrNonPositiveBound, f)
		}
		return &AspectRatioRule{Bounds: map[Operator]float64{EQ: f}}, nil
	}

	ops, errText, err := operatorEntries(AspectRatio, raw.(map[string]any))
	if err != nil {
		return nil, err
	}
	bounds := make(map[Operator]float64, len(ops))
	for op, v := range ops {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: ASPECT_RATIO %s bound must be a number", ErrInvalidRuleValue, op)
		}
		if f <= 0 {
			return nil, fmt.Errorf("%w: ASPECT_RATIO %s bound %v", ErrNonPositiveBound, op, f)
		}
		bounds[op] = f
	}
	return &AspectRatioRule{Bounds: bounds, ErrText: errText}, nil
}

func formatRatio(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (r *AspectRatioRule) Humanize() string {
	return humanizeBounds(r.Bounds, operatorOrder, formatRatio)
}

func (r *AspectRatioRule) Validator() Validator {
	return func(meta imagemeta.Meta) error {
		actual := meta.AspectRatio()
		for _, op := range sortedOps(r.Bounds) {
			ok, err := Compare(op, actual, r.Bounds[op])
			if err != nil {
				return err
			}
			if !ok {
				if r.ErrText != "" {
					return Violations{customViolation(AspectRatio, r.ErrText)}
				}
				return Violations{violation(AspectRatio, formatRatio(actual), r.Humanize())}
			}
		}
		return nil
	}
}
