package rule

import (
	"fmt"
	"strconv"

	"github.com/imgvalid/imgvalid/imagemeta"
)

// Axis sub-keys of a DIMENSIONS rule map.
const (
	axisWidth  = "w"
	axisHeight = "h"
)

// DimensionsRule constrains pixel dimensions. Exactly one of the three
// shapes is populated:
//
//   - Exact: the image must match one of the listed width/height pairs;
//   - Bounds: each operator bound applies to both axes and all must hold;
//   - W/H: independent per-axis constraints, violated and reported
//     independently of each other.
type DimensionsRule struct {
	Exact   [][2]int
	Bounds  map[Operator][2]int
	W, H    *AxisRule
	ErrText string
}

// AxisRule is an independent constraint on a single axis of the image.
type AxisRule struct {
	axis    string
	Bounds  map[Operator]int
	ErrText string
}

func (r *DimensionsRule) Name() Name { return Dimensions }

func normalizeDimensions(raw any) (*DimensionsRule, error) {
	if pair, ok := toPair(raw); ok {
		if !positivePair(pair) {
			return nil, fmt.Errorf("%w: DIMENSIONS %v", ErrNonPositiveBound, pair)
		}
		return &DimensionsRule{Exact: [][2]int{pair}}, nil
	}

	if pairs, ok := toPairList(raw); ok {
		for _, p := range pairs {
			if !positivePair(p) {
				return nil, fmt.Errorf("%w: DIMENSIONS %v", ErrNonPositiveBound, p)
			}
		}
		return &DimensionsRule{Exact: pairs}, nil
	}

	m, ok := toRuleMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: DIMENSIONS value must be a width/height pair, a list of pairs, or a map", ErrInvalidRuleValue)
	}
	if hasOnlyAxisKeys(m) {
		return normalizeAxes(m)
	}

	ops, errText, err := operatorEntries(Dimensions, m)
	if err != nil {
		return nil, err
	}
	bounds := make(map[Operator][2]int, len(ops))
	for op, v := range ops {
		pair, ok := toPair(v)
		if !ok {
			return nil, fmt.Errorf("%w: DIMENSIONS %s bound must be a pair of two integers", ErrInvalidRuleValue, op)
		}
		if !positivePair(pair) {
			return nil, fmt.Errorf("%w: DIMENSIONS %s bound %v", ErrNonPositiveBound, op, pair)
		}
		bounds[op] = pair
	}
	return &DimensionsRule{Bounds: bounds, ErrText: errText}, nil
}

// hasOnlyAxisKeys reports whether the rule map uses the w/h sub-key form.
func hasOnlyAxisKeys(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if k != axisWidth && k != axisHeight {
			return false
		}
	}
	return true
}

func normalizeAxes(m map[string]any) (*DimensionsRule, error) {
	rule := &DimensionsRule{}
	for _, axis := range []string{axisWidth, axisHeight} {
		raw, ok := m[axis]
		if !ok {
			continue
		}
		sub, ok := toRuleMap(raw)
		if !ok {
			return nil, fmt.Errorf("%w: DIMENSIONS %q value must be a map of operator bounds", ErrInvalidRuleValue, axis)
		}
		ops, errText, err := operatorEntries(Dimensions, sub)
		if err != nil {
			return nil, err
		}
		bounds := make(map[Operator]int, len(ops))
		for op, v := range ops {
			n, ok := toInt(v)
			if !ok {
				return nil, fmt.Errorf("%w: DIMENSIONS %s.%s bound must be an integer", ErrInvalidRuleValue, axis, op)
			}
			if n <= 0 {
				return nil, fmt.Errorf("%w: DIMENSIONS %s.%s bound %d", ErrNonPositiveBound, axis, op, n)
			}
			bounds[op] = n
		}
		axisRule := &AxisRule{axis: axis, Bounds: bounds, ErrText: errText}
		if axis == axisWidth {
			rule.W = axisRule
		} else {
			rule.H = axisRule
		}
	}
	return rule, nil
}

func prettifyPair(p [2]int) string {
	return fmt.Sprintf("%d x %dpx", p[0], p[1])
}

func (a *AxisRule) label() string {
	if a.axis == axisWidth {
		return titleCaser.String("width")
	}
	return titleCaser.String("height")
}

func (a *AxisRule) humanize() string {
	bounds := humanizeBounds(a.Bounds, operatorOrder, func(n int) string {
		return strconv.Itoa(n) + "px"
	})
	return a.label() + " " + bounds
}

func (r *DimensionsRule) Humanize() string {
	switch {
	case len(r.Exact) > 0:
		pretty := make([]string, 0, len(r.Exact))
		for _, p := range r.Exact {
			pretty = append(pretty, prettifyPair(p))
		}
		return EQ.Human() + " one of the following dimensions " + joinHuman(pretty, "or")
	case r.W != nil || r.H != nil:
		var parts []string
		if r.W != nil {
			parts = append(parts, r.W.humanize())
		}
		if r.H != nil {
			parts = append(parts, r.H.humanize())
		}
		if len(parts) == 2 {
			return parts[0] + ". " + parts[1]
		}
		return parts[0]
	default:
		return humanizeBounds(r.Bounds, operatorOrder, prettifyPair)
	}
}

func (r *DimensionsRule) Validator() Validator {
	switch {
	case len(r.Exact) > 0:
		return r.exactValidator()
	case r.W != nil || r.H != nil:
		return r.axesValidator()
	default:
		return r.boundsValidator()
	}
}

func (r *DimensionsRule) exactValidator() Validator {
	return func(meta imagemeta.Meta) error {
		for _, p := range r.Exact {
			if meta.Width == p[0] && meta.Height == p[1] {
				return nil
			}
		}
		return Violations{r.fail(meta)}
	}
}

func (r *DimensionsRule) boundsValidator() Validator {
	return func(meta imagemeta.Meta) error {
		for _, op := range sortedOps(r.Bounds) {
			bound := r.Bounds[op]
			okW, err := Compare(op, meta.Width, bound[0])
			if err != nil {
				return err
			}
			okH, err := Compare(op, meta.Height, bound[1])
			if err != nil {
				return err
			}
			if !okW || !okH {
				return Violations{r.fail(meta)}
			}
		}
		return nil
	}
}

// axesValidator evaluates the width and height rules independently so an
// image failing only one axis reports only that axis.
func (r *DimensionsRule) axesValidator() Validator {
	return func(meta imagemeta.Meta) error {
		var vs Violations
		if r.W != nil {
			if v, violated, err := r.W.check(meta.Width); err != nil {
				return err
			} else if violated {
				vs.Add(v)
			}
		}
		if r.H != nil {
			if v, violated, err := r.H.check(meta.Height); err != nil {
				return err
			} else if violated {
				vs.Add(v)
			}
		}
		if vs.IsEmpty() {
			return nil
		}
		return vs
	}
}

func (a *AxisRule) check(actual int) (Violation, bool, error) {
	for _, op := range sortedOps(a.Bounds) {
		ok, err := Compare(op, actual, a.Bounds[op])
		if err != nil {
			return Violation{}, false, err
		}
		if !ok {
			if a.ErrText != "" {
				return customViolation(Dimensions, a.ErrText), true, nil
			}
			v := violation(Dimensions, strconv.Itoa(actual)+"px", a.humanize())
			return v, true, nil
		}
	}
	return Violation{}, false, nil
}

func (r *DimensionsRule) fail(meta imagemeta.Meta) Violation {
	if r.ErrText != "" {
		return customViolation(Dimensions, r.ErrText)
	}
	actual := prettifyPair([2]int{meta.Width, meta.Height})
	return violation(Dimensions, actual, r.Humanize())
}
