package rule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.English)
	upperCaser = cases.Upper(language.English)
)

// joinHuman renders a list of humanized fragments as prose:
// "a", "a and b", "a, b and c". The conjunction is "and" or "or".
func joinHuman(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " " + conjunction + " " + items[len(items)-1]
	}
}

// humanizeBounds renders each operator bound as "<operator words> <value>"
// using prettify on the bound, joined with "and".
func humanizeBounds[T any](bounds map[Operator]T, order []Operator, prettify func(T) string) string {
	var parts []string
	for _, op := range order {
		if bound, ok := bounds[op]; ok {
			parts = append(parts, op.Human()+" "+prettify(bound))
		}
	}
	return joinHuman(parts, "and")
}

// operatorOrder is the stable rendering order for humanized bounds.
var operatorOrder = []Operator{GTE, GT, LTE, LT, EQ, NE}
