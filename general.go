package printf

import (
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Bounds of the range g prints as a locale decimal.
const (
	generalMin = -1 << 17
	generalMax = 1<<17 - 1
)

type general struct {
	decimal localeDecimal
}

// General returns the g specifier for tag. Values whose integer part lies
// in [-131072, 131071] print like f; larger magnitudes print like e. NaN and
// infinities take the f branch. G uppercases only exponential output.
func General(tag language.Tag) Conversion {
	return general{decimal: newLocaleDecimal(tag)}
}

func (g general) Convert(v Value, upper, _ bool) (string, bool) {
	f := v.Number()
	if generalDecimal(f) {
		return g.decimal.format(f), true
	}
	s := exponential(f, v.bits())
	if upper {
		s = strings.ToUpper(s)
	}
	return s, true
}

func generalDecimal(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	t := math.Trunc(f)
	return t >= generalMin && t <= generalMax
}
