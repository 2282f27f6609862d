package printf

import "strings"

// Hex is the x specifier: the numeric cast in base 16. X uppercases the
// digits.
var Hex = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	s := valueRadix(v, 16)
	if upper {
		s = strings.ToUpper(s)
	}
	return s, true
})
