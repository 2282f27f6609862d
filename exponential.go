package printf

import "strings"

// Exponential is the e specifier: the numeric cast in exponential notation
// with as many mantissa digits as needed, e.g. 1.2345e+4. E uppercases the
// result.
var Exponential = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	s := exponential(v.Number(), v.bits())
	if upper {
		s = strings.ToUpper(s)
	}
	return s, true
})
