package printf

// Decimal is the d specifier. It prints the numeric cast of the argument
// and prefixes non-negative results with + when the directive has the +
// flag. Go integers print exactly. The D form declines.
var Decimal = ConversionFunc(func(v Value, upper, plus bool) (string, bool) {
	if upper {
		return "", false
	}
	s, negative, ok := v.integer(10)
	if !ok {
		f := v.Number()
		s, negative = formatFloat(f, v.bits()), !(f >= 0)
	}
	if plus && !negative {
		s = "+" + s
	}
	return s, true
})
