package printf

// Octal is the o specifier: the numeric cast in base 8. The O form
// declines.
var Octal = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	return valueRadix(v, 8), true
})
