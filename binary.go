package printf

// Binary is the b specifier: the numeric cast in base 2. The B form
// declines.
var Binary = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	return valueRadix(v, 2), true
})
