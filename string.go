package printf

// String is the s specifier. It prints the argument's string form; see
// [Value.String]. The S form declines.
var String = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	return v.String(), true
})
