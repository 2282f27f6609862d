package printf

import (
	"math"
	"unicode/utf8"
)

// Char is the c specifier. It truncates the numeric cast to an integer and
// prints the character with that code point. NaN and infinities map to
// U+0000; values outside the Unicode range or in the surrogate block print
// U+FFFD. The C form declines.
var Char = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	return string(codePoint(v.Number())), true
})

func codePoint(f float64) rune {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f < 0 || f > utf8.MaxRune {
		return utf8.RuneError
	}
	r := rune(f)
	if !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	return r
}
