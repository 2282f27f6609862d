package printf

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Bytes is the h specifier of [Extended]. It reads the numeric cast as a
// byte count and prints it with SI units ("83 MB"); H uses IEC units
// ("79 MiB"). Negative, NaN and infinite counts print as plain numbers.
var Bytes = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	f := v.Number()
	if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
		return formatFloat(f, v.bits()), true
	}
	if upper {
		return humanize.IBytes(uint64(f)), true
	}
	return humanize.Bytes(uint64(f)), true
})

// Grouped is the n specifier of [Extended]: the numeric cast with comma
// digit grouping independent of locale. The N form declines.
var Grouped = ConversionFunc(func(v Value, upper, _ bool) (string, bool) {
	if upper {
		return "", false
	}
	if n, ok := v.Int(); ok {
		return humanize.Comma(n), true
	}
	f := v.Number()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFloat(f, v.bits()), true
	}
	return humanize.Commaf(f), true
})

// Extended returns [Default] plus the h and n specifiers.
func Extended(opts ...BuiltinOption) *Registry {
	return Default(opts...).
		MustRegister('h', Bytes).
		MustRegister('n', Grouped)
}
