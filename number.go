package printf

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// formatNumber renders f the way a numeric cast prints: plain decimal for
// magnitudes in [1e-6, 1e21), exponential otherwise.
func formatNumber(f float64) string {
	return formatFloat(f, 64)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return exponential(f, bits)
}

// exponential renders f with the shortest mantissa that round-trips and an
// exponent without zero padding, e.g. 1.2345e+4.
func exponential(f float64, bits int) string {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return formatFloat(f, bits)
	case f == 0:
		return "0e+0"
	}
	s := strconv.FormatFloat(f, 'e', -1, bits)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// maxRadixDigits bounds the fraction digits radix emits. Power-of-two bases
// terminate well before this for any float64.
const maxRadixDigits = 1100

// radix renders f in base 2 to 36, including a fractional part when f is
// not an integer.
func radix(f float64, base int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + radix(-f, base)
	}

	ip, frac := math.Modf(f)
	var sb strings.Builder
	if ip < 1<<63 {
		sb.WriteString(strconv.FormatUint(uint64(ip), base))
	} else {
		n, _ := big.NewFloat(ip).Int(nil)
		sb.WriteString(n.Text(base))
	}
	if frac > 0 {
		sb.WriteByte('.')
		for i := 0; frac > 0 && i < maxRadixDigits; i++ {
			frac *= float64(base)
			d := int(frac)
			frac -= float64(d)
			sb.WriteByte(strconv.FormatInt(int64(d), base)[0])
		}
	}
	return sb.String()
}

// valueRadix renders the numeric cast of v in base. Go integers print
// exactly instead of going through float64.
func valueRadix(v Value, base int) string {
	if s, _, ok := v.integer(base); ok {
		return s
	}
	return radix(v.Number(), base)
}
