package printf

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// MissingText is the string form of a [Value] whose argument was not
// supplied.
const MissingText = "undefined"

// Value is a formatting argument as seen by a [Conversion]. It is either
// missing, when a directive refers past the end of the argument list, or
// wraps the supplied value (which may itself be nil).
type Value struct {
	raw     any
	present bool
}

// ValueOf wraps v.
func ValueOf(v any) Value { return Value{raw: v, present: true} }

// Missing returns the Value handed to conversions for absent arguments.
func Missing() Value { return Value{} }

// Missing reports whether the argument was absent.
func (v Value) Missing() bool { return !v.present }

// Raw returns the wrapped value, or nil when missing.
func (v Value) Raw() any { return v.raw }

// String casts the value to text. Missing values render as [MissingText],
// floats use the shortest representation that round-trips.
func (v Value) String() string {
	if !v.present {
		return MissingText
	}
	if v.nilPointer() {
		return "<nil>"
	}
	switch x := v.raw.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatNumber(rv.Float())
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v.raw)
}

// Int returns the value as an int64 when it holds a Go integer that fits.
func (v Value) Int() (int64, bool) {
	if !v.present || v.raw == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	}
	return 0, false
}

// integer renders the value in base when it holds a Go integer of any
// width, reporting whether it was negative.
func (v Value) integer(base int) (text string, negative, ok bool) {
	if !v.present || v.raw == nil {
		return "", false, false
	}
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return strconv.FormatInt(n, base), n < 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), base), false, true
	}
	return "", false, false
}

// Number casts the value to a float64. Booleans become 0 or 1, strings are
// parsed as numeric literals (surrounding whitespace ignored, the empty
// string is 0), and anything that cannot be read as a number is NaN.
func (v Value) Number() float64 {
	if !v.present || v.raw == nil || v.nilPointer() {
		return math.NaN()
	}
	if b, ok := v.raw.([]byte); ok {
		return parseNumber(string(b))
	}
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(rv.String())
	}
	switch x := v.raw.(type) {
	case fmt.Stringer:
		return parseNumber(x.String())
	case error:
		return parseNumber(x.Error())
	}
	return math.NaN()
}

// nilPointer reports whether the value is a typed nil pointer, whose
// String or Error method may not be callable.
func (v Value) nilPointer() bool {
	rv := reflect.ValueOf(v.raw)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// bits is the precision numeric renderings of the value use: 32 for
// float32, 64 otherwise.
func (v Value) bits() int {
	if reflect.ValueOf(v.raw).Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	radixLiteral   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// parseNumber reads s as a numeric literal, returning NaN when it is not one.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if decimalLiteral.MatchString(s) {
		// Out of range literals come back as ±Inf or 0 along with the error.
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	if radixLiteral.MatchString(s) {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}
	return math.NaN()
}
