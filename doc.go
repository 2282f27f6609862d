// Package printf formats templates containing %-directives with a pluggable
// set of conversions.
//
// The central entry points are [Sprintf] and [Fprintf], which use a
// Formatter over the [Default] registry (replace it with [SetDefault]), and
// [Formatter], which formats with any [Registry]:
//
//	printf.Sprintf("%-6s|%5s|%.3s", "ab", "cd", "abcdef") // "ab    |   cd|def"
//
// # Directive Syntax
//
// A directive has the form
//
//	%[+][index$][0|'padchar][-][minWidth][.maxWidth]type
//
//   - + asks the conversion to sign non-negative numbers (only d does)
//   - index$ selects an argument by 1-based position. Without it,
//     directives consume arguments left to right. Explicit indexes do not
//     move that cursor. 0$ refers to the template itself.
//   - 0 pads with zeros, 'c pads with any character c. Default: space.
//   - - aligns left. Default: right.
//   - minWidth pads the result to at least that many characters.
//   - .maxWidth cuts the result, after padding, to at most that many
//     characters, keeping the end when right-aligned and the start when
//     left-aligned.
//   - type is exactly one character other than a line break. Its
//     lowercase form selects the conversion and an uppercase ASCII letter
//     requests the conversion's uppercase variant.
//
// Directives are never an error. A type character without a registered
// conversion, or whose conversion declines the requested variant, prints
// itself, so "%%" prints "%" and "%T" prints "T". A trailing lone % is left
// as is. Text produced by a conversion is never scanned for directives.
//
// # Specifiers
//
// [Default] holds:
//
//   - s: string form ([String])
//   - d: number, with + support ([Decimal])
//   - x, X: hexadecimal, X uppercases ([Hex])
//   - o: octal ([Octal])
//   - b: binary ([Binary])
//   - c: character by code point ([Char])
//   - e, E: exponential ([Exponential])
//   - f: locale decimal ([LocaleDecimal])
//   - g, G: f for small magnitudes, e otherwise ([General])
//
// [Minimal] holds only s. [Assemble] picks a subset, and [Extended] adds
// byte sizes (h) and grouped integers (n). Add your own with
// [Registry.Register]:
//
//	reg := printf.Default()
//	reg.RegisterFunc('q', func(v printf.Value, upper, _ bool) (string, bool) {
//		return strconv.Quote(v.String()), !upper
//	})
//	printf.New(reg).Sprintf("%q", "hi") // `"hi"`
//
// # Arguments
//
// Conversions receive a [Value]. Missing arguments arrive with
// [Value.Missing] set: numeric conversions print NaN and s prints
// "undefined". [Value.Number] applies weak numeric coercion, so "%d" of
// "abc" prints NaN.
//
// # Widths
//
// Widths count runes. [WithDisplayWidth] counts terminal columns instead.
// Minimum widths above [DefaultWidthLimit] are clamped; see
// [WithWidthLimit]. No Formatter pads beyond [WidthCeiling].
//
// # Configuration
//
// [Config] describes a Formatter as data. Load it with [LoadConfig] (YAML)
// or [ConfigFromEnv] (PRINTF_* variables) and build it with
// [Config.Formatter].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidKey]: registry key is uppercase or the conversion is nil
//   - [ErrUnknownSpecifier]: [Assemble] was asked for an unknown type
//   - [ErrInvalidConfig]: malformed or invalid [Config]
package printf
