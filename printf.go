package printf

import (
	"errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
	"unicode"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidKey       = errors.New("invalid specifier key")
	ErrUnknownSpecifier = errors.New("unknown specifier")
	ErrInvalidConfig    = errors.New("invalid config")
)

// DefaultWidthLimit is the largest minimum width a directive may request
// before it is clamped. See [WithWidthLimit].
const DefaultWidthLimit = 1 << 16

// WidthCeiling is the largest minimum width any Formatter pads to, even one
// built with WithWidthLimit(0). Width literals beyond it are clamped to it.
const WidthCeiling = 1 << 24

// directivePattern matches one directive:
//
//	%[+][index$][0|'padchar][-][minWidth][.maxWidth]type
//
// Neither padchar nor type may be a line terminator (\n, \r, U+2028, U+2029).
var directivePattern = regexp.MustCompile(`%(\+)?(\d+\$)?(0|'[^\n\r\x{2028}\x{2029}])?(-)?(\d+)?(\.\d+)?([^\n\r\x{2028}\x{2029}])`)

// Formatter substitutes directives in templates using a [Registry].
// A Formatter is safe for concurrent use as long as its registry is not
// modified while calls are in flight.
// Create Formatters with [New]; the zero value is not usable.
type Formatter struct {
	registry     *Registry
	widthLimit   int
	displayWidth bool
	log          *slog.Logger
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithWidthLimit bounds the minimum width a directive can request. Larger
// widths are clamped to n. A value of zero or less, or one above
// [WidthCeiling], leaves only the [WidthCeiling] bound.
func WithWidthLimit(n int) Option {
	return func(f *Formatter) { f.widthLimit = n }
}

// WithDisplayWidth measures padding and truncation in terminal columns
// instead of runes, so wide East Asian characters count twice.
func WithDisplayWidth() Option {
	return func(f *Formatter) { f.displayWidth = true }
}

// WithLogger sets a logger for debug records about unresolved directives,
// missing arguments and clamped widths.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.log = l
		}
	}
}

// New returns a Formatter that resolves specifiers through reg. A nil reg
// uses [Default].
func New(reg *Registry, opts ...Option) *Formatter {
	if reg == nil {
		reg = Default()
	}
	f := &Formatter{
		registry:   reg,
		widthLimit: DefaultWidthLimit,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the registry the Formatter resolves specifiers from.
func (f *Formatter) Registry() *Registry { return f.registry }

var std atomic.Pointer[Formatter]

func init() {
	std.Store(New(nil))
}

// SetDefault makes f the Formatter used by the package-level functions.
// Call it during startup, before formatting begins.
func SetDefault(f *Formatter) {
	if f != nil {
		std.Store(f)
	}
}

// DefaultFormatter returns the Formatter used by the package-level
// functions.
func DefaultFormatter() *Formatter { return std.Load() }

// Sprintf formats template with the default Formatter.
func Sprintf(template string, args ...any) string {
	return std.Load().Sprintf(template, args...)
}

// Fprintf formats template with the default Formatter and writes the
// result to w.
func Fprintf(w io.Writer, template string, args ...any) (int, error) {
	return std.Load().Fprintf(w, template, args...)
}

// Sprintf replaces every directive in template and returns the result.
// Text produced by a replacement is never scanned for further directives.
func (f *Formatter) Sprintf(template string, args ...any) string {
	matches := directivePattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))
	cursor := 0
	auto := 1
	for _, m := range matches {
		sb.WriteString(template[cursor:m[0]])
		cursor = m[1]

		d := parseDirective(template, m)
		text, resolved := f.resolve(d, template, args, auto)
		if resolved && !d.HasArgIndex {
			auto++
		}
		sb.WriteString(text)
	}
	sb.WriteString(template[cursor:])
	return sb.String()
}

// Fprintf formats template and writes the result to w.
func (f *Formatter) Fprintf(w io.Writer, template string, args ...any) (int, error) {
	return io.WriteString(w, f.Sprintf(template, args...))
}

// resolve computes the replacement for d. It reports false when the
// directive fell back to its literal type character.
func (f *Formatter) resolve(d directive, template string, args []any, auto int) (string, bool) {
	literal := d.TypeText
	conv, ok := f.registry.Lookup(unicode.ToLower(d.Type))
	if !ok {
		f.log.Debug("unknown specifier", slog.String("type", literal))
		return literal, false
	}

	index := auto
	if d.HasArgIndex {
		index = d.ArgIndex
	}
	v := argument(template, args, index)
	if v.Missing() {
		f.log.Debug("missing argument", slog.String("type", literal), slog.Int("index", index))
	}

	text, ok := conv.Convert(v, d.upper(), d.Plus)
	if !ok {
		f.log.Debug("specifier declined", slog.String("type", literal))
		return literal, false
	}
	return f.layout(text, d), true
}

// argument returns the value a directive refers to. Index 0 addresses the
// template itself.
func argument(template string, args []any, index int) Value {
	switch {
	case index == 0:
		return ValueOf(template)
	case index > 0 && index <= len(args):
		return ValueOf(args[index-1])
	default:
		return Missing()
	}
}
