package printf

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Conversion renders a directive's argument. upper reports whether the
// directive used the uppercase form of its type character and plus whether
// it carried the + flag. Returning ok == false declines the directive,
// which then prints its type character literally.
type Conversion interface {
	Convert(v Value, upper, plus bool) (text string, ok bool)
}

// ConversionFunc adapts an ordinary function to [Conversion].
type ConversionFunc func(v Value, upper, plus bool) (string, bool)

// Convert calls fn.
func (fn ConversionFunc) Convert(v Value, upper, plus bool) (string, bool) {
	return fn(v, upper, plus)
}

// Registry maps lowercase type characters to conversions.
//
// Registries are not synchronized. Populate them before handing them to a
// [Formatter] and leave them alone while formatting is in progress.
// The zero value is an empty registry ready to use.
type Registry struct {
	convs map[rune]Conversion
}

// NewRegistry returns an empty registry. Every directive formatted with it
// prints its type character.
func NewRegistry() *Registry {
	return &Registry{convs: make(map[rune]Conversion)}
}

// Register installs c under key, replacing any existing entry. Keys must
// not be uppercase: the uppercase form of a type character selects the
// variant of the lowercase entry.
func (r *Registry) Register(key rune, c Conversion) error {
	if c == nil {
		return fmt.Errorf("%w: nil conversion for %q", ErrInvalidKey, key)
	}
	if unicode.ToLower(key) != key {
		return fmt.Errorf("%w: %q is not lowercase", ErrInvalidKey, key)
	}
	if r.convs == nil {
		r.convs = make(map[rune]Conversion)
	}
	r.convs[key] = c
	return nil
}

// RegisterFunc is shorthand for Register(key, ConversionFunc(fn)).
func (r *Registry) RegisterFunc(key rune, fn func(v Value, upper, plus bool) (string, bool)) error {
	if fn == nil {
		return r.Register(key, nil)
	}
	return r.Register(key, ConversionFunc(fn))
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(key rune, c Conversion) *Registry {
	if err := r.Register(key, c); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the conversion registered under key.
func (r *Registry) Lookup(key rune) (Conversion, bool) {
	c, ok := r.convs[key]
	return c, ok
}

// Remove deletes the entry for key, if any.
func (r *Registry) Remove(key rune) { delete(r.convs, key) }

// Keys returns the registered keys in ascending order.
func (r *Registry) Keys() []rune {
	keys := make([]rune, 0, len(r.convs))
	for k := range r.convs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered conversions.
func (r *Registry) Len() int { return len(r.convs) }

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for k, v := range r.convs {
		c.convs[k] = v
	}
	return c
}

// --- Built-in specifiers ---

type builtinConfig struct {
	locale language.Tag
}

// BuiltinOption configures the built-in specifiers installed by [Default]
// and [Assemble].
type BuiltinOption func(*builtinConfig)

// WithLocale sets the locale used by the f and g specifiers.
// Default: American English.
func WithLocale(tag language.Tag) BuiltinOption {
	return func(c *builtinConfig) { c.locale = tag }
}

var builtins = map[rune]func(builtinConfig) Conversion{
	'b': func(builtinConfig) Conversion { return Binary },
	'c': func(builtinConfig) Conversion { return Char },
	'd': func(builtinConfig) Conversion { return Decimal },
	'e': func(builtinConfig) Conversion { return Exponential },
	'f': func(c builtinConfig) Conversion { return LocaleDecimal(c.locale) },
	'g': func(c builtinConfig) Conversion { return General(c.locale) },
	'o': func(builtinConfig) Conversion { return Octal },
	's': func(builtinConfig) Conversion { return String },
	'x': func(builtinConfig) Conversion { return Hex },
}

// Builtins returns the type characters of the built-in specifiers in
// ascending order.
func Builtins() []rune {
	keys := make([]rune, 0, len(builtins))
	for k := range builtins {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Default returns a registry holding every built-in specifier.
func Default(opts ...BuiltinOption) *Registry {
	r, _ := Assemble("", opts...)
	return r
}

// Minimal returns a registry holding only the s specifier.
func Minimal() *Registry {
	return NewRegistry().MustRegister('s', String)
}

// Assemble builds a registry from a subset of the built-in specifiers.
// types lists type characters in any order and case; the empty string
// selects all of them. The s specifier is always included.
func Assemble(types string, opts ...BuiltinOption) (*Registry, error) {
	cfg := builtinConfig{locale: language.AmericanEnglish}
	for _, opt := range opts {
		opt(&cfg)
	}

	keys := Builtins()
	if types != "" {
		keys = []rune{'s'}
		for _, k := range strings.ToLower(types) {
			if _, ok := builtins[k]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSpecifier, k)
			}
			keys = append(keys, k)
		}
	}

	r := NewRegistry()
	for _, k := range keys {
		r.convs[k] = builtins[k](cfg)
	}
	return r, nil
}
