package printf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Width measurement modes for [Config].
const (
	MeasureRunes   = "runes"
	MeasureDisplay = "display"
)

// Config describes a [Formatter] in data form, for loading from YAML or the
// environment.
type Config struct {
	// Types selects built-in specifiers, as for [Assemble]. Empty selects
	// all of them. ENV: PRINTF_TYPES
	Types string `yaml:"types" env:"PRINTF_TYPES"`

	// Locale is a BCP 47 tag for the f and g specifiers. Default: en-US.
	// ENV: PRINTF_LOCALE
	Locale string `yaml:"locale" env:"PRINTF_LOCALE"`

	// Extended adds the h and n specifiers. ENV: PRINTF_EXTENDED
	Extended bool `yaml:"extended" env:"PRINTF_EXTENDED"`

	// WidthLimit bounds directive widths. Zero means [DefaultWidthLimit],
	// negative means only [WidthCeiling] applies. ENV: PRINTF_WIDTH_LIMIT
	WidthLimit int `yaml:"width_limit" env:"PRINTF_WIDTH_LIMIT"`

	// Measure is "runes" (default) or "display". ENV: PRINTF_MEASURE
	Measure string `yaml:"measure" env:"PRINTF_MEASURE"`
}

// LoadConfig decodes a YAML config from r. Unknown keys are rejected. An
// empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Registry assembles the registry described by c.
func (c Config) Registry() (*Registry, error) {
	var opts []BuiltinOption
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %s", ErrInvalidConfig, c.Locale, err)
		}
		opts = append(opts, WithLocale(tag))
	}
	reg, err := Assemble(c.Types, opts...)
	if err != nil {
		return nil, err
	}
	if c.Extended {
		reg.MustRegister('h', Bytes).MustRegister('n', Grouped)
	}
	return reg, nil
}

// Formatter builds the Formatter described by c. opts are applied after
// the config's own settings.
func (c Config) Formatter(opts ...Option) (*Formatter, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}

	var base []Option
	switch c.Measure {
	case "", MeasureRunes:
	case MeasureDisplay:
		base = append(base, WithDisplayWidth())
	default:
		return nil, fmt.Errorf("%w: measure %q", ErrInvalidConfig, c.Measure)
	}
	switch {
	case c.WidthLimit < 0:
		base = append(base, WithWidthLimit(0))
	case c.WidthLimit > 0:
		base = append(base, WithWidthLimit(c.WidthLimit))
	}
	return New(reg, append(base, opts...)...), nil
}
