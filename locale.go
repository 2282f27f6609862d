package printf

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// localeFractionDigits is the most fraction digits a locale decimal keeps.
const localeFractionDigits = 3

type localeDecimal struct {
	printer *message.Printer
}

// LocaleDecimal returns the f specifier for tag. It prints the numeric cast
// with the locale's digit grouping and decimal separator, rounded to at
// most three fraction digits. Case is ignored.
func LocaleDecimal(tag language.Tag) Conversion {
	return newLocaleDecimal(tag)
}

func newLocaleDecimal(tag language.Tag) localeDecimal {
	return localeDecimal{printer: message.NewPrinter(tag)}
}

func (l localeDecimal) Convert(v Value, _, _ bool) (string, bool) {
	return l.format(v.Number()), true
}

func (l localeDecimal) format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return l.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(localeFractionDigits)))
}
