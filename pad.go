package printf

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// layout applies the directive's minimum width and then its maximum width
// to a converted value.
func (f *Formatter) layout(s string, d directive) string {
	if d.HasMinWidth {
		width, limit := d.MinWidth, f.widthLimit
		if limit <= 0 || limit > WidthCeiling {
			limit = WidthCeiling
		}
		if width > limit {
			f.log.Debug("width clamped", slog.Int("requested", width), slog.Int("limit", limit))
			width = limit
		}
		s = f.pad(s, width, d.Pad, d.LeftAlign)
	}
	if d.HasMaxWidth {
		s = f.truncate(s, d.MaxWidth, d.LeftAlign)
	}
	return s
}

func (f *Formatter) width(s string) int {
	if f.displayWidth {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

func (f *Formatter) runeWidth(r rune) int {
	if f.displayWidth {
		return runewidth.RuneWidth(r)
	}
	return 1
}

// pad fills s with padChar until it is at least width wide. Fill goes on
// the left unless left is set.
func (f *Formatter) pad(s string, width int, padChar rune, left bool) string {
	missing := width - f.width(s)
	if missing <= 0 {
		return s
	}
	pw := f.runeWidth(padChar)
	if pw <= 0 {
		// Zero-width pad characters still count as one step.
		pw = 1
	}
	fill := strings.Repeat(string(padChar), (missing+pw-1)/pw)
	if left {
		return s + fill
	}
	return fill + s
}

// truncate cuts s to at most width. It keeps the head when left is set and
// the tail otherwise.
func (f *Formatter) truncate(s string, width int, left bool) string {
	if f.width(s) <= width {
		return s
	}
	if left {
		if f.displayWidth {
			return runewidth.Truncate(s, width, "")
		}
		n := 0
		for i := range s {
			if n == width {
				return s[:i]
			}
			n++
		}
		return s
	}

	// Walk backwards until the tail would exceed width.
	used := 0
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		w := f.runeWidth(r)
		if used+w > width {
			break
		}
		used += w
		end -= size
	}
	return s[end:]
}
