package printf

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Capture groups of directivePattern.
const (
	groupPlus = iota + 1
	groupArgIndex
	groupPad
	groupLeft
	groupMinWidth
	groupMaxWidth
	groupType
)

// directive is one parsed match of directivePattern.
type directive struct {
	Plus        bool
	ArgIndex    int
	HasArgIndex bool
	Pad         rune
	LeftAlign   bool
	MinWidth    int
	HasMinWidth bool
	MaxWidth    int
	HasMaxWidth bool
	Type        rune
	TypeText    string
}

// parseDirective builds a directive from the submatch indices m of
// directivePattern within s.
func parseDirective(s string, m []int) directive {
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return s[m[2*i]:m[2*i+1]], true
	}

	d := directive{Pad: ' '}
	_, d.Plus = group(groupPlus)
	_, d.LeftAlign = group(groupLeft)

	if idx, ok := group(groupArgIndex); ok {
		d.ArgIndex = atoi(idx[:len(idx)-1])
		d.HasArgIndex = true
	}
	if pad, ok := group(groupPad); ok {
		if pad[0] == '\'' {
			d.Pad, _ = utf8.DecodeRuneInString(pad[1:])
		} else {
			d.Pad = '0'
		}
	}
	if w, ok := group(groupMinWidth); ok {
		d.MinWidth = atoi(w)
		d.HasMinWidth = true
	}
	if w, ok := group(groupMaxWidth); ok {
		d.MaxWidth = atoi(w[1:])
		d.HasMaxWidth = true
	}
	d.TypeText, _ = group(groupType)
	d.Type, _ = utf8.DecodeRuneInString(d.TypeText)
	return d
}

// upper reports whether the type character requests the uppercase variant.
func (d directive) upper() bool {
	return d.Type >= 'A' && d.Type <= 'Z'
}

// atoi parses a run of ASCII digits, saturating at math.MaxInt.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt
	}
	return n
}
