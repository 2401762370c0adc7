// Package format implements the brace template language and its format
// specifier mini-language:
//
//	{[index][!conversion][:spec]}
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
// Templates are UTF-8 Go strings. Argument values render themselves through
// the Value interface; a Formatter re-encodes the finished text into any code
// unit type supported by package encoding.
package format

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Unset marks a Width or Precision that the specifier did not give.
const Unset = math.MaxInt

// MaxWidth bounds Width and Precision. Larger values stay in Other, so the
// formatter rejects them instead of allocating the padding.
const MaxWidth = 1 << 20

// Specifier is a parsed format specifier. Rune fields are zero when absent.
type Specifier struct {
	Type      rune
	Sign      rune
	Align     rune
	Alternate bool
	Comma     bool
	Width     int
	Precision int
	Fill      string // single code point, or empty
	Other     string // unparsed remainder; rejected by every formatter
}

func isAlign(b byte) bool { return b == '<' || b == '>' || b == '=' || b == '^' }
func isSign(b byte) bool  { return b == '+' || b == '-' || b == ' ' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isType(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '%'
}

// bounded parses a run of digits no larger than MaxWidth.
func bounded(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	return n, err == nil && n <= MaxWidth
}

// digitRun returns the end of the run of ASCII digits starting at i.
func digitRun(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// ParseSpec parses spec. It never fails: whatever the grammar cannot consume
// is kept in Other for the value formatter to reject.
func ParseSpec(spec string) Specifier {
	sp := Specifier{Width: Unset, Precision: Unset}
	i := 0

	// fill is any single code point, but only counts when an align follows
	if _, size := utf8.DecodeRuneInString(spec); size > 0 && size < len(spec) && isAlign(spec[size]) {
		sp.Fill = spec[:size]
		sp.Align = rune(spec[size])
		i = size + 1
	} else if i < len(spec) && isAlign(spec[i]) {
		sp.Align = rune(spec[i])
		i++
	}

	if i < len(spec) && isSign(spec[i]) {
		sp.Sign = rune(spec[i])
		i++
	}
	if i < len(spec) && spec[i] == '#' {
		sp.Alternate = true
		i++
	}
	if i < len(spec) && spec[i] == '0' {
		if sp.Align == 0 {
			sp.Align = '='
		}
		if sp.Fill == "" {
			sp.Fill = "0"
		}
		i++
	}

	if j := digitRun(spec, i); j > i {
		w, ok := bounded(spec[i:j])
		if !ok {
			sp.Other = spec[i:]
			return sp
		}
		sp.Width = w
		i = j
	}

	if i < len(spec) && spec[i] == ',' {
		sp.Comma = true
		i++
	}

	if i < len(spec) && spec[i] == '.' {
		j := digitRun(spec, i+1)
		p := 0
		if j > i+1 {
			var ok bool
			if p, ok = bounded(spec[i+1 : j]); !ok {
				sp.Other = spec[i:]
				return sp
			}
		}
		sp.Precision = p
		i = j
	}

	if i < len(spec) && isType(spec[i]) {
		sp.Type = rune(spec[i])
		i++
	}
	sp.Other = spec[i:]
	return sp
}

// HasWidth reports whether a width was given.
func (s Specifier) HasWidth() bool { return s.Width != Unset }

// HasPrecision reports whether a precision was given.
func (s Specifier) HasPrecision() bool { return s.Precision != Unset }
