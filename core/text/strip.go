package text

import (
	"slices"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

// Strip removes leading and trailing code points found in chars. A nil chars
// strips ASCII whitespace. The result shares storage with s.
func Strip[U encoding.Unit](c encoding.Codec[U], s, chars []U) []U {
	return RStrip(c, LStrip(c, s, chars), chars)
}

// LStrip removes leading code points found in chars.
func LStrip[U encoding.Unit](c encoding.Codec[U], s, chars []U) []U {
	in := stripSet(c, chars)
	i := 0
	for i < len(s) && in(c.Decode(s, i)) {
		i = c.Next(s, i)
	}
	return s[i:]
}

// RStrip removes trailing code points found in chars.
func RStrip[U encoding.Unit](c encoding.Codec[U], s, chars []U) []U {
	in := stripSet(c, chars)
	j := len(s)
	for j > 0 {
		k := c.Prev(s, j)
		if !in(c.Decode(s, k)) {
			break
		}
		j = k
	}
	return s[:j]
}

func stripSet[U encoding.Unit](c encoding.Codec[U], chars []U) func(encoding.CodePoint) bool {
	if chars == nil {
		return encoding.CodePoint.IsASCIISpace
	}
	set := encoding.CodePoints(c, chars)
	return func(cp encoding.CodePoint) bool {
		return cp.Valid() && slices.Contains(set, cp)
	}
}

// Partition splits s at the first occurrence of sep and returns the part
// before it, the separator and the part after it. When sep is absent it
// returns s and two empty slices.
func Partition[U encoding.Unit](c encoding.Codec[U], s, sep []U) (before, match, after []U, err error) {
	if len(sep) == 0 {
		return nil, nil, nil, errors.NewUsage("partition", "empty separator")
	}
	i := Find(c, s, sep, 0, len(s))
	if i == NotFound {
		return s, s[len(s):], s[len(s):], nil
	}
	return s[:i], s[i : i+len(sep)], s[i+len(sep):], nil
}

// RPartition splits s at the last occurrence of sep. When sep is absent it
// returns two empty slices and s.
func RPartition[U encoding.Unit](c encoding.Codec[U], s, sep []U) (before, match, after []U, err error) {
	if len(sep) == 0 {
		return nil, nil, nil, errors.NewUsage("rpartition", "empty separator")
	}
	i := RFind(c, s, sep, 0, len(s))
	if i == NotFound {
		return s[:0], s[:0], s, nil
	}
	return s[:i], s[i : i+len(sep)], s[i+len(sep):], nil
}

func isLineBreak(cp encoding.CodePoint) bool {
	switch cp {
	case '\n', '\r', '\v', '\f', 0x1C, 0x1D, 0x1E, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// SplitLines splits s at line boundaries: \n, \r, \r\n, \v, \f, 0x1C..0x1E,
// U+0085, U+2028 and U+2029. Line breaks are kept when keepends is set. A
// trailing line break does not start an empty final line.
func SplitLines[U encoding.Unit](c encoding.Codec[U], s []U, keepends bool) [][]U {
	var out [][]U
	start := 0
	for i := 0; i < len(s); {
		cp := c.Decode(s, i)
		next := c.Next(s, i)
		if !isLineBreak(cp) {
			i = next
			continue
		}
		if cp == '\r' && next < len(s) && c.Decode(s, next) == '\n' {
			next = c.Next(s, next)
		}
		if keepends {
			out = append(out, s[start:next])
		} else {
			out = append(out, s[start:i])
		}
		start, i = next, next
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
