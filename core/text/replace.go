package text

import "github.com/FocuswithJustin/strkit/core/encoding"

// Replace returns a copy of s with up to count leftmost non-overlapping
// occurrences of old replaced by repl. A negative count (All) replaces every
// occurrence. An empty old inserts repl at every code point boundary.
func Replace[U encoding.Unit](c encoding.Codec[U], s, old, repl []U, count int) []U {
	out := make([]U, 0, len(s))
	if len(old) == 0 {
		return insertEverywhere(c, out, s, repl, count)
	}

	prev := 0
	for i := 0; count != 0 && i+len(old) <= len(s); {
		if !hasAt(s, old, i) {
			i = c.Next(s, i)
			continue
		}
		out = append(out, s[prev:i]...)
		out = append(out, repl...)
		i += len(old)
		prev = i
		count--
	}
	return append(out, s[prev:]...)
}

func insertEverywhere[U encoding.Unit](c encoding.Codec[U], out, s, repl []U, count int) []U {
	i := 0
	for ; count != 0 && i < len(s); count-- {
		next := c.Next(s, i)
		out = append(out, repl...)
		out = append(out, s[i:next]...)
		i = next
	}
	if count != 0 {
		out = append(out, repl...)
	}
	return append(out, s[i:]...)
}

// ExpandTabs replaces each tab with spaces up to the next multiple of tabsize.
// The column counter resets on '\r', '\n' and whenever it reaches a stop.
// Malformed units are copied through unchanged.
func ExpandTabs[U encoding.Unit](c encoding.Codec[U], s []U, tabsize int) []U {
	out := make([]U, 0, len(s))
	column := 0
	for i := 0; i < len(s); {
		next := c.Next(s, i)
		cp := c.Decode(s, i)
		if cp == '\t' {
			for ; column < tabsize; column++ {
				out = append(out, ' ')
			}
			column = 0
			i = next
			continue
		}
		out = append(out, s[i:next]...)
		column++
		if column == tabsize || cp == '\r' || cp == '\n' {
			column = 0
		}
		i = next
	}
	return out
}
