package text

import (
	"slices"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

// Find returns the offset of the leftmost occurrence of sub in s[start:end],
// or NotFound. Candidate offsets are the code point boundaries reached from
// start, so a match never begins inside a multi-unit sequence. An empty sub
// matches at start.
func Find[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) int {
	start, end, ok := bounds(len(s), start, end)
	if !ok {
		return NotFound
	}
	if len(sub) == 0 {
		return start
	}
	for i := start; i+len(sub) <= end; i = c.Next(s, i) {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return NotFound
}

// RFind returns the offset of the rightmost occurrence of sub in s[start:end],
// or NotFound. The scan walks backward from end, after moving end back to a
// code point boundary, so it considers the same candidates as Find. An empty
// sub matches at end.
func RFind[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) int {
	start, end, ok := bounds(len(s), start, end)
	if !ok {
		return NotFound
	}
	if len(sub) == 0 {
		return end
	}
	if !c.Descriptor().Reversible {
		return rfindForward(c, s, sub, start, end)
	}
	end = alignEnd(c, s, start, end)
	for i := end; ; i = c.Prev(s, i) {
		if i+len(sub) <= end && slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
		if i <= start {
			return NotFound
		}
	}
}

// alignEnd returns the last boundary reached by Next from start that is not
// past end. When a valid sequence ends exactly at end no walk is needed.
func alignEnd[U encoding.Unit](c encoding.Codec[U], s []U, start, end int) int {
	if !c.Descriptor().Multichar || end == start {
		return end
	}
	if p := c.Prev(s, end); p >= start && c.Decode(s, p).Valid() && c.Next(s, p) == end {
		return end
	}
	b := start
	for i := start; i <= end; {
		b = i
		if i == len(s) {
			break
		}
		i = c.Next(s, i)
	}
	return b
}

// rfindForward serves codecs that cannot step backward.
func rfindForward[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) int {
	found := NotFound
	for i := start; i+len(sub) <= end; i = c.Next(s, i) {
		if slices.Equal(s[i:i+len(sub)], sub) {
			found = i
		}
	}
	return found
}

// Index is like Find but reports a lookup error when sub is absent.
func Index[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) (int, error) {
	if i := Find(c, s, sub, start, end); i != NotFound {
		return i, nil
	}
	return NotFound, &errors.LookupError{Op: "index"}
}

// RIndex is like RFind but reports a lookup error when sub is absent.
func RIndex[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) (int, error) {
	if i := RFind(c, s, sub, start, end); i != NotFound {
		return i, nil
	}
	return NotFound, &errors.LookupError{Op: "rindex"}
}

// Count returns the number of non-overlapping occurrences of sub in
// s[start:end]. An empty sub is counted once per code point plus one.
func Count[U encoding.Unit](c encoding.Codec[U], s, sub []U, start, end int) int {
	start, end, ok := bounds(len(s), start, end)
	if !ok {
		return 0
	}
	if len(sub) == 0 {
		return encoding.Distance(c, s, start, end) + 1
	}
	n := 0
	for i := start; i+len(sub) <= end; {
		if slices.Equal(s[i:i+len(sub)], sub) {
			n++
			i += len(sub)
			continue
		}
		i = c.Next(s, i)
	}
	return n
}

// StartsWith reports whether s[start:end] begins with prefix. end is clamped
// to len(s).
func StartsWith[U encoding.Unit](s, prefix []U, start, end int) bool {
	start, end, ok := bounds(len(s), start, end)
	if !ok || end-start < len(prefix) {
		return false
	}
	return slices.Equal(s[start:start+len(prefix)], prefix)
}

// EndsWith reports whether s[start:end] ends with suffix. end is clamped to
// len(s).
func EndsWith[U encoding.Unit](s, suffix []U, start, end int) bool {
	start, end, ok := bounds(len(s), start, end)
	if !ok || end-start < len(suffix) {
		return false
	}
	return slices.Equal(s[end-len(suffix):end], suffix)
}

// RemovePrefix returns s without prefix, or s unchanged when it does not start
// with prefix. The result shares storage with s.
func RemovePrefix[U encoding.Unit](s, prefix []U) []U {
	if StartsWith(s, prefix, 0, len(s)) {
		return s[len(prefix):]
	}
	return s
}

// RemoveSuffix returns s without suffix, or s unchanged when it does not end
// with suffix. The result shares storage with s.
func RemoveSuffix[U encoding.Unit](s, suffix []U) []U {
	if EndsWith(s, suffix, 0, len(s)) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
