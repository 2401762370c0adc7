package text

import "github.com/FocuswithJustin/strkit/core/encoding"

// Quote renders s from the from encoding as a double-quoted literal in the to
// encoding. Backslash and both quote characters are escaped with a backslash,
// the common control characters use their two-character escapes, and other
// control characters become \uXXXX. With ascii set, every code point above
// 0x7F is escaped too; otherwise it is re-encoded directly, falling back to
// the destination's replacement code point. Malformed input becomes '?' in
// ascii mode and the replacement code point otherwise.
func Quote[U, V encoding.Unit](from encoding.Codec[U], to encoding.Codec[V], s []U, ascii bool) []V {
	replacement := to.Descriptor().Replacement
	out := make([]V, 0, len(s)+2)
	out, _ = to.Append(out, '"')
	for i := 0; i < len(s); i = from.Next(s, i) {
		cp := from.Decode(s, i)
		switch {
		case cp == '\'' || cp == '"' || cp == '\\':
			out = append(out, V('\\'), V(cp))
			continue
		case !cp.Valid():
			if ascii {
				out = append(out, V('?'))
			} else {
				out = appendOrReplace(to, out, replacement)
			}
			continue
		}
		if esc, ok := encoding.ControlEscape(cp); ok {
			out = append(out, V('\\'), V(esc))
			continue
		}
		switch {
		case cp < 0x20 || (ascii && cp >= 0x80):
			out = encoding.AppendEscape(to, out, cp)
		default:
			out = appendOrReplace(to, out, cp)
		}
	}
	out, _ = to.Append(out, '"')
	return out
}

func appendOrReplace[V encoding.Unit](c encoding.Codec[V], out []V, cp encoding.CodePoint) []V {
	if next, ok := c.Append(out, cp); ok {
		return next
	}
	out, _ = c.Append(out, c.Descriptor().Replacement)
	return out
}

// Repr quotes s in its own encoding, keeping printable non-ASCII text.
func Repr[U encoding.Unit](c encoding.Codec[U], s []U) []U {
	return Quote(c, c, s, false)
}

// ASCII quotes s in its own encoding, escaping everything outside ASCII.
func ASCII[U encoding.Unit](c encoding.Codec[U], s []U) []U {
	return Quote(c, c, s, true)
}
