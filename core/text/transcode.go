package text

import "github.com/FocuswithJustin/strkit/core/encoding"

// Transcode converts s from one encoding to another. When both codecs share a
// descriptor the units are copied verbatim. Otherwise every code point is
// decoded and re-encoded; decode and encode errors follow policy the same way
// they do in Translate.
func Transcode[U, V encoding.Unit](from encoding.Codec[U], to encoding.Codec[V], s []U, policy Policy) ([]V, error) {
	if encoding.Same(from, to) {
		out := make([]V, len(s))
		for i, u := range s {
			out[i] = V(u)
		}
		return out, nil
	}

	replacement := to.Descriptor().Replacement
	out := make([]V, 0, len(s))
	for i := 0; i < len(s); i = from.Next(s, i) {
		cp := from.Decode(s, i)
		if !cp.Valid() {
			switch policy {
			case PolicyStrict:
				return nil, decodeError(from, i, cp)
			case PolicyReplace:
				out, _ = to.Append(out, replacement)
			}
			continue
		}

		var ok bool
		if out, ok = to.Append(out, cp); ok {
			continue
		}
		switch policy {
		case PolicyStrict:
			return nil, encodeError(to, cp)
		case PolicyReplace:
			out, _ = to.Append(out, replacement)
		}
	}
	return out, nil
}
