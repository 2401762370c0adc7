// Package encoding provides the codec layer: per-encoding decoders and encoders
// for 8-, 16- and 32-bit code units, a registry of named encodings, and the
// escape helpers shared by the quoting algorithms.
//
// Positions are plain indexes into an immutable slice of code units. A codec
// decodes the code point starting at an index and moves an index forward or
// backward by exactly one decoded code point.
package encoding

import (
	"unicode/utf8"

	"github.com/FocuswithJustin/strkit/core/errors"
)

// Unit is the storage unit of an encoding.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Descriptor carries the constant traits of an encoding.
type Descriptor struct {
	Name        string    // Canonical name, e.g. "utf-8"
	Width       int       // Code unit width in bytes
	Multichar   bool      // A code point may span several units
	Reversible  bool      // Code point boundaries can be found scanning backward
	Replacement CodePoint // Substitute used under the Replace policy
}

// Codec decodes and encodes code points over units of type U.
//
// Decode, Next and Prev require 0 <= i < len(buf) (0 < i <= len(buf) for
// Prev). Decode never mutates buf. Next and Prev always move by at least one
// unit, so loops that compare the index with < terminate on malformed input.
// Append reports false and leaves dst unchanged when cp cannot be encoded.
type Codec[U Unit] interface {
	Descriptor() Descriptor
	Decode(buf []U, i int) CodePoint
	Next(buf []U, i int) int
	Prev(buf []U, i int) int
	Append(dst []U, cp CodePoint) ([]U, bool)
}

// Distance returns the number of code points between from and to.
func Distance[U Unit](c Codec[U], buf []U, from, to int) int {
	if to <= from {
		return 0
	}
	if !c.Descriptor().Multichar {
		return to - from
	}
	n := 0
	for i := from; i < to; i = c.Next(buf, i) {
		n++
	}
	return n
}

// Length returns the number of code points in buf.
func Length[U Unit](c Codec[U], buf []U) int {
	return Distance(c, buf, 0, len(buf))
}

// Same reports whether two codecs share a descriptor, which makes a verbatim
// unit copy between them lossless.
func Same[U, V Unit](a Codec[U], b Codec[V]) bool {
	return a.Descriptor() == b.Descriptor()
}

// FromString encodes the UTF-8 text s with c.
func FromString[U Unit](c Codec[U], s string) ([]U, error) {
	out := make([]U, 0, len(s))
	for off, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[off:]); size <= 1 {
				return nil, errors.NewDecode("utf-8", off, uint32(s[off]))
			}
		}
		var ok bool
		if out, ok = c.Append(out, CodePoint(r)); !ok {
			return nil, errors.NewEncode(c.Descriptor().Name, int32(r))
		}
	}
	return out, nil
}

// MustFromString is like FromString but panics on error. It is meant for
// literals known to be representable.
func MustFromString[U Unit](c Codec[U], s string) []U {
	out, err := FromString(c, s)
	if err != nil {
		panic(err)
	}
	return out
}

// ToString decodes buf into UTF-8 text. Decode errors become U+FFFD.
func ToString[U Unit](c Codec[U], buf []U) string {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); i = c.Next(buf, i) {
		cp := c.Decode(buf, i)
		if !cp.IsScalar() {
			cp = ReplacementChar
		}
		out = utf8.AppendRune(out, rune(cp))
	}
	return string(out)
}

// CodePoints decodes buf into a slice of code points, error markers included.
func CodePoints[U Unit](c Codec[U], buf []U) []CodePoint {
	out := make([]CodePoint, 0, len(buf))
	for i := 0; i < len(buf); i = c.Next(buf, i) {
		out = append(out, c.Decode(buf, i))
	}
	return out
}
