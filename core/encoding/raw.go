package encoding

// Char8, Char16 and Char32 are untyped fixed-width encodings: each unit is one
// code point. Char8 and Char16 pass units through as-is; Char32 validates like
// UTF-32. Encoding rejects values the unit cannot hold.
var (
	Char8  Codec[byte]   = rawCodec[byte]{desc: char8Descriptor, limit: 0x100}
	Char16 Codec[uint16] = rawCodec[uint16]{desc: char16Descriptor, limit: 0x10000}
	Char32 Codec[uint32] = rawCodec[uint32]{desc: char32Descriptor, limit: 0x110000, validate: true}
)

var (
	char8Descriptor = Descriptor{
		Name:        "char8",
		Width:       1,
		Reversible:  true,
		Replacement: '?',
	}
	char16Descriptor = Descriptor{
		Name:        "char16",
		Width:       2,
		Reversible:  true,
		Replacement: ReplacementChar,
	}
	char32Descriptor = Descriptor{
		Name:        "char32",
		Width:       4,
		Reversible:  true,
		Replacement: ReplacementChar,
	}
)

type rawCodec[U Unit] struct {
	desc     Descriptor
	limit    CodePoint
	validate bool
}

func (c rawCodec[U]) Descriptor() Descriptor { return c.desc }

func (c rawCodec[U]) Decode(buf []U, i int) CodePoint {
	if c.validate {
		return decodeUTF32(uint32(buf[i]))
	}
	return CodePoint(buf[i])
}

func (rawCodec[U]) Next(_ []U, i int) int { return i + 1 }
func (rawCodec[U]) Prev(_ []U, i int) int { return max(i-1, 0) }

func (c rawCodec[U]) Append(dst []U, cp CodePoint) ([]U, bool) {
	if !cp.IsScalar() || cp >= c.limit {
		return dst, false
	}
	return append(dst, U(cp)), true
}
