package encoding

// UTF8 is the UTF-8 codec. Malformed input decodes to Invalid(lead) and
// resynchronizes one byte at a time.
var UTF8 Codec[byte] = utf8Codec{}

type utf8Codec struct{}

var utf8Descriptor = Descriptor{
	Name:        "utf-8",
	Width:       1,
	Multichar:   true,
	Reversible:  true,
	Replacement: ReplacementChar,
}

func (utf8Codec) Descriptor() Descriptor { return utf8Descriptor }

// sequenceLength returns the length announced by a lead byte, or 0 when b
// cannot start a well-formed sequence.
func sequenceLength(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	default:
		return 0
	}
}

// decodeUTF8 decodes the sequence at i and returns the code point and the
// number of bytes it spans. On error the size is 1.
func decodeUTF8(buf []byte, i int) (CodePoint, int) {
	lead := buf[i]
	n := sequenceLength(lead)
	switch n {
	case 1:
		return CodePoint(lead), 1
	case 0:
		return Invalid(uint32(lead)), 1
	}
	if i+n > len(buf) {
		return Invalid(uint32(lead)), 1
	}

	var c uint32
	switch n {
	case 2:
		c = uint32(lead & 0x1F)
	case 3:
		c = uint32(lead & 0x0F)
	default:
		c = uint32(lead & 0x07)
	}
	for k := 1; k < n; k++ {
		b := buf[i+k]
		if b&0xC0 != 0x80 {
			return Invalid(uint32(lead)), 1
		}
		c = c<<6 | uint32(b&0x3F)
	}

	// Reject overlong forms, surrogates and values past the Unicode range
	switch n {
	case 2:
		if c < 0x80 {
			return Invalid(uint32(lead)), 1
		}
	case 3:
		if c < 0x800 || (c >= SurrogateMin && c <= SurrogateMax) {
			return Invalid(uint32(lead)), 1
		}
	case 4:
		if c < 0x10000 || c > uint32(MaxCodePoint) {
			return Invalid(uint32(lead)), 1
		}
	}
	return CodePoint(c), n
}

func (utf8Codec) Decode(buf []byte, i int) CodePoint {
	cp, _ := decodeUTF8(buf, i)
	return cp
}

func (utf8Codec) Next(buf []byte, i int) int {
	_, n := decodeUTF8(buf, i)
	return i + n
}

// Prev steps back over at most three continuation bytes looking for a lead
// byte whose well-formed sequence ends exactly at i. Anything else steps back a
// single byte, mirroring the forward resynchronization.
func (utf8Codec) Prev(buf []byte, i int) int {
	if i <= 0 {
		return 0
	}
	limit := max(i-4, 0)
	for j := i - 1; j >= limit; j-- {
		b := buf[j]
		if b&0xC0 == 0x80 {
			continue
		}
		if cp, n := decodeUTF8(buf, j); cp.Valid() && j+n == i {
			return j
		}
		break
	}
	return i - 1
}

func (utf8Codec) Append(dst []byte, cp CodePoint) ([]byte, bool) {
	if !cp.IsScalar() {
		return dst, false
	}
	return appendUTF8(dst, uint32(cp)), true
}

// appendUTF8 writes the UTF-8 form of a scalar value.
func appendUTF8(buf []byte, c uint32) []byte {
	switch {
	case c < 0x80:
		return append(buf, byte(c))
	case c < 0x800:
		return append(buf,
			0xC0|byte(c>>6),
			0x80|byte(c&0x3F))
	case c < 0x10000:
		return append(buf,
			0xE0|byte(c>>12),
			0x80|byte((c>>6)&0x3F),
			0x80|byte(c&0x3F))
	default:
		return append(buf,
			0xF0|byte(c>>18),
			0x80|byte((c>>12)&0x3F),
			0x80|byte((c>>6)&0x3F),
			0x80|byte(c&0x3F))
	}
}
