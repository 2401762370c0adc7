package encoding

// UTF16 is the UTF-16 codec over native 16-bit units. A high surrogate
// followed by a low surrogate decodes to a supplementary code point; an
// unpaired surrogate decodes to Invalid(unit).
var UTF16 Codec[uint16] = utf16Codec{}

type utf16Codec struct{}

var utf16Descriptor = Descriptor{
	Name:        "utf-16",
	Width:       2,
	Multichar:   true,
	Reversible:  true,
	Replacement: ReplacementChar,
}

func (utf16Codec) Descriptor() Descriptor { return utf16Descriptor }

func isHighSurrogate(u uint16) bool { return u >= HighSurrogateMin && u <= HighSurrogateMax }
func isLowSurrogate(u uint16) bool  { return u >= LowSurrogateMin && u <= LowSurrogateMax }

func (utf16Codec) Decode(buf []uint16, i int) CodePoint {
	u := buf[i]
	switch {
	case isHighSurrogate(u):
		if i+1 < len(buf) && isLowSurrogate(buf[i+1]) {
			high := CodePoint(u) - HighSurrogateMin
			low := CodePoint(buf[i+1]) - LowSurrogateMin
			return high<<10 + low + SurrogateOffset
		}
		return Invalid(uint32(u))
	case isLowSurrogate(u):
		return Invalid(uint32(u))
	default:
		return CodePoint(u)
	}
}

func (utf16Codec) Next(buf []uint16, i int) int {
	if isHighSurrogate(buf[i]) && i+1 < len(buf) && isLowSurrogate(buf[i+1]) {
		return i + 2
	}
	return i + 1
}

func (utf16Codec) Prev(buf []uint16, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= 2 && isLowSurrogate(buf[i-1]) && isHighSurrogate(buf[i-2]) {
		return i - 2
	}
	return i - 1
}

func (utf16Codec) Append(dst []uint16, cp CodePoint) ([]uint16, bool) {
	if !cp.IsScalar() {
		return dst, false
	}
	if cp < SurrogateOffset {
		return append(dst, uint16(cp)), true
	}

	// Encode as surrogate pair
	cp -= SurrogateOffset
	high := uint16(HighSurrogateMin + (cp >> 10))
	low := uint16(LowSurrogateMin + (cp & 0x3FF))
	return append(dst, high, low), true
}
