package encoding

// UTF32 is the UTF-32 codec. Values outside the scalar range decode to
// InvalidCodePoint.
var UTF32 Codec[uint32] = utf32Codec{}

type utf32Codec struct{}

var utf32Descriptor = Descriptor{
	Name:        "utf-32",
	Width:       4,
	Reversible:  true,
	Replacement: ReplacementChar,
}

func (utf32Codec) Descriptor() Descriptor { return utf32Descriptor }

func decodeUTF32(u uint32) CodePoint {
	if u > uint32(MaxCodePoint) || (u >= SurrogateMin && u <= SurrogateMax) {
		return InvalidCodePoint
	}
	return CodePoint(u)
}

func (utf32Codec) Decode(buf []uint32, i int) CodePoint { return decodeUTF32(buf[i]) }
func (utf32Codec) Next(_ []uint32, i int) int           { return i + 1 }
func (utf32Codec) Prev(_ []uint32, i int) int           { return max(i-1, 0) }

func (utf32Codec) Append(dst []uint32, cp CodePoint) ([]uint32, bool) {
	if !cp.IsScalar() {
		return dst, false
	}
	return append(dst, uint32(cp)), true
}
