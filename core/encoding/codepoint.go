package encoding

import "fmt"

// CodePoint is a decoded Unicode scalar value.
//
// Non-negative values are valid code points. Negative values mark a decode
// error and carry the negated value of the offending code unit so callers can
// report it. Use Valid to tell the two apart.
type CodePoint int32

// Code point limits and well-known values
const (
	MaxCodePoint    CodePoint = 0x10FFFF
	ReplacementChar CodePoint = 0xFFFD

	// InvalidCodePoint is the generic decode error, used when the offending
	// unit cannot be carried in the negative range.
	InvalidCodePoint CodePoint = -1
)

// UTF-16 surrogate pair constants
const (
	SurrogateMin     = 0xD800
	SurrogateMax     = 0xDFFF
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
	SurrogateOffset  = 0x10000
)

// Invalid returns the error code point for an offending code unit.
func Invalid(unit uint32) CodePoint {
	if unit == 0 || unit > 0x7FFFFFFF {
		return InvalidCodePoint
	}
	return -CodePoint(unit)
}

// Valid reports whether cp is a decoded code point rather than an error marker.
func (cp CodePoint) Valid() bool {
	return cp >= 0
}

// Unit returns the offending code unit carried by an error code point.
// It returns 0 for valid code points.
func (cp CodePoint) Unit() uint32 {
	if cp >= 0 {
		return 0
	}
	return uint32(-cp)
}

// IsScalar reports whether cp is a Unicode scalar value: in range and outside
// the surrogate block.
func (cp CodePoint) IsScalar() bool {
	return cp >= 0 && cp <= MaxCodePoint && (cp < SurrogateMin || cp > SurrogateMax)
}

// IsASCIISpace reports whether cp is space or one of 0x09..0x0D.
func (cp CodePoint) IsASCIISpace() bool {
	return cp == ' ' || (cp >= 0x09 && cp <= 0x0D)
}

func (cp CodePoint) String() string {
	if !cp.Valid() {
		return fmt.Sprintf("invalid(0x%x)", cp.Unit())
	}
	return fmt.Sprintf("U+%04X", int32(cp))
}
