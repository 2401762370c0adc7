package encoding

const hexDigits = "0123456789abcdef"

// ControlEscape returns the escape letter for the control characters that
// have a two-character form: \a \b \f \n \r \t \v and \0.
func ControlEscape(cp CodePoint) (byte, bool) {
	switch cp {
	case 0:
		return '0', true
	case '\a':
		return 'a', true
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	case '\v':
		return 'v', true
	}
	return 0, false
}

// AppendEscape appends the hex escape of cp: \uXXXX for the Basic
// Multilingual Plane, \UXXXXXXXX above it. Digits are lower case.
func AppendEscape[U Unit](c Codec[U], dst []U, cp CodePoint) []U {
	v := uint32(cp)
	digits := 4
	prefix := "\\u"
	if v > 0xFFFF {
		digits = 8
		prefix = "\\U"
	}
	dst = AppendASCII(c, dst, prefix)
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		dst, _ = c.Append(dst, CodePoint(hexDigits[(v>>uint(shift))&0xF]))
	}
	return dst
}

// AppendASCII appends ASCII text. Every codec can represent ASCII, so the
// result is never partial.
func AppendASCII[U Unit](c Codec[U], dst []U, s string) []U {
	for i := 0; i < len(s); i++ {
		dst, _ = c.Append(dst, CodePoint(s[i]))
	}
	return dst
}
