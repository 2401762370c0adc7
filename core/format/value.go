package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
	"github.com/FocuswithJustin/strkit/core/text"
)

// Value is a template argument. Str, Repr and ASCII back the !s, !r and !a
// conversions; Format renders the value under a parsed specifier.
type Value interface {
	Str() string
	Repr() string
	ASCII() string
	Format(spec Specifier) (string, error)
}

// Value implementations.
type (
	Bool    bool
	Int     int64
	Uint    uint64
	Float   float64
	String  string
	Pointer uintptr
)

// ValueOf wraps a Go value. Values that already implement Value pass
// through; fmt.Stringer and error values format as their text.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return Uint(v), nil
	case uint16:
		return Uint(v), nil
	case uint32:
		return Uint(v), nil
	case uint64:
		return Uint(v), nil
	case uintptr:
		return Pointer(v), nil
	case unsafe.Pointer:
		return Pointer(uintptr(v)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []byte:
		return String(v), nil
	case fmt.Stringer:
		return String(v.String()), nil
	case error:
		return String(v.Error()), nil
	}
	return nil, errors.NewUsagef("format", "unsupported argument type %T", v)
}

func usage(kind, format string, args ...any) error {
	return errors.NewUsagef("format "+kind, format, args...)
}

func signOf(negative bool, sign rune) string {
	switch {
	case negative:
		return "-"
	case sign == '+':
		return "+"
	case sign == ' ':
		return " "
	}
	return ""
}

// justify pads s to the specifier's width with the given default alignment.
// Numeric alignment is handled by layoutNumber and leaves s untouched here.
func justify(s string, spec Specifier, defaultAlign rune) (string, error) {
	if !spec.HasWidth() {
		return s, nil
	}
	fill := []byte(spec.Fill)
	if len(fill) == 0 {
		fill = []byte{' '}
	}
	align := spec.Align
	if align == 0 {
		align = defaultAlign
	}

	var out []byte
	var err error
	switch align {
	case '<':
		out, err = text.LJust(encoding.UTF8, []byte(s), spec.Width, fill)
	case '>':
		out, err = text.RJust(encoding.UTF8, []byte(s), spec.Width, fill)
	case '^':
		out, err = text.Center(encoding.UTF8, []byte(s), spec.Width, fill)
	default:
		return s, nil
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// layoutNumber assembles sign, prefix and ASCII digits. With '=' alignment
// the fill goes between the prefix and the digits.
func layoutNumber(spec Specifier, sign, prefix, digits string) (string, error) {
	head := sign + prefix
	if spec.Align != '=' || !spec.HasWidth() {
		return justify(head+digits, spec, '>')
	}
	fill := spec.Fill
	if fill == "" {
		fill = " "
	}
	if !utf8.ValidString(fill) || utf8.RuneCountInString(fill) != 1 {
		return "", errors.NewUsage("format", "fill must be exactly one code point")
	}
	if n := spec.Width - utf8.RuneCountInString(head) - len(digits); n > 0 {
		head += strings.Repeat(fill, n)
	}
	return head + digits, nil
}

func formatInteger(kind string, negative bool, mag uint64, spec Specifier) (string, error) {
	var base int
	switch spec.Type {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 0, 'd', 'n':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		return "", usage(kind, "invalid format code %q", spec.Type)
	}
	switch {
	case spec.Comma:
		return "", usage(kind, "comma separator (,) is not allowed")
	case spec.HasPrecision():
		return "", usage(kind, "precision (.) is not allowed")
	case spec.Other != "":
		return "", usage(kind, "invalid format specification %q", spec.Other)
	}

	digits := strconv.FormatUint(mag, base)
	if spec.Type == 'X' {
		digits = strings.ToUpper(digits)
	}
	var prefix string
	if spec.Alternate && base != 10 {
		prefix = "0" + string(spec.Type)
	}
	return layoutNumber(spec, signOf(negative, spec.Sign), prefix, digits)
}

// formatChar renders a code point as a one-character string. Values that are
// not Unicode scalars become U+FFFD.
func formatChar(cp uint64, spec Specifier) (string, error) {
	r := encoding.ReplacementChar
	if cp <= uint64(encoding.MaxCodePoint) && encoding.CodePoint(cp).IsScalar() {
		r = encoding.CodePoint(cp)
	}
	spec.Type = 's'
	return String(string(rune(r))).Format(spec)
}

func isFloatType(t rune) bool {
	return strings.ContainsRune("eEfFgG%", t)
}

func (b Bool) Str() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Repr() string  { return b.Str() }
func (b Bool) ASCII() string { return b.Str() }

// Format renders the words true and false as a string, or 1 and 0 as an
// integer when the specifier names a type.
func (b Bool) Format(spec Specifier) (string, error) {
	if spec.Type != 0 {
		var n Int
		if b {
			n = 1
		}
		return n.Format(spec)
	}
	spec.Type = 's'
	return String(b.Str()).Format(spec)
}

func (v Int) Str() string   { return strconv.FormatInt(int64(v), 10) }
func (v Int) Repr() string  { return v.Str() }
func (v Int) ASCII() string { return v.Str() }

func (v Int) Format(spec Specifier) (string, error) {
	switch {
	case spec.Type == 'c':
		if v < 0 {
			return formatChar(math.MaxUint64, spec)
		}
		return formatChar(uint64(v), spec)
	case isFloatType(spec.Type):
		return Float(v).Format(spec)
	}
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return formatInteger("int", v < 0, mag, spec)
}

func (v Uint) Str() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Uint) Repr() string  { return v.Str() }
func (v Uint) ASCII() string { return v.Str() }

func (v Uint) Format(spec Specifier) (string, error) {
	switch {
	case spec.Type == 'c':
		return formatChar(uint64(v), spec)
	case isFloatType(spec.Type):
		return Float(v).Format(spec)
	}
	return formatInteger("uint", false, uint64(v), spec)
}

func (p Pointer) Str() string   { return "0x" + strconv.FormatUint(uint64(p), 16) }
func (p Pointer) Repr() string  { return p.Str() }
func (p Pointer) ASCII() string { return p.Str() }

// Format renders p as an unsigned integer, in #x form unless a type is given.
func (p Pointer) Format(spec Specifier) (string, error) {
	if spec.Type == 0 {
		spec.Type = 'x'
		spec.Alternate = true
	}
	return formatInteger("pointer", false, uint64(p), spec)
}

// floatRepr is the shortest text that reads back as f, switching to
// exponent form outside [1e-4, 1e16).
func floatRepr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (v Float) Str() string   { return floatRepr(float64(v)) }
func (v Float) Repr() string  { return v.Str() }
func (v Float) ASCII() string { return v.Str() }

func (v Float) Format(spec Specifier) (string, error) {
	switch {
	case spec.Comma:
		return "", usage("float", "comma separator (,) is not allowed")
	case spec.Alternate:
		return "", usage("float", "alternate form (#) is not allowed")
	case spec.Other != "":
		return "", usage("float", "invalid format specification %q", spec.Other)
	}

	f := float64(v)
	negative := math.Signbit(f) && !math.IsNaN(f)
	mag := math.Abs(f)
	prec := spec.Precision
	if !spec.HasPrecision() {
		prec = 6
	}

	var digits, suffix string
	switch spec.Type {
	case 0:
		if spec.HasPrecision() {
			digits = strconv.FormatFloat(mag, 'g', max(prec, 1), 64)
		} else {
			digits = floatRepr(mag)
		}
	case 'e', 'E':
		digits = strconv.FormatFloat(mag, 'e', prec, 64)
	case 'f', 'F':
		digits = strconv.FormatFloat(mag, 'f', prec, 64)
	case 'g', 'G':
		digits = strconv.FormatFloat(mag, 'g', max(prec, 1), 64)
	case '%':
		digits = strconv.FormatFloat(mag*100, 'f', prec, 64)
		suffix = "%"
	default:
		return "", usage("float", "invalid format code %q", spec.Type)
	}
	switch {
	case math.IsNaN(mag):
		digits = "nan"
	case math.IsInf(mag, 0):
		digits = "inf"
	}
	if spec.Type == 'E' || spec.Type == 'F' || spec.Type == 'G' {
		digits = strings.ToUpper(digits)
	}
	return layoutNumber(spec, signOf(negative, spec.Sign), "", digits+suffix)
}

func (s String) Str() string   { return string(s) }
func (s String) Repr() string  { return string(text.Repr(encoding.UTF8, []byte(s))) }
func (s String) ASCII() string { return string(text.ASCII(encoding.UTF8, []byte(s))) }

// Format truncates s to the precision in code points, then pads it to the
// width, left-aligned by default.
func (s String) Format(spec Specifier) (string, error) {
	switch {
	case spec.Type != 0 && spec.Type != 's':
		return "", usage("string", "invalid format code %q", spec.Type)
	case spec.Sign != 0:
		return "", usage("string", "sign is not allowed")
	case spec.Align == '=':
		return "", usage("string", "numeric alignment (=) is not allowed")
	case spec.Alternate:
		return "", usage("string", "alternate form (#) is not allowed")
	case spec.Comma:
		return "", usage("string", "comma separator (,) is not allowed")
	case spec.Other != "":
		return "", usage("string", "invalid format specification %q", spec.Other)
	}

	out := []byte(s)
	if spec.HasPrecision() {
		out = text.Truncate(encoding.UTF8, out, spec.Precision)
	}
	return justify(string(out), spec, '<')
}
