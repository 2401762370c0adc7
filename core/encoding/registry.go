package encoding

import (
	"encoding/binary"
	"sort"
	"strings"
	"unsafe"

	"github.com/FocuswithJustin/strkit/core/errors"
)

// Info describes a named encoding as stored in a byte stream: the codec that
// interprets its code units and the byte order of multi-byte units.
type Info struct {
	Name  string           // Name the encoding was registered under
	Order binary.ByteOrder // Byte order of 2- and 4-byte units, nil for 1-byte units
	Codec any              // One of Codec[byte], Codec[uint16], Codec[uint32]
}

// Width returns the code unit width in bytes.
func (i *Info) Width() int {
	switch c := i.Codec.(type) {
	case Codec[byte]:
		return c.Descriptor().Width
	case Codec[uint16]:
		return c.Descriptor().Width
	case Codec[uint32]:
		return c.Descriptor().Width
	}
	return 0
}

// Descriptor returns the descriptor of the underlying codec.
func (i *Info) Descriptor() Descriptor {
	switch c := i.Codec.(type) {
	case Codec[byte]:
		return c.Descriptor()
	case Codec[uint16]:
		return c.Descriptor()
	case Codec[uint32]:
		return c.Descriptor()
	}
	return Descriptor{}
}

var registry = map[string]*Info{
	"utf-8":    {Name: "utf-8", Codec: UTF8},
	"utf-16":   {Name: "utf-16", Order: binary.LittleEndian, Codec: UTF16},
	"utf-16le": {Name: "utf-16le", Order: binary.LittleEndian, Codec: UTF16},
	"utf-16be": {Name: "utf-16be", Order: binary.BigEndian, Codec: UTF16},
	"utf-32":   {Name: "utf-32", Order: binary.LittleEndian, Codec: UTF32},
	"utf-32le": {Name: "utf-32le", Order: binary.LittleEndian, Codec: UTF32},
	"utf-32be": {Name: "utf-32be", Order: binary.BigEndian, Codec: UTF32},
	"char8":    {Name: "char8", Codec: Char8},
	"char16":   {Name: "char16", Order: binary.LittleEndian, Codec: Char16},
	"char16le": {Name: "char16le", Order: binary.LittleEndian, Codec: Char16},
	"char16be": {Name: "char16be", Order: binary.BigEndian, Codec: Char16},
	"char32":   {Name: "char32", Order: binary.LittleEndian, Codec: Char32},
	"char32le": {Name: "char32le", Order: binary.LittleEndian, Codec: Char32},
	"char32be": {Name: "char32be", Order: binary.BigEndian, Codec: Char32},
}

var aliases = map[string]string{
	"utf8":    "utf-8",
	"utf16":   "utf-16",
	"utf16le": "utf-16le",
	"utf16be": "utf-16be",
	"utf32":   "utf-32",
	"utf32le": "utf-32le",
	"utf32be": "utf-32be",
	"latin1":  "iso-8859-1",
	"latin-1": "iso-8859-1",
	"cp1252":  "windows-1252",
	"ascii":   "char8",
}

// Lookup resolves an encoding name, case-insensitively. Code page names are
// accepted as well as the Unicode and untyped encodings.
func Lookup(name string) (*Info, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if info, ok := registry[key]; ok {
		return info, nil
	}
	if cp, err := CodePage(key); err == nil {
		return &Info{Name: key, Codec: cp}, nil
	}
	return nil, errors.NewUsagef("lookup", "unknown encoding %q", name)
}

// Names lists every registered encoding name, code pages included.
func Names() []string {
	names := make([]string, 0, len(registry)+len(codePages))
	for name := range registry {
		names = append(names, name)
	}
	names = append(names, CodePageNames()...)
	sort.Strings(names)
	return names
}

// DecodeBytes splits raw bytes into code units of type U using order. Order is
// ignored for 1-byte units. A trailing partial unit is a decode error.
func DecodeBytes[U Unit](data []byte, order binary.ByteOrder) ([]U, error) {
	width := int(unsafe.Sizeof(U(0)))
	if rem := len(data) % width; rem != 0 {
		off := len(data) - rem
		return nil, &errors.DecodeError{
			Offset: off / width,
			Unit:   uint32(data[off]),
			Err:    errors.Wrap(errors.ErrDecode, "truncated code unit"),
		}
	}
	out := make([]U, len(data)/width)
	for i := range out {
		chunk := data[i*width : (i+1)*width]
		switch width {
		case 1:
			out[i] = U(chunk[0])
		case 2:
			out[i] = U(order.Uint16(chunk))
		default:
			out[i] = U(order.Uint32(chunk))
		}
	}
	return out, nil
}

// EncodeBytes serializes code units into raw bytes using order.
func EncodeBytes[U Unit](units []U, order binary.ByteOrder) []byte {
	width := int(unsafe.Sizeof(U(0)))
	out := make([]byte, len(units)*width)
	for i, u := range units {
		chunk := out[i*width : (i+1)*width]
		switch width {
		case 1:
			chunk[0] = byte(u)
		case 2:
			order.PutUint16(chunk, uint16(u))
		default:
			order.PutUint32(chunk, uint32(u))
		}
	}
	return out
}
