package encoding

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/FocuswithJustin/strkit/core/errors"
)

// codePages maps canonical code page names to their tables.
var codePages = map[string]*charmap.Charmap{
	"ibm437":       charmap.CodePage437,
	"ibm850":       charmap.CodePage850,
	"ibm866":       charmap.CodePage866,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-3":   charmap.ISO8859_3,
	"iso-8859-4":   charmap.ISO8859_4,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-8":   charmap.ISO8859_8,
	"iso-8859-9":   charmap.ISO8859_9,
	"iso-8859-10":  charmap.ISO8859_10,
	"iso-8859-13":  charmap.ISO8859_13,
	"iso-8859-14":  charmap.ISO8859_14,
	"iso-8859-15":  charmap.ISO8859_15,
	"iso-8859-16":  charmap.ISO8859_16,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"macintosh":    charmap.Macintosh,
	"windows-874":  charmap.Windows874,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
}

// CodePage returns the codec for a single-byte legacy code page such as
// "windows-1252" or "iso-8859-5". Bytes the code page leaves undefined decode
// to Invalid(b); runes it cannot represent fail to encode.
func CodePage(name string) (Codec[byte], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	cm, ok := codePages[key]
	if !ok {
		return nil, errors.NewUsagef("codepage", "unknown code page %q", name)
	}
	return codePageCodec{
		cm: cm,
		desc: Descriptor{
			Name:        key,
			Width:       1,
			Reversible:  true,
			Replacement: '?',
		},
	}, nil
}

// CodePageNames lists the supported code pages in sorted order.
func CodePageNames() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type codePageCodec struct {
	cm   *charmap.Charmap
	desc Descriptor
}

func (c codePageCodec) Descriptor() Descriptor { return c.desc }

func (c codePageCodec) Decode(buf []byte, i int) CodePoint {
	b := buf[i]
	r := c.cm.DecodeByte(b)
	if r == rune(ReplacementChar) {
		return Invalid(uint32(b))
	}
	return CodePoint(r)
}

func (codePageCodec) Next(_ []byte, i int) int { return i + 1 }
func (codePageCodec) Prev(_ []byte, i int) int { return max(i-1, 0) }

func (c codePageCodec) Append(dst []byte, cp CodePoint) ([]byte, bool) {
	if !cp.IsScalar() {
		return dst, false
	}
	b, ok := c.cm.EncodeRune(rune(cp))
	if !ok {
		return dst, false
	}
	return append(dst, b), true
}
