package text

import "github.com/FocuswithJustin/strkit/core/encoding"

type alignment int

const (
	alignLeft alignment = iota
	alignRight
	alignCenter
)

// Center pads s on both sides to width code points. When the padding is odd
// the smaller half goes on the left. If s is already at least width code
// points long it is returned unchanged. fill must be a single code point.
func Center[U encoding.Unit](c encoding.Codec[U], s []U, width int, fill []U) ([]U, error) {
	return pad(c, "center", s, width, fill, alignCenter)
}

// LJust left-justifies s in a field of width code points.
func LJust[U encoding.Unit](c encoding.Codec[U], s []U, width int, fill []U) ([]U, error) {
	return pad(c, "ljust", s, width, fill, alignLeft)
}

// RJust right-justifies s in a field of width code points.
func RJust[U encoding.Unit](c encoding.Codec[U], s []U, width int, fill []U) ([]U, error) {
	return pad(c, "rjust", s, width, fill, alignRight)
}

func pad[U encoding.Unit](c encoding.Codec[U], op string, s []U, width int, fill []U, align alignment) ([]U, error) {
	if err := fillPoint(c, op, fill); err != nil {
		return nil, err
	}
	n := encoding.Length(c, s)
	if width <= n {
		return s, nil
	}
	diff := width - n

	var left int
	switch align {
	case alignRight:
		left = diff
	case alignCenter:
		left = diff / 2
	}
	right := diff - left

	out := make([]U, 0, len(s)+len(fill)*diff)
	for range left {
		out = append(out, fill...)
	}
	out = append(out, s...)
	for range right {
		out = append(out, fill...)
	}
	return out, nil
}

// ZFill pads s on the left with '0' to width code points, keeping a leading
// '+' or '-' in front of the padding.
func ZFill[U encoding.Unit](c encoding.Codec[U], s []U, width int) []U {
	n := encoding.Length(c, s)
	if width <= n {
		return s
	}
	diff := width - n

	out := make([]U, 0, len(s)+diff)
	rest := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		out = append(out, s[0])
		rest = s[1:]
	}
	for range diff {
		out = append(out, '0')
	}
	return append(out, rest...)
}

// Truncate returns the first n code points of s, or s itself when it is not
// longer than that.
func Truncate[U encoding.Unit](c encoding.Codec[U], s []U, n int) []U {
	if n <= 0 {
		return s[:0]
	}
	count := 0
	for i := 0; i < len(s); i = c.Next(s, i) {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
