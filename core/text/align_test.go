package text

import (
	"testing"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

func TestJustify(t *testing.T) {
	type justifyFunc func(encoding.Codec[byte], []byte, int, []byte) ([]byte, error)

	tests := []struct {
		name  string
		fn    justifyFunc
		input string
		width int
		fill  string
		want  string
	}{
		{"center default fill", Center[byte], "abc", 8, " ", "  abc   "},
		{"center dash", Center[byte], "abc", 8, "-", "--abc---"},
		{"center multibyte", Center[byte], "😀😀😀", 8, "✏", "✏✏😀😀😀✏✏✏"},
		{"center even", Center[byte], "ab", 6, "*", "**ab**"},
		{"center too narrow", Center[byte], "abc", 2, " ", "abc"},
		{"center exact", Center[byte], "abc", 3, " ", "abc"},
		{"ljust dash", LJust[byte], "abc", 8, "-", "abc-----"},
		{"ljust multibyte", LJust[byte], "✏", 3, "😀", "✏😀😀"},
		{"rjust dash", RJust[byte], "abc", 8, "-", "-----abc"},
		{"rjust negative width", RJust[byte], "abc", -1, " ", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(encoding.UTF8, []byte(tt.input), tt.width, []byte(tt.fill))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJustifyFillErrors(t *testing.T) {
	fills := map[string][]byte{
		"empty":     {},
		"two chars": []byte("--"),
		"malformed": {0xFF},
		"truncated": {0xE2, 0x9C},
	}
	for name, fill := range fills {
		t.Run(name, func(t *testing.T) {
			_, err := Center(encoding.UTF8, []byte("abc"), 8, fill)
			if !errors.Is(err, errors.ErrUsage) {
				t.Errorf("Center() error = %v, want ErrUsage", err)
			}
			_, err = LJust(encoding.UTF8, []byte("abc"), 1, fill)
			if !errors.Is(err, errors.ErrUsage) {
				t.Errorf("LJust() error = %v, want ErrUsage even when no padding is needed", err)
			}
		})
	}
}

func TestJustifyWide(t *testing.T) {
	s := encoding.MustFromString(encoding.UTF16, "😀😀😀")
	fill := encoding.MustFromString(encoding.UTF16, "✏")
	got, err := Center(encoding.UTF16, s, 8, fill)
	if err != nil {
		t.Fatalf("Center() error = %v", err)
	}
	if want := "✏✏😀😀😀✏✏✏"; encoding.ToString(encoding.UTF16, got) != want {
		t.Errorf("Center() = %q, want %q", encoding.ToString(encoding.UTF16, got), want)
	}

	wide := encoding.MustFromString(encoding.UTF32, "ab")
	got32, err := RJust(encoding.UTF32, wide, 4, []uint32{'.'})
	if err != nil {
		t.Fatalf("RJust() error = %v", err)
	}
	if want := "..ab"; encoding.ToString(encoding.UTF32, got32) != want {
		t.Errorf("RJust() = %q, want %q", encoding.ToString(encoding.UTF32, got32), want)
	}
}

func TestZFill(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"+abc", 8, "+0000abc"},
		{"-😀😀😀", 8, "-0000😀😀😀"},
		{"42", 5, "00042"},
		{"abc", 2, "abc"},
		{"", 3, "000"},
		{"-", 3, "-00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ZFill(encoding.UTF8, []byte(tt.input), tt.width); string(got) != tt.want {
				t.Errorf("ZFill(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"😀😀😀", 2, "😀😀"},
		{"abc", 5, "abc"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
		{"a✏b", 2, "a✏"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Truncate(encoding.UTF8, []byte(tt.input), tt.n); string(got) != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
