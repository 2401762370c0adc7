package text

import (
	"slices"
	"testing"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
)

func strs(parts [][]byte) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

func byteParts(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

func TestSplitWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxsplit int
		want     []string
	}{
		{"all whitespace kinds", "abc \t\v\n\r\f def", All, []string{"abc", "def"}},
		{"limited", "a b c d", 2, []string{"a", "b", "c d"}},
		{"zero", "a b c d", 0, []string{"a b c d"}},
		{"zero strips leading", "  a b  ", 0, []string{"a b  "}},
		{"leading and trailing", "  a  b  ", All, []string{"a", "b"}},
		{"only whitespace", " \t ", All, []string{}},
		{"empty", "", All, []string{}},
		{"multibyte", "😀 ✏", All, []string{"😀", "✏"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(Split(encoding.UTF8, []byte(tt.s), tt.maxsplit))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q, %d) = %q, want %q", tt.s, tt.maxsplit, got, tt.want)
			}
		})
	}
}

func TestRSplitWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxsplit int
		want     []string
	}{
		{"all", "abc \t\v\n\r\f def", All, []string{"abc", "def"}},
		{"limited", "a b c d", 2, []string{"a b", "c", "d"}},
		{"zero strips trailing", "  a b  ", 0, []string{"  a b"}},
		{"only whitespace", "   ", All, []string{}},
		{"multibyte", "😀😀 ✏✏ x", 1, []string{"😀😀 ✏✏", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(RSplit(encoding.UTF8, []byte(tt.s), tt.maxsplit))
			if !slices.Equal(got, tt.want) {
				t.Errorf("RSplit(%q, %d) = %q, want %q", tt.s, tt.maxsplit, got, tt.want)
			}
		})
	}
}

func TestSplitSeparator(t *testing.T) {
	tests := []struct {
		name     string
		s, sep   string
		maxsplit int
		want     []string
		wantR    []string
	}{
		{"overlapping separator", "abc---def", "--", All, []string{"abc", "-def"}, []string{"abc-", "def"}},
		{"emoji separator", "a😀b😀c😀d", "😀", All, []string{"a", "b", "c", "d"}, []string{"a", "b", "c", "d"}},
		{"limited", "a,b,c", ",", 1, []string{"a", "b,c"}, []string{"a,b", "c"}},
		{"adjacent", "a,,b", ",", All, []string{"a", "", "b"}, []string{"a", "", "b"}},
		{"empty input", "", ",", All, []string{""}, []string{""}},
		{"separator longer", "a", "abc", All, []string{"a"}, []string{"a"}},
		{"edges", ",a,", ",", All, []string{"", "a", ""}, []string{"", "a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := SplitSep(encoding.UTF8, []byte(tt.s), []byte(tt.sep), tt.maxsplit)
			if err != nil {
				t.Fatalf("SplitSep() error = %v", err)
			}
			if got := strs(parts); !slices.Equal(got, tt.want) {
				t.Errorf("SplitSep(%q, %q) = %q, want %q", tt.s, tt.sep, got, tt.want)
			}

			parts, err = RSplitSep(encoding.UTF8, []byte(tt.s), []byte(tt.sep), tt.maxsplit)
			if err != nil {
				t.Fatalf("RSplitSep() error = %v", err)
			}
			if got := strs(parts); !slices.Equal(got, tt.wantR) {
				t.Errorf("RSplitSep(%q, %q) = %q, want %q", tt.s, tt.sep, got, tt.wantR)
			}
		})
	}

	t.Run("empty separator", func(t *testing.T) {
		if _, err := SplitSep(encoding.UTF8, []byte("abc"), nil, All); !errors.Is(err, errors.ErrUsage) {
			t.Errorf("SplitSep() error = %v, want ErrUsage", err)
		}
		if _, err := RSplitSep(encoding.UTF8, []byte("abc"), []byte{}, All); !errors.Is(err, errors.ErrUsage) {
			t.Errorf("RSplitSep() error = %v, want ErrUsage", err)
		}
	})

	t.Run("forward-only codec", func(t *testing.T) {
		c := forwardOnly{encoding.UTF8}
		if _, err := RSplitSep[byte](c, []byte("a,b"), []byte(","), All); !errors.Is(err, errors.ErrUsage) {
			t.Errorf("RSplitSep() error = %v, want ErrUsage", err)
		}
		parts, err := SplitSep[byte](c, []byte("a,b"), []byte(","), All)
		if err != nil {
			t.Fatalf("SplitSep() error = %v", err)
		}
		if got := strs(parts); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("SplitSep() = %q, want [a b]", got)
		}
	})
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		parts []string
		want  string
	}{
		{"no parts", " ", nil, ""},
		{"one part", ",", []string{"a"}, "a"},
		{"separator between", "abc", []string{"-", "-", "-"}, "-abc-abc-"},
		{"empty parts", ",", []string{"", ""}, ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := byteParts(tt.parts...)
			if got := Join([]byte(tt.sep), parts); string(got) != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
			if got := JoinSeq([]byte(tt.sep), slices.Values(parts)); string(got) != tt.want {
				t.Errorf("JoinSeq() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name               string
		s, chars           string
		nilChars           bool
		want, wantL, wantR string
	}{
		{"whitespace", "  abc \n", "", true, "abc", "abc \n", "  abc"},
		{"only whitespace", " \t ", "", true, "", "", ""},
		{"chars", "xxabcxx", "x", false, "abc", "abcxx", "xxabc"},
		{"emoji", "😀😀a😀", "😀", false, "a", "a😀", "😀😀a"},
		{"several chars", "ab-cd-ba", "ab", false, "-cd-", "-cd-ba", "ab-cd-"},
		{"empty chars strips nothing", " a ", "", false, " a ", " a ", " a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var chars []byte
			if !tt.nilChars {
				chars = []byte(tt.chars)
			}
			s := []byte(tt.s)
			if got := Strip(encoding.UTF8, s, chars); string(got) != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
			if got := LStrip(encoding.UTF8, s, chars); string(got) != tt.wantL {
				t.Errorf("LStrip() = %q, want %q", got, tt.wantL)
			}
			if got := RStrip(encoding.UTF8, s, chars); string(got) != tt.wantR {
				t.Errorf("RStrip() = %q, want %q", got, tt.wantR)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	s := []byte("a=b=c")
	before, sep, after, err := Partition(encoding.UTF8, s, []byte("="))
	if err != nil || string(before) != "a" || string(sep) != "=" || string(after) != "b=c" {
		t.Errorf("Partition() = %q, %q, %q, %v", before, sep, after, err)
	}
	before, sep, after, err = RPartition(encoding.UTF8, s, []byte("="))
	if err != nil || string(before) != "a=b" || string(sep) != "=" || string(after) != "c" {
		t.Errorf("RPartition() = %q, %q, %q, %v", before, sep, after, err)
	}

	before, sep, after, _ = Partition(encoding.UTF8, []byte("abc"), []byte("="))
	if string(before) != "abc" || len(sep) != 0 || len(after) != 0 {
		t.Errorf("Partition(miss) = %q, %q, %q", before, sep, after)
	}
	before, sep, after, _ = RPartition(encoding.UTF8, []byte("abc"), []byte("="))
	if len(before) != 0 || len(sep) != 0 || string(after) != "abc" {
		t.Errorf("RPartition(miss) = %q, %q, %q", before, sep, after)
	}

	if _, _, _, err := Partition(encoding.UTF8, s, nil); !errors.Is(err, errors.ErrUsage) {
		t.Errorf("Partition(empty) error = %v, want ErrUsage", err)
	}
}

func TestSplitLines(t *testing.T) {
	s := "a\nb\r\nc\rd\u2028e\n"
	got := strs(SplitLines(encoding.UTF8, []byte(s), false))
	if want := []string{"a", "b", "c", "d", "e"}; !slices.Equal(got, want) {
		t.Errorf("SplitLines() = %q, want %q", got, want)
	}

	got = strs(SplitLines(encoding.UTF8, []byte(s), true))
	if want := []string{"a\n", "b\r\n", "c\r", "d\u2028", "e\n"}; !slices.Equal(got, want) {
		t.Errorf("SplitLines(keepends) = %q, want %q", got, want)
	}

	got = strs(SplitLines(encoding.UTF8, []byte("x\n\ny"), false))
	if want := []string{"x", "", "y"}; !slices.Equal(got, want) {
		t.Errorf("SplitLines(blank line) = %q, want %q", got, want)
	}

	if got := SplitLines(encoding.UTF8, nil, false); len(got) != 0 {
		t.Errorf("SplitLines(empty) = %q, want none", strs(got))
	}
}
