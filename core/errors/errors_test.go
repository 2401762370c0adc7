package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with encoding",
			err:      &DecodeError{Encoding: "utf-8", Offset: 3, Unit: 0xff},
			wantMsg:  "cannot decode utf-8: invalid unit 0xff at offset 3",
			wantBase: ErrDecode,
		},
		{
			name:     "without encoding",
			err:      &DecodeError{Offset: 0, Unit: 0xd800},
			wantMsg:  "cannot decode: invalid unit 0xd800 at offset 0",
			wantBase: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("short buffer")
		err := &DecodeError{Encoding: "utf-16", Unit: 0xdc00, Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestEncodeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *EncodeError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with encoding",
			err:      &EncodeError{Encoding: "windows-1252", CodePoint: 0x1f600},
			wantMsg:  "cannot encode U+1F600 as windows-1252",
			wantBase: ErrEncode,
		},
		{
			name:     "without encoding",
			err:      &EncodeError{CodePoint: 0xd800},
			wantMsg:  "cannot encode U+D800",
			wantBase: ErrEncode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestUsageError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UsageError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with op",
			err:      &UsageError{Op: "split", Message: "empty separator"},
			wantMsg:  "split: empty separator",
			wantBase: ErrUsage,
		},
		{
			name:     "without op",
			err:      &UsageError{Message: "single '}' in format string"},
			wantMsg:  "single '}' in format string",
			wantBase: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("bad literal")
		err := &UsageError{Op: "format", Message: "invalid argument", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestLookupAndRangeError(t *testing.T) {
	lookup := &LookupError{Op: "rindex"}
	if got := lookup.Error(); got != "rindex: substring not found" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(lookup, ErrLookup) {
		t.Error("LookupError does not match ErrLookup")
	}

	rng := NewRange(3, 2)
	if got := rng.Error(); got != "argument index 3 out of range (2 arguments)" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(rng, ErrRange) {
		t.Error("RangeError does not match ErrRange")
	}
	if errors.Is(rng, ErrUsage) {
		t.Error("RangeError must not match ErrUsage")
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewDecode", func(t *testing.T) {
		err := NewDecode("utf-8", 7, 0xc0)
		if err.Encoding != "utf-8" || err.Offset != 7 || err.Unit != 0xc0 {
			t.Errorf("NewDecode() = %+v, unexpected values", err)
		}
	})

	t.Run("NewEncode", func(t *testing.T) {
		err := NewEncode("char8", 0x263a)
		if err.Encoding != "char8" || err.CodePoint != 0x263a {
			t.Errorf("NewEncode() = %+v, unexpected values", err)
		}
	})

	t.Run("NewUsage", func(t *testing.T) {
		err := NewUsage("ljust", "fill must be one code point")
		if err.Op != "ljust" || err.Message != "fill must be one code point" {
			t.Errorf("NewUsage() = %+v, unexpected values", err)
		}
	})

	t.Run("NewUsagef", func(t *testing.T) {
		err := NewUsagef("format", "invalid conversion %q", 'x')
		if err.Message != "invalid conversion 'x'" {
			t.Errorf("NewUsagef() message = %q", err.Message)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("wraps error", func(t *testing.T) {
		wrapped := Wrap(NewUsage("split", "empty separator"), "cli")
		if wrapped == nil {
			t.Fatal("Wrap() returned nil")
		}
		if !errors.Is(wrapped, ErrUsage) {
			t.Errorf("Wrap() error does not unwrap to ErrUsage")
		}
		wantMsg := "cli: split: empty separator"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrap() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
		if got := Wrapf(nil, "context %s", "test"); got != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", got)
		}
	})
}

func TestAs(t *testing.T) {
	err := Wrapf(NewDecode("utf-16", 4, 0xdc01), "transcode %s", "input")
	var decErr *DecodeError
	if !As(err, &decErr) {
		t.Fatal("As() failed to match DecodeError")
	}
	if decErr.Offset != 4 {
		t.Errorf("As() decErr.Offset = %d, want 4", decErr.Offset)
	}
	if !Is(err, ErrDecode) {
		t.Error("Is() failed to match ErrDecode")
	}
}
