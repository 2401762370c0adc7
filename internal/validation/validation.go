// Package validation guards the input the CLI reads: path sanity, size limits
// for resource exhaustion (CWE-400), and byte order mark detection.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Security limits to prevent DoS attacks (CWE-400).
const (
	// MaxInputSize is the maximum number of bytes read from a file or stdin (256 MB).
	MaxInputSize = 256 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrInputTooLarge    = errors.New("input too large")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
)

// ValidatePath performs basic validation on a file path.
// It checks for null bytes, control characters, and excessive length.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	// Check length
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	// Check for control characters
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ReadLimited reads r to EOF and fails once more than limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// ReadFile validates path and reads at most limit bytes from the file.
func ReadFile(path string, limit int64) ([]byte, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLimited(f, limit)
}

// byteOrderMarks lists the Unicode signatures. UTF-32LE shares its first two
// bytes with UTF-16LE and must be checked first.
var byteOrderMarks = []struct {
	encoding string
	mark     []byte
}{
	{"utf-32le", []byte{0xff, 0xfe, 0x00, 0x00}},
	{"utf-32be", []byte{0x00, 0x00, 0xfe, 0xff}},
	{"utf-8", []byte{0xef, 0xbb, 0xbf}},
	{"utf-16le", []byte{0xff, 0xfe}},
	{"utf-16be", []byte{0xfe, 0xff}},
}

// DetectBOM returns the encoding named by a leading byte order mark and the
// length of the mark, or ("", 0) when data starts with none.
func DetectBOM(data []byte) (string, int) {
	for _, sig := range byteOrderMarks {
		if bytes.HasPrefix(data, sig.mark) {
			return sig.encoding, len(sig.mark)
		}
	}
	return "", 0
}
