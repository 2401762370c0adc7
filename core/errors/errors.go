// Package errors provides the error categories shared by the strkit packages.
//
// Decode and encode errors describe data-quality problems and are recoverable
// under an error policy. Usage errors describe a caller mistake and are always
// returned to the caller. Lookup and range errors report a missing substring and
// an out-of-range argument index.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for each category
var (
	// ErrDecode indicates a malformed code unit sequence
	ErrDecode = errors.New("decode error")
	// ErrEncode indicates a code point the destination encoding cannot represent
	ErrEncode = errors.New("encode error")
	// ErrUsage indicates a violated precondition
	ErrUsage = errors.New("usage error")
	// ErrLookup indicates that a substring was not found
	ErrLookup = errors.New("substring not found")
	// ErrRange indicates an argument index out of range
	ErrRange = errors.New("index out of range")
)

// DecodeError reports a code unit sequence that could not be decoded
type DecodeError struct {
	Encoding string // Name of the source encoding
	Offset   int    // Code unit offset of the offending sequence
	Unit     uint32 // Value of the offending unit
	Err      error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	if e.Encoding != "" {
		return fmt.Sprintf("cannot decode %s: invalid unit 0x%x at offset %d", e.Encoding, e.Unit, e.Offset)
	}
	return fmt.Sprintf("cannot decode: invalid unit 0x%x at offset %d", e.Unit, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrDecode
}

// EncodeError reports a code point that has no representation in an encoding
type EncodeError struct {
	Encoding  string // Name of the destination encoding
	CodePoint int32  // Code point that failed
	Err       error  // Underlying error, if any
}

func (e *EncodeError) Error() string {
	if e.Encoding != "" {
		return fmt.Sprintf("cannot encode U+%04X as %s", e.CodePoint, e.Encoding)
	}
	return fmt.Sprintf("cannot encode U+%04X", e.CodePoint)
}

func (e *EncodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrEncode
}

// UsageError reports a precondition violated by the caller
type UsageError struct {
	Op      string // Operation that rejected its arguments (e.g., "center", "format")
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *UsageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *UsageError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUsage
}

// LookupError reports a substring search that found nothing
type LookupError struct {
	Op string // "index" or "rindex"
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: substring not found", e.Op)
}

func (e *LookupError) Unwrap() error {
	return ErrLookup
}

// RangeError reports a format argument index outside the argument list
type RangeError struct {
	Index int // Requested index
	Count int // Number of arguments supplied
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("argument index %d out of range (%d arguments)", e.Index, e.Count)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// Helper functions for creating common errors

// NewDecode creates a DecodeError
func NewDecode(encoding string, offset int, unit uint32) *DecodeError {
	return &DecodeError{
		Encoding: encoding,
		Offset:   offset,
		Unit:     unit,
	}
}

// NewEncode creates an EncodeError
func NewEncode(encoding string, cp int32) *EncodeError {
	return &EncodeError{
		Encoding:  encoding,
		CodePoint: cp,
	}
}

// NewUsage creates a UsageError
func NewUsage(op, message string) *UsageError {
	return &UsageError{
		Op:      op,
		Message: message,
	}
}

// NewUsagef creates a UsageError with a formatted message
func NewUsagef(op, format string, args ...interface{}) *UsageError {
	return &UsageError{
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewRange creates a RangeError
func NewRange(index, count int) *RangeError {
	return &RangeError{
		Index: index,
		Count: count,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
