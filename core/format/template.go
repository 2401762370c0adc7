package format

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
	"github.com/FocuswithJustin/strkit/core/text"
)

// Formatter renders templates into code units of one encoding.
type Formatter[U encoding.Unit] struct {
	codec  encoding.Codec[U]
	policy text.Policy
}

// NewFormatter returns a Formatter writing through c. Text that c cannot
// represent is replaced with c's replacement code point.
func NewFormatter[U encoding.Unit](c encoding.Codec[U]) *Formatter[U] {
	return &Formatter[U]{codec: c, policy: text.PolicyReplace}
}

// WithPolicy returns a copy of f that handles unrepresentable text by p.
func (f *Formatter[U]) WithPolicy(p text.Policy) *Formatter[U] {
	return &Formatter[U]{codec: f.codec, policy: p}
}

var utf8Formatter = NewFormatter(encoding.UTF8)

// Format renders template with Go values, wrapping each through ValueOf.
func Format(template string, args ...any) (string, error) {
	values := make([]Value, len(args))
	for i, arg := range args {
		v, err := ValueOf(arg)
		if err != nil {
			return "", errors.Wrapf(err, "argument %d", i)
		}
		values[i] = v
	}
	return FormatValues(template, values...)
}

// FormatValues renders template as UTF-8.
func FormatValues(template string, args ...Value) (string, error) {
	out, err := utf8Formatter.Append(nil, template, args...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Format renders template into a fresh buffer.
func (f *Formatter[U]) Format(template string, args ...Value) ([]U, error) {
	return f.Append(make([]U, 0, len(template)), template, args...)
}

type numbering int

const (
	numberingUnknown numbering = iota
	numberingAuto
	numberingManual
)

// Append renders template and appends the result to dst.
//
// Replacement fields are {[index][!conversion][:spec]}; {{ and }} stand for
// literal braces. Automatic and manual field numbering cannot be mixed. The
// spec runs to the brace that balances the field's opening brace.
func (f *Formatter[U]) Append(dst []U, template string, args ...Value) ([]U, error) {
	mode := numberingUnknown
	next := 0

	i := 0
	for i < len(template) {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				dst = append(dst, U('{'))
				i += 2
				continue
			}
			i++

			// argument index
			var index int
			if j := digitRun(template, i); j > i {
				if mode == numberingAuto {
					return nil, errors.NewUsage("format", "cannot switch from automatic field numbering to manual field specification")
				}
				mode = numberingManual
				n, err := strconv.Atoi(template[i:j])
				if err != nil {
					return nil, errors.Wrapf(errors.ErrRange, "argument index %s", template[i:j])
				}
				index = n
				i = j
			} else {
				if mode == numberingManual {
					return nil, errors.NewUsage("format", "cannot switch from manual field specification to automatic field numbering")
				}
				mode = numberingAuto
				index = next
				next++
			}
			if index >= len(args) {
				return nil, errors.NewRange(index, len(args))
			}

			var conversion byte
			if i < len(template) && template[i] == '!' {
				i++
				if i >= len(template) {
					return nil, errors.NewUsage("format", "unterminated format sequence")
				}
				conversion = template[i]
				if !strings.ContainsRune("ars", rune(conversion)) {
					return nil, errors.NewUsagef("format", "invalid conversion %q", conversion)
				}
				i++
			}

			var spec string
			if i < len(template) && template[i] == ':' {
				i++
				start, level := i, 1
				for ; i < len(template); i++ {
					if template[i] == '{' {
						level++
					} else if template[i] == '}' {
						level--
						if level == 0 {
							break
						}
					}
				}
				if level > 0 {
					return nil, errors.NewUsage("format", "unterminated format sequence")
				}
				spec = template[start:i]
			}

			if i >= len(template) {
				return nil, errors.NewUsage("format", "unterminated format sequence")
			}
			if template[i] != '}' {
				return nil, errors.NewUsagef("format", "expected '}' before %q", template[i:])
			}
			i++

			var err error
			if dst, err = f.appendField(dst, args[index], conversion, spec); err != nil {
				return nil, err
			}

		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				dst = append(dst, U('}'))
				i += 2
				continue
			}
			return nil, errors.NewUsage("format", "single '}' in format string")

		default:
			j := i + 1
			for j < len(template) && template[j] != '{' && template[j] != '}' {
				j++
			}
			var err error
			if dst, err = f.appendText(dst, template[i:j]); err != nil {
				return nil, err
			}
			i = j
		}
	}
	return dst, nil
}

func (f *Formatter[U]) appendField(dst []U, v Value, conversion byte, spec string) ([]U, error) {
	switch conversion {
	case 'a':
		v = String(v.ASCII())
	case 'r':
		v = String(v.Repr())
	case 's':
		v = String(v.Str())
	}
	s, err := v.Format(ParseSpec(spec))
	if err != nil {
		return nil, err
	}
	return f.appendText(dst, s)
}

// appendText encodes UTF-8 text into dst under the formatter's policy.
func (f *Formatter[U]) appendText(dst []U, s string) ([]U, error) {
	out, err := text.Transcode(encoding.UTF8, f.codec, []byte(s), f.policy)
	if err != nil {
		return nil, err
	}
	return append(dst, out...), nil
}
