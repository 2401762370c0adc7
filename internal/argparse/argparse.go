// Package argparse turns command-line literals into format values.
//
// Each argument is one literal:
//
//	42, -7, 0x2a      signed integer
//	u:42, u:0xff      unsigned integer
//	p:0x10            pointer
//	1.5, f:2, f:inf   float
//	true, false       bool
//	"a\tb"            Go-quoted string
//	s:any text        raw string, everything after the prefix
//	word              bare string
//
// Bare text that starts like another literal ("42nd", "truest") must be
// quoted or given the s: prefix.
package argparse

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/strkit/core/errors"
	"github.com/FocuswithJustin/strkit/core/format"
)

// literalGrammar is the participle grammar for a single argument literal.
//
//nolint:govet // participle grammar tags are not standard struct tags
type literalGrammar struct {
	Unsigned *string `  "u:" @(Hex | Int)`
	Pointer  *string `| "p:" @(Hex | Int)`
	Float    *string `| ( "f:" @(Float | Int | Hex | Word) | @Float )`
	Bool     *string `| @Bool`
	Hex      *string `| @Hex`
	Int      *string `| @Int`
	Quoted   *string `| @String`
	Word     *string `| @Word`
}

// argLexer defines the tokens of an argument literal.
// Order matters: earlier rules win over the catch-all Word.
var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prefix", Pattern: `[upf]:`},
	{Name: "Hex", Pattern: `[-+]?0[xX][0-9a-fA-F]+`},
	{Name: "Float", Pattern: `[-+]?(\d+\.\d*|\.\d+)([eE][-+]?\d+)?|[-+]?\d+[eE][-+]?\d+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Bool", Pattern: `true|false`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Word", Pattern: `[^\s"]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// argParser is the participle parser for argument literals.
var argParser = participle.MustBuild[literalGrammar](
	participle.Lexer(argLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Parse converts one literal into a format.Value.
func Parse(s string) (format.Value, error) {
	if raw, ok := strings.CutPrefix(s, "s:"); ok {
		return format.String(raw), nil
	}
	if strings.TrimSpace(s) == "" {
		return format.String(s), nil
	}

	lit, err := argParser.ParseString("", s)
	if err != nil {
		return nil, errors.NewUsagef("argument", "invalid literal %q: %v", s, err)
	}

	switch {
	case lit.Unsigned != nil:
		n, err := strconv.ParseUint(strings.TrimPrefix(*lit.Unsigned, "+"), 0, 64)
		if err != nil {
			return nil, errors.NewUsagef("argument", "invalid unsigned literal %q: %v", s, err)
		}
		return format.Uint(n), nil

	case lit.Pointer != nil:
		n, err := strconv.ParseUint(strings.TrimPrefix(*lit.Pointer, "+"), 0, 64)
		if err != nil {
			return nil, errors.NewUsagef("argument", "invalid pointer literal %q: %v", s, err)
		}
		return format.Pointer(n), nil

	case lit.Float != nil:
		f, err := parseFloat(*lit.Float)
		if err != nil {
			return nil, errors.NewUsagef("argument", "invalid float literal %q: %v", s, err)
		}
		return format.Float(f), nil

	case lit.Bool != nil:
		return format.Bool(*lit.Bool == "true"), nil

	case lit.Hex != nil:
		n, err := strconv.ParseInt(*lit.Hex, 0, 64)
		if err != nil {
			return nil, errors.NewUsagef("argument", "invalid integer literal %q: %v", s, err)
		}
		return format.Int(n), nil

	case lit.Int != nil:
		n, err := strconv.ParseInt(*lit.Int, 10, 64)
		if err != nil {
			return nil, errors.NewUsagef("argument", "invalid integer literal %q: %v", s, err)
		}
		return format.Int(n), nil

	case lit.Quoted != nil:
		return format.String(*lit.Quoted), nil
	}
	return format.String(*lit.Word), nil
}

// parseFloat accepts 0x integers as well as everything strconv.ParseFloat does.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, nil
	}
	if n, hexErr := strconv.ParseInt(s, 0, 64); hexErr == nil {
		return float64(n), nil
	}
	return 0, err
}

// ParseAll converts every literal, reporting the first failure with its
// position.
func ParseAll(args []string) ([]format.Value, error) {
	values := make([]format.Value, len(args))
	for i, arg := range args {
		v, err := Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		values[i] = v
	}
	return values, nil
}
