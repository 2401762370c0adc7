package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
	"github.com/FocuswithJustin/strkit/core/format"
	"github.com/FocuswithJustin/strkit/core/text"
	"github.com/FocuswithJustin/strkit/internal/argparse"
	"github.com/FocuswithJustin/strkit/internal/logging"
	"github.com/FocuswithJustin/strkit/internal/validation"
)

const byteOrderMark encoding.CodePoint = 0xFEFF

// TranscodeCmd converts input from one encoding to another.
type TranscodeCmd struct {
	From    string `default:"utf-8" help:"Encoding of the input, or auto to detect a byte order mark"`
	To      string `default:"utf-8" help:"Encoding of the output"`
	Policy  string `short:"p" default:"strict" enum:"strict,replace,ignore" help:"Error policy (strict, replace, ignore)"`
	BOM     bool   `name:"bom" help:"Start the output with a byte order mark"`
	IOFlags `embed:""`
}

func (c *TranscodeCmd) Run(env *Env) error {
	policy, err := text.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}

	fromName, flags := c.From, c.IOFlags
	if strings.EqualFold(fromName, "auto") {
		if env, flags, fromName, err = detectEncoding(env, flags); err != nil {
			return err
		}
	}
	from, err := encoding.Lookup(fromName)
	if err != nil {
		return err
	}
	to, err := encoding.Lookup(c.To)
	if err != nil {
		return err
	}

	switch fc := from.Codec.(type) {
	case encoding.Codec[byte]:
		return transcodeFrom(env, c, flags, policy, from, fc, to)
	case encoding.Codec[uint16]:
		return transcodeFrom(env, c, flags, policy, from, fc, to)
	case encoding.Codec[uint32]:
		return transcodeFrom(env, c, flags, policy, from, fc, to)
	}
	return errors.NewUsagef("transcode", "encoding %q has no codec", fromName)
}

// detectEncoding reads the input once and names its encoding from a leading
// byte order mark, defaulting to UTF-8. The returned Env replays the input
// without the mark.
func detectEncoding(env *Env, flags IOFlags) (*Env, IOFlags, string, error) {
	if flags.Text != "" {
		return env, flags, "utf-8", nil
	}
	data, err := readInput(env, flags)
	if err != nil {
		return nil, flags, "", err
	}
	name, size := validation.DetectBOM(data)
	if name == "" {
		name = "utf-8"
	}
	logging.DebugContext(env.Ctx, "detected encoding", "encoding", name, "bom_bytes", size)

	replay := *env
	replay.Stdin = bytes.NewReader(data[size:])
	flags.In = ""
	return &replay, flags, name, nil
}

func transcodeFrom[U encoding.Unit](env *Env, cmd *TranscodeCmd, flags IOFlags, policy text.Policy, from *encoding.Info, fc encoding.Codec[U], to *encoding.Info) error {
	in, err := readUnits(env, from, fc, flags)
	if err != nil {
		return err
	}
	switch tc := to.Codec.(type) {
	case encoding.Codec[byte]:
		return transcodeTo(env, cmd, flags, policy, from, fc, in, to, tc)
	case encoding.Codec[uint16]:
		return transcodeTo(env, cmd, flags, policy, from, fc, in, to, tc)
	case encoding.Codec[uint32]:
		return transcodeTo(env, cmd, flags, policy, from, fc, in, to, tc)
	}
	return errors.NewUsagef("transcode", "encoding %q has no codec", cmd.To)
}

func transcodeTo[U, V encoding.Unit](env *Env, cmd *TranscodeCmd, flags IOFlags, policy text.Policy, from *encoding.Info, fc encoding.Codec[U], in []U, to *encoding.Info, tc encoding.Codec[V]) error {
	start := time.Now()
	var out []V
	if cmd.BOM {
		var ok bool
		if out, ok = tc.Append(nil, byteOrderMark); !ok {
			return errors.NewUsagef("transcode", "encoding %s cannot represent a byte order mark", to.Name)
		}
	}
	converted, err := text.Transcode(fc, tc, in, policy)
	if err != nil {
		return err
	}
	out = append(out, converted...)
	logging.Operation(env.Ctx, "transcode", from.Name, len(in), time.Since(start), "to", to.Name, "policy", policy.String())
	return writeUnits(env, to, tc, flags, out)
}

// QuoteCmd renders input as a double-quoted literal.
type QuoteCmd struct {
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	ASCII    bool   `name:"ascii" help:"Escape every code point outside ASCII"`
	IOFlags  `embed:""`
}

func (c *QuoteCmd) Run(env *Env) error {
	return env.apply("quote", c.Encoding, c.IOFlags, quoteOp[byte](c.ASCII), quoteOp[uint16](c.ASCII), quoteOp[uint32](c.ASCII))
}

func quoteOp[U encoding.Unit](ascii bool) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		return text.Quote(c, c, s, ascii), nil
	}
}

// FormatCmd renders a template. Arguments are typed literals, see package
// argparse.
type FormatCmd struct {
	Template string   `arg:"" help:"Brace template, e.g. '{:>8}|{!r}'"`
	Args     []string `arg:"" optional:"" help:"Argument literals: 42, u:42, p:0x10, 1.5, true, \"quoted\", s:raw text"`
	Encoding string   `short:"e" default:"utf-8" help:"Encoding of the output"`
	Policy   string   `short:"p" default:"replace" enum:"strict,replace,ignore" help:"Policy for text the output encoding cannot represent"`
	Out      string   `short:"o" help:"Write output to file (default stdout)" type:"path"`
	Raw      bool     `help:"Do not append a newline to the output"`
}

func (c *FormatCmd) Run(env *Env) error {
	values, err := argparse.ParseAll(c.Args)
	if err != nil {
		return err
	}
	policy, err := text.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}
	info, err := encoding.Lookup(c.Encoding)
	if err != nil {
		return err
	}

	switch codec := info.Codec.(type) {
	case encoding.Codec[byte]:
		return renderTemplate(env, c, info, codec, policy, values)
	case encoding.Codec[uint16]:
		return renderTemplate(env, c, info, codec, policy, values)
	case encoding.Codec[uint32]:
		return renderTemplate(env, c, info, codec, policy, values)
	}
	return errors.NewUsagef("format", "encoding %q has no codec", c.Encoding)
}

func renderTemplate[U encoding.Unit](env *Env, cmd *FormatCmd, info *encoding.Info, codec encoding.Codec[U], policy text.Policy, values []format.Value) error {
	start := time.Now()
	out, err := format.NewFormatter(codec).WithPolicy(policy).Format(cmd.Template, values...)
	if err != nil {
		return err
	}
	logging.Operation(env.Ctx, "format", info.Name, len(out), time.Since(start), "args", len(values))
	return writeUnits(env, info, codec, IOFlags{Out: cmd.Out, Raw: cmd.Raw}, out)
}

// FindCmd prints the code unit offset of a substring, or its count.
type FindCmd struct {
	Sub      string `arg:"" help:"Substring to look for"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	Reverse  bool   `short:"r" help:"Report the last occurrence"`
	Count    bool   `short:"c" help:"Count non-overlapping occurrences"`
	Strict   bool   `help:"Fail instead of printing -1 when absent"`
	Start    int    `default:"0" help:"Start offset in code units"`
	End      int    `default:"-1" help:"End offset in code units (-1 for the end)"`
	IOFlags  `embed:""`
}

func (c *FindCmd) Run(env *Env) error {
	return env.apply("find", c.Encoding, c.IOFlags, findOp[byte](c), findOp[uint16](c), findOp[uint32](c))
}

func findOp[U encoding.Unit](cmd *FindCmd) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		sub, err := encoding.FromString(c, cmd.Sub)
		if err != nil {
			return nil, err
		}
		end := cmd.End
		if end < 0 {
			end = len(s)
		}

		var n int
		switch {
		case cmd.Count:
			n = text.Count(c, s, sub, cmd.Start, end)
		case cmd.Strict && cmd.Reverse:
			n, err = text.RIndex(c, s, sub, cmd.Start, end)
		case cmd.Strict:
			n, err = text.Index(c, s, sub, cmd.Start, end)
		case cmd.Reverse:
			n = text.RFind(c, s, sub, cmd.Start, end)
		default:
			n = text.Find(c, s, sub, cmd.Start, end)
		}
		if err != nil {
			return nil, err
		}
		return encoding.FromString(c, strconv.Itoa(n))
	}
}

// SplitCmd writes one field per line.
type SplitCmd struct {
	Sep      string `short:"s" help:"Separator (default: runs of whitespace)"`
	Max      int    `short:"m" default:"-1" help:"Maximum number of splits (-1 for no limit)"`
	Right    bool   `short:"r" help:"Split from the end"`
	Lines    bool   `short:"l" help:"Split at line boundaries instead"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *SplitCmd) Run(env *Env) error {
	return env.apply("split", c.Encoding, c.IOFlags, splitOp[byte](c), splitOp[uint16](c), splitOp[uint32](c))
}

func splitOp[U encoding.Unit](cmd *SplitCmd) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		var fields [][]U
		switch {
		case cmd.Lines:
			fields = text.SplitLines(c, s, false)
		case cmd.Sep == "" && cmd.Right:
			fields = text.RSplit(c, s, cmd.Max)
		case cmd.Sep == "":
			fields = text.Split(c, s, cmd.Max)
		default:
			sep, err := encoding.FromString(c, cmd.Sep)
			if err != nil {
				return nil, err
			}
			if cmd.Right {
				fields, err = text.RSplitSep(c, s, sep, cmd.Max)
			} else {
				fields, err = text.SplitSep(c, s, sep, cmd.Max)
			}
			if err != nil {
				return nil, err
			}
		}
		newline, _ := c.Append(nil, '\n')
		return text.Join(newline, fields), nil
	}
}

// StripCmd removes characters from either end of the input.
type StripCmd struct {
	Chars    string `short:"c" help:"Characters to strip (default: ASCII whitespace)"`
	Left     bool   `short:"l" help:"Strip only the start"`
	Right    bool   `short:"r" help:"Strip only the end"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *StripCmd) Run(env *Env) error {
	return env.apply("strip", c.Encoding, c.IOFlags, stripOp[byte](c), stripOp[uint16](c), stripOp[uint32](c))
}

func stripOp[U encoding.Unit](cmd *StripCmd) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		var chars []U
		if cmd.Chars != "" {
			var err error
			if chars, err = encoding.FromString(c, cmd.Chars); err != nil {
				return nil, err
			}
		}
		switch {
		case cmd.Left && !cmd.Right:
			return text.LStrip(c, s, chars), nil
		case cmd.Right && !cmd.Left:
			return text.RStrip(c, s, chars), nil
		}
		return text.Strip(c, s, chars), nil
	}
}

// ReplaceCmd replaces occurrences of Old with New.
type ReplaceCmd struct {
	Old      string `arg:"" help:"Substring to replace (empty inserts between every code point)"`
	New      string `arg:"" help:"Replacement"`
	Count    int    `short:"n" default:"-1" help:"Maximum number of replacements (-1 for all)"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *ReplaceCmd) Run(env *Env) error {
	return env.apply("replace", c.Encoding, c.IOFlags, replaceOp[byte](c), replaceOp[uint16](c), replaceOp[uint32](c))
}

func replaceOp[U encoding.Unit](cmd *ReplaceCmd) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		old, err := encoding.FromString(c, cmd.Old)
		if err != nil {
			return nil, err
		}
		repl, err := encoding.FromString(c, cmd.New)
		if err != nil {
			return nil, err
		}
		return text.Replace(c, s, old, repl, cmd.Count), nil
	}
}

// JustifyCmd pads input to a width in code points.
type JustifyCmd struct {
	Width    int    `arg:"" help:"Target width in code points"`
	Align    string `short:"a" default:"left" enum:"left,right,center,zfill" help:"Alignment (left, right, center, zfill)"`
	Fill     string `help:"Fill character (default: space)"`
	Truncate bool   `help:"Cut input longer than the width"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *JustifyCmd) Run(env *Env) error {
	if c.Width > format.MaxWidth {
		return errors.NewUsagef("justify", "width %d exceeds %d", c.Width, format.MaxWidth)
	}
	return env.apply("justify", c.Encoding, c.IOFlags, justifyOp[byte](c), justifyOp[uint16](c), justifyOp[uint32](c))
}

func justifyOp[U encoding.Unit](cmd *JustifyCmd) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		fillText := cmd.Fill
		if fillText == "" {
			fillText = " "
		}
		fill, err := encoding.FromString(c, fillText)
		if err != nil {
			return nil, err
		}
		if cmd.Truncate {
			s = text.Truncate(c, s, cmd.Width)
		}
		switch cmd.Align {
		case "right":
			return text.RJust(c, s, cmd.Width, fill)
		case "center":
			return text.Center(c, s, cmd.Width, fill)
		case "zfill":
			return text.ZFill(c, s, cmd.Width), nil
		}
		return text.LJust(c, s, cmd.Width, fill)
	}
}

// ExpandtabsCmd replaces tabs with spaces up to the next tab stop.
type ExpandtabsCmd struct {
	Tabsize  int    `short:"s" default:"4" help:"Distance between tab stops"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *ExpandtabsCmd) Run(env *Env) error {
	return env.apply("expandtabs", c.Encoding, c.IOFlags, expandOp[byte](c.Tabsize), expandOp[uint16](c.Tabsize), expandOp[uint32](c.Tabsize))
}

func expandOp[U encoding.Unit](tabsize int) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		return text.ExpandTabs(c, s, tabsize), nil
	}
}

// TranslateCmd maps each character of From to the matching one in To and
// deletes the characters of Delete.
type TranslateCmd struct {
	From     string `arg:"" help:"Characters to map"`
	To       string `arg:"" help:"Replacement characters, one per character of From"`
	Delete   string `short:"d" help:"Characters to delete"`
	Policy   string `short:"p" default:"strict" enum:"strict,replace,ignore" help:"Error policy (strict, replace, ignore)"`
	Encoding string `short:"e" default:"utf-8" help:"Encoding of input and output"`
	IOFlags  `embed:""`
}

func (c *TranslateCmd) Run(env *Env) error {
	policy, err := text.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}
	return env.apply("translate", c.Encoding, c.IOFlags, translateOp[byte](c, policy), translateOp[uint16](c, policy), translateOp[uint32](c, policy))
}

func translateOp[U encoding.Unit](cmd *TranslateCmd, policy text.Policy) op[U] {
	return func(c encoding.Codec[U], s []U) ([]U, error) {
		units := make([][]U, 3)
		for i, chars := range []string{cmd.From, cmd.To, cmd.Delete} {
			var err error
			if units[i], err = encoding.FromString(c, chars); err != nil {
				return nil, err
			}
		}
		table, err := text.MakeTransUnits(c, units[0], units[1], units[2])
		if err != nil {
			return nil, err
		}
		return text.Translate(c, s, table.Lookup, policy)
	}
}

// EncodingsCmd lists the registered encodings.
type EncodingsCmd struct {
	JSON bool `name:"json" help:"Print as JSON"`
}

type encodingEntry struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Multichar   bool   `json:"multichar"`
	Reversible  bool   `json:"reversible"`
	ByteOrder   string `json:"byte_order,omitempty"`
	Replacement string `json:"replacement"`
}

func (c *EncodingsCmd) Run(env *Env) error {
	var entries []encodingEntry
	for _, name := range encoding.Names() {
		info, err := encoding.Lookup(name)
		if err != nil {
			return err
		}
		desc := info.Descriptor()
		entry := encodingEntry{
			Name:        name,
			Width:       desc.Width,
			Multichar:   desc.Multichar,
			Reversible:  desc.Reversible,
			Replacement: desc.Replacement.String(),
		}
		if info.Order != nil {
			entry.ByteOrder = info.Order.String()
		}
		entries = append(entries, entry)
	}

	if c.JSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		order := "-"
		if e.ByteOrder != "" {
			order = e.ByteOrder
		}
		fmt.Fprintf(env.Stdout, "%-14s width=%d multichar=%-5v reversible=%-5v order=%s\n",
			e.Name, e.Width, e.Multichar, e.Reversible, order)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *Env) error {
	fmt.Fprintf(env.Stdout, "strkit version %s\n", version)
	return nil
}
