// Command strkit is the CLI for the strkit string engine.
// It applies encoding-aware string operations to text given on the command
// line, read from a file, or piped through stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/errors"
	"github.com/FocuswithJustin/strkit/internal/logging"
	"github.com/FocuswithJustin/strkit/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for strkit.
type CLI struct {
	// Global flags
	Config    kong.ConfigFlag `help:"Load flag defaults from a JSON file"`
	LogLevel  string          `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error" env:"STRKIT_LOG_LEVEL"`
	LogFormat string          `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json" env:"STRKIT_LOG_FORMAT"`

	Transcode  TranscodeCmd  `cmd:"" help:"Convert text between encodings"`
	Quote      QuoteCmd      `cmd:"" help:"Render text as a quoted, escaped literal"`
	Format     FormatCmd     `cmd:"" help:"Render a brace template with typed arguments"`
	Find       FindCmd       `cmd:"" help:"Find or count a substring"`
	Split      SplitCmd      `cmd:"" help:"Split text into fields, one per line"`
	Strip      StripCmd      `cmd:"" help:"Strip leading and trailing characters"`
	Replace    ReplaceCmd    `cmd:"" help:"Replace occurrences of a substring"`
	Justify    JustifyCmd    `cmd:"" help:"Pad text to a width in code points"`
	Expandtabs ExpandtabsCmd `cmd:"" help:"Expand tabs to spaces"`
	Translate  TranslateCmd  `cmd:"" help:"Map and delete characters"`
	Encodings  EncodingsCmd  `cmd:"" help:"List supported encodings"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// Env carries the context and streams shared by all commands.
type Env struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
}

// IOFlags select where a command reads its input and writes its output.
type IOFlags struct {
	Text string `short:"t" help:"Operate on this text instead of reading input"`
	In   string `short:"i" help:"Read input from file (default stdin)" type:"existingfile"`
	Out  string `short:"o" help:"Write output to file (default stdout)" type:"path"`
	Raw  bool   `help:"Do not append a newline to the output"`
}

// op is one string operation instantiated for a code unit type.
type op[U encoding.Unit] func(c encoding.Codec[U], s []U) ([]U, error)

// readUnits returns the command input as code units of c. Text given with
// --text is UTF-8 from the command line and is encoded with c; file and
// stdin input are raw bytes already in the named encoding.
func readUnits[U encoding.Unit](env *Env, info *encoding.Info, c encoding.Codec[U], flags IOFlags) ([]U, error) {
	if flags.Text != "" {
		return encoding.FromString(c, flags.Text)
	}

	data, err := readInput(env, flags)
	if err != nil {
		return nil, err
	}

	units, err := encoding.DecodeBytes[U](data, info.Order)
	if err != nil {
		var decErr *errors.DecodeError
		if errors.As(err, &decErr) {
			decErr.Encoding = info.Name
		}
		return nil, err
	}
	return units, nil
}

// readInput returns the raw bytes of the input file, or of stdin when no
// file was named.
func readInput(env *Env, flags IOFlags) ([]byte, error) {
	var data []byte
	var err error
	if flags.In != "" {
		data, err = validation.ReadFile(flags.In, validation.MaxInputSize)
	} else {
		data, err = validation.ReadLimited(env.Stdin, validation.MaxInputSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeUnits serializes units in the named encoding, followed by a newline
// unless --raw was given.
func writeUnits[U encoding.Unit](env *Env, info *encoding.Info, c encoding.Codec[U], flags IOFlags, units []U) error {
	if !flags.Raw {
		units, _ = c.Append(units, '\n')
	}
	data := encoding.EncodeBytes(units, info.Order)

	if flags.Out != "" {
		if err := validation.ValidatePath(flags.Out); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Out, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// apply runs the instantiation of an operation that matches the code unit
// width of the named encoding.
func (e *Env) apply(name, enc string, flags IOFlags, f8 op[byte], f16 op[uint16], f32 op[uint32]) error {
	info, err := encoding.Lookup(enc)
	if err != nil {
		return err
	}
	switch c := info.Codec.(type) {
	case encoding.Codec[byte]:
		return transform(e, name, info, c, flags, f8)
	case encoding.Codec[uint16]:
		return transform(e, name, info, c, flags, f16)
	case encoding.Codec[uint32]:
		return transform(e, name, info, c, flags, f32)
	}
	return errors.NewUsagef(name, "encoding %q has no codec", enc)
}

func transform[U encoding.Unit](e *Env, name string, info *encoding.Info, c encoding.Codec[U], flags IOFlags, f op[U]) error {
	in, err := readUnits(e, info, c, flags)
	if err != nil {
		return err
	}
	start := time.Now()
	out, err := f(c, in)
	if err != nil {
		return err
	}
	logging.Operation(e.Ctx, name, info.Name, len(in), time.Since(start))
	return writeUnits(e, info, c, flags, out)
}

func (cli *CLI) initLogging(w io.Writer) error {
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLoggerTo(w, level, format)
	return nil
}

// run parses args and executes the selected command. Extra kong options
// are applied after the defaults.
func run(args []string, env *Env, stderr io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("strkit"),
		kong.Description("strkit - encoding-aware string toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, "~/.config/strkit/config.json"),
		kong.Writers(env.Stdout, stderr),
		kong.Bind(env),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := cli.initLogging(stderr); err != nil {
		return err
	}

	command := strings.Fields(ctx.Command())[0]
	env.Ctx = logging.WithCommand(env.Ctx, command)
	logging.DebugContext(env.Ctx, "command_start", "args", len(args))
	if err := ctx.Run(); err != nil {
		logging.OperationError(env.Ctx, command, err)
		return err
	}
	return nil
}

// exitCode maps an error to the process exit status: 2 for usage errors,
// 1 for everything else.
func exitCode(err error) int {
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) || errors.Is(err, errors.ErrUsage) {
		return 2
	}
	return 1
}

func main() {
	env := &Env{
		Ctx:    context.Background(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
	if err := run(os.Args[1:], env, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "strkit: %v\n", err)
		os.Exit(exitCode(err))
	}
}
