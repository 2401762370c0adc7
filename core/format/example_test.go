package format_test

import (
	"fmt"
	"log"

	"github.com/FocuswithJustin/strkit/core/encoding"
	"github.com/FocuswithJustin/strkit/core/format"
)

// Example renders a template with automatic field numbering.
func Example() {
	s, err := format.Format("{} has {:>4} verses", "Psalms", 2461)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)

	// Output:
	// Psalms has 2461 verses
}

// ExampleFormat shows the numeric specifiers.
func ExampleFormat() {
	for _, spec := range []string{"{:+6}", "{:=+6}", "{:^+06}", "{:#010b}", "{:#06X}", "{:.3f}"} {
		s, err := format.Format(spec, 42)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-10s %q\n", spec, s)
	}

	// Output:
	// {:+6}      "   +42"
	// {:=+6}     "+   42"
	// {:^+06}    "0+4200"
	// {:#010b}   "0b00101010"
	// {:#06X}    "0X002A"
	// {:.3f}     "42.000"
}

// ExampleParseSpec decodes a specifier into its fields.
func ExampleParseSpec() {
	spec := format.ParseSpec("*^+#12,.3e")
	fmt.Printf("fill=%s align=%c sign=%c alt=%v width=%d comma=%v precision=%d type=%c\n",
		spec.Fill, spec.Align, spec.Sign, spec.Alternate, spec.Width, spec.Comma, spec.Precision, spec.Type)

	// Output:
	// fill=* align=^ sign=+ alt=true width=12 comma=true precision=3 type=e
}

// ExampleNewFormatter renders into UTF-16 code units.
func ExampleNewFormatter() {
	f := format.NewFormatter(encoding.UTF16)
	units, err := f.Format("{0!r} {1:😀^5}", format.String("✏"), format.Int(7))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(units), encoding.ToString(encoding.UTF16, units))

	// Output:
	// 13 "✏" 😀😀7😀😀
}
