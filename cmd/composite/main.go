// Command composite formats strings from composite templates and
// generates specialised Go formatters.
//
// Usage:
//
//	composite format -t "{0,-8}|{1,6:0.00}" total 3.5
//	composite lines -t "{0,-12}|{1,10:0.00}" -d , prices.csv
//	composite gen -t "{0,-8}|{1:000}" -n Row -o row_gen.go -p report
//	composite gen -batch formatters.yaml
//	composite analyze -t "{0} {1,4:00}"
//	composite repl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/composite/internal/compiler"
	"github.com/KromDaniel/composite/pkg/composite"
	"github.com/KromDaniel/composite/pkg/generator"
	"github.com/KromDaniel/composite/stream"
)

// arrayFlags collects a repeated string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

const usage = `usage: composite <command> [flags] [args]

commands:
  format   format arguments with a template
  lines    format every line of a file or stdin
  gen      generate a Go formatter function
  analyze  describe the placeholders of a template
  repl     interactive session
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "composite:", err)
		return 1
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "format":
		err = runFormat(rest, stdout)
	case "lines":
		err = runLines(rest, cfg, stdin, stdout)
	case "gen":
		err = runGen(rest, cfg, stderr)
	case "analyze":
		err = runAnalyze(rest, stdout)
	case "repl":
		err = runREPL(rest, cfg)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "composite: unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "composite:", err)
		return 1
	}
	return 0
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// templateArg returns the -t value, or the first positional argument.
func templateArg(tmpl string, rest []string) (string, []string, error) {
	if tmpl != "" {
		return tmpl, rest, nil
	}
	if len(rest) == 0 {
		return "", nil, errors.New("missing template (-t)")
	}
	return rest[0], rest[1:], nil
}

func runFormat(args []string, stdout io.Writer) error {
	fs := newFlagSet("format")
	tmpl := fs.String("t", "", "template")
	noNewline := fs.Bool("n", false, "do not print a trailing newline")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, rest, err := templateArg(*tmpl, fs.Args())
	if err != nil {
		return err
	}

	values := make([]any, len(rest))
	for i, v := range rest {
		values[i] = v
	}

	out, err := composite.Format(t, values...)
	if err != nil {
		return err
	}
	if *noNewline {
		_, err = io.WriteString(stdout, out)
	} else {
		_, err = fmt.Fprintln(stdout, out)
	}
	return err
}

func runLines(args []string, cfg Config, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("lines")
	tmpl := fs.String("t", "", "template")
	sep := fs.String("d", cfg.Separator, "field separator (default: white space)")
	trim := fs.Bool("trim", false, "trim white space around fields")
	skipEmpty := fs.Bool("skip-empty", false, "skip blank lines")
	bufSize := fs.Int("buffer", stream.DefaultBufferSize, "maximum line length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tmpl == "" {
		return errors.New("missing template (-t)")
	}

	src := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	_, err := stream.FormatReader(src, stdout, composite.Compile(*tmpl), stream.Config{
		BufferSize: *bufSize,
		Separator:  *sep,
		TrimSpace:  *trim,
		SkipEmpty:  *skipEmpty,
	})
	return err
}

func runGen(args []string, cfg Config, stderr io.Writer) error {
	fs := newFlagSet("gen")
	tmpl := fs.String("t", "", "template")
	name := fs.String("n", "", "generated function name")
	out := fs.String("o", "", "output file")
	pkg := fs.String("p", cfg.Package, "package name")
	batch := fs.String("batch", "", "YAML batch file")
	verbose := fs.Bool("v", cfg.Verbose, "log template analysis")
	var testArgs arrayFlags
	fs.Var(&testArgs, "test-args", "comma separated argument row for the generated test (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *batch != "" {
		b, err := generator.LoadBatch(*batch)
		if err != nil {
			return err
		}
		b.Verbose = b.Verbose || *verbose
		if b.Package == "" {
			b.Package = *pkg
		}
		return generator.CompileBatch(b)
	}

	opts := generator.Options{
		Template:   *tmpl,
		Name:       *name,
		OutputFile: *out,
		Package:    *pkg,
		Verbose:    *verbose,
	}
	for _, row := range testArgs {
		opts.TestArgs = append(opts.TestArgs, strings.Split(row, ","))
	}

	if err := generator.Compile(opts); err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(stderr, "[composite] wrote %s\n", opts.OutputFile)
	}
	return nil
}

func runAnalyze(args []string, stdout io.Writer) error {
	fs := newFlagSet("analyze")
	tmpl := fs.String("t", "", "template")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, _, err := templateArg(*tmpl, fs.Args())
	if err != nil {
		return err
	}

	a := compiler.Analyze(t)
	fmt.Fprintf(stdout, "placeholders: %d\n", a.Placeholders)
	if a.Overflow {
		fmt.Fprintln(stdout, "arguments:    index overflows int")
	} else {
		fmt.Fprintf(stdout, "arguments:    %d\n", a.MaxIndex+1)
	}
	fmt.Fprintf(stdout, "indices:      %v\n", a.Distinct)
	fmt.Fprintf(stdout, "masked:       %d\n", a.Masked)
	fmt.Fprintf(stdout, "aligned:      %d\n", a.Aligned)
	fmt.Fprintf(stdout, "literal:      %d bytes\n", a.LiteralBytes)

	logger := compiler.NewLogger(true)
	logger.SetOutput(stdout)
	for _, p := range composite.Compile(t).Placeholders() {
		logger.Item(p)
	}
	return nil
}
