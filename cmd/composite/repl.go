package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/KromDaniel/composite/internal/compiler"
	"github.com/KromDaniel/composite/pkg/composite"
	"github.com/KromDaniel/composite/stream"
)

const replHelp = `commands:
  :t TEMPLATE   set the template
  :show         print the current template and its placeholders
  :sep SEP      set the argument separator (empty: white space)
  :help         show this help
  :quit         leave
any other line is split into arguments and formatted
`

// session holds the state of one interactive session.
type session struct {
	tmpl *composite.Template
	sep  string
}

// handle processes one input line and reports whether the session ends.
func (s *session) handle(line string, out io.Writer) (quit bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	cmd, arg, _ := strings.Cut(input, " ")
	switch cmd {
	case ":q", ":quit", ":exit":
		return true
	case ":h", ":help":
		fmt.Fprint(out, replHelp)
	case ":t", ":template":
		// Keep the template's own spacing after the command.
		raw := strings.TrimPrefix(strings.TrimLeft(line, " \t"), cmd)
		s.tmpl = composite.Compile(strings.TrimPrefix(raw, " "))
		fmt.Fprintf(out, "template: %q\n", s.tmpl.String())
	case ":sep":
		s.sep = arg
		fmt.Fprintf(out, "separator: %q\n", s.sep)
	case ":show":
		s.show(out)
	default:
		s.format(line, out)
	}
	return false
}

func (s *session) show(out io.Writer) {
	if s.tmpl == nil {
		fmt.Fprintln(out, "no template, use :t TEMPLATE")
		return
	}
	fmt.Fprintf(out, "template: %q\n", s.tmpl.String())
	logger := compiler.NewLogger(true)
	logger.SetOutput(out)
	for _, p := range s.tmpl.Placeholders() {
		logger.Item(p)
	}
}

func (s *session) format(line string, out io.Writer) {
	if s.tmpl == nil {
		fmt.Fprintln(out, "no template, use :t TEMPLATE")
		return
	}
	args := stream.Fields(line, stream.Config{Separator: s.sep, TrimSpace: s.sep != ""})
	result, err := s.tmpl.Format(args...)
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	fmt.Fprintln(out, result)
}

func runREPL(args []string, cfg Config) error {
	fs := newFlagSet("repl")
	tmpl := fs.String("t", "", "initial template")
	sep := fs.String("d", cfg.Separator, "argument separator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s := &session{sep: *sep}
	if *tmpl != "" {
		s.tmpl = composite.Compile(*tmpl)
	}

	fmt.Fprint(rl.Stdout(), replHelp)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF
			return nil
		}
		if s.handle(line, rl.Stdout()) {
			return nil
		}
	}
}
