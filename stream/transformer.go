package stream

import (
	"bufio"
	"io"
	"strings"

	"github.com/KromDaniel/composite/pkg/composite"
)

// Formatter wraps a source io.Reader and formats every line with a template.
// It implements io.Reader, allowing standard Go composition via io.Copy, etc.
//
// Formatting is lazy - lines are read only when Read is called. The first
// line that fails to format stops the stream with a *RecordError.
type Formatter struct {
	scanner *bufio.Scanner
	tmpl    *composite.Template
	cfg     Config

	// Output buffering
	output      []byte
	outputStart int

	line int
	err  error
}

// NewFormatter creates a Formatter reading records from source.
func NewFormatter(source io.Reader, tmpl *composite.Template, cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.ApplyDefaults()

	scanner := bufio.NewScanner(source)
	initial := 4096
	if cfg.BufferSize < initial {
		initial = cfg.BufferSize
	}
	scanner.Buffer(make([]byte, 0, initial), cfg.BufferSize)

	return &Formatter{
		scanner: scanner,
		tmpl:    tmpl,
		cfg:     cfg,
		output:  make([]byte, 0, 4096),
	}, nil
}

// Line returns the number of input lines consumed so far.
func (f *Formatter) Line() int {
	return f.line
}

// Read implements io.Reader.
func (f *Formatter) Read(p []byte) (n int, err error) {
	// Return buffered output first
	if f.outputStart < len(f.output) {
		return f.drain(p), nil
	}

	if f.err != nil {
		return 0, f.err
	}

	// Process more input until we have output or hit EOF/error
	for f.outputStart == len(f.output) {
		if err := f.checkContext(); err != nil {
			f.err = err
			return 0, err
		}
		if err := f.next(); err != nil {
			f.err = err
			return 0, err
		}
	}

	return f.drain(p), nil
}

// next formats one input line into the output buffer.
func (f *Formatter) next() error {
	if !f.scanner.Scan() {
		if err := f.scanner.Err(); err != nil {
			return &RecordError{Line: f.line + 1, Err: err}
		}
		return io.EOF
	}
	f.line++

	line := strings.TrimSuffix(f.scanner.Text(), "\r")
	if f.cfg.SkipEmpty && strings.TrimSpace(line) == "" {
		return nil
	}

	s, err := f.tmpl.Format(Fields(line, f.cfg)...)
	if err != nil {
		return &RecordError{Line: f.line, Err: err}
	}

	f.output = append(f.output[:0], s...)
	f.output = append(f.output, '\n')
	f.outputStart = 0
	return nil
}

func (f *Formatter) drain(p []byte) int {
	n := copy(p, f.output[f.outputStart:])
	f.outputStart += n
	if f.outputStart == len(f.output) {
		f.output = f.output[:0]
		f.outputStart = 0
	}
	return n
}

func (f *Formatter) checkContext() error {
	if f.cfg.Context == nil {
		return nil
	}
	select {
	case <-f.cfg.Context.Done():
		return f.cfg.Context.Err()
	default:
		return nil
	}
}

// Fields splits line into template arguments according to cfg.
func Fields(line string, cfg Config) []any {
	var parts []string
	if cfg.Separator == "" {
		parts = strings.Fields(line)
	} else {
		parts = strings.Split(line, cfg.Separator)
	}

	args := make([]any, len(parts))
	for i, p := range parts {
		if cfg.TrimSpace {
			p = strings.TrimSpace(p)
		}
		args[i] = p
	}
	return args
}

// FormatReader formats every line of r into w and returns the number of
// bytes written.
func FormatReader(r io.Reader, w io.Writer, tmpl *composite.Template, cfg Config) (int64, error) {
	f, err := NewFormatter(r, tmpl, cfg)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, f)
}
