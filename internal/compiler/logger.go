package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/composite/placeholder"
)

// Logger writes verbose generation notes to stderr.
type Logger struct {
	enabled bool
	prefix  string
	out     io.Writer
}

// NewLogger creates a new logger instance.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		prefix:  "[composite]",
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "%s %s\n", l.prefix, fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n%s === %s ===\n", l.prefix, name)
	}
}

// Item logs one parsed placeholder.
func (l *Logger) Item(p placeholder.Placeholder) {
	if !l.enabled {
		return
	}
	align := "none"
	if p.HasAlignment {
		align = fmt.Sprintf("%d", p.Alignment)
	}
	m := p.Mask
	if m == "" {
		m = "none"
	}
	l.Log("  %-16s offset=%-4d index=%-3d align=%-5s mask=%s", p.Raw, p.Start, p.Index, align, m)
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
