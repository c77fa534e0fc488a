// Package composite formats strings from composite templates.
//
// A template mixes literal text with format items of the form
//
//	{index[,alignment][:mask]}
//
// index selects an argument (0-based), alignment pads the rendered value
// with spaces to the given width (negative aligns left) and mask renders
// the value's digits through a 0/# digit-placeholder mask:
//
//	s, err := composite.Format("{0,-8}|{1,6:0.00}|{2:000}", "total", 3.5, 7)
//	// s == "total   |  3.50|007"
//
// Anything that does not match the item grammar is kept as literal text.
// Referencing an argument that was not supplied fails the whole call
// with an error wrapping ErrIndexOutOfRange.
package composite

import (
	"strings"

	"github.com/KromDaniel/composite/placeholder"
)

// Template is a parsed template ready for repeated formatting.
// A Template is immutable and safe for concurrent use.
type Template struct {
	parsed *placeholder.Template
}

// Compile parses template once for repeated use.
func Compile(template string) *Template {
	return &Template{parsed: placeholder.Parse(template)}
}

// Format is shorthand for Compile(template).Format(args...).
func Format(template string, args ...any) (string, error) {
	return Compile(template).Format(args...)
}

// MustFormat is like Format but panics if an index is out of range.
func MustFormat(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// String is a template string that can format itself.
type String string

// Format formats s with args.
func (s String) Format(args ...any) (string, error) {
	return Format(string(s), args...)
}

// String returns the template text.
func (t *Template) String() string {
	return t.parsed.Original
}

// Placeholders returns the parsed format items in encounter order.
func (t *Template) Placeholders() []placeholder.Placeholder {
	return t.parsed.Placeholders()
}

// MaxIndex returns the highest referenced argument index, or -1.
func (t *Template) MaxIndex() int {
	return t.parsed.MaxIndex()
}

// Validate checks that every placeholder has an argument when n
// arguments are supplied. The first offending placeholder, in encounter
// order, is reported.
func (t *Template) Validate(n int) error {
	for _, seg := range t.parsed.Segments {
		if seg.Type != placeholder.SegmentPlaceholder {
			continue
		}
		p := seg.Placeholder
		if p.Index >= n {
			return &IndexError{Index: p.Index, Count: n, Placeholder: p.Raw, Offset: p.Start}
		}
	}
	return nil
}

// Format renders the template with args. Extra arguments are ignored.
// On error no partial output is returned.
func (t *Template) Format(args ...any) (string, error) {
	if !t.parsed.HasPlaceholders() {
		return t.parsed.Original, nil
	}
	if err := t.Validate(len(args)); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(t.parsed.Original))
	for _, seg := range t.parsed.Segments {
		switch seg.Type {
		case placeholder.SegmentLiteral:
			b.WriteString(seg.Literal)
		case placeholder.SegmentPlaceholder:
			p := seg.Placeholder
			rendered := Render(args[p.Index], p.Alignment, p.Mask)
			if rendered == "" {
				// Nothing to substitute, keep the item text
				rendered = p.Raw
			}
			b.WriteString(rendered)
		}
	}
	return b.String(), nil
}
