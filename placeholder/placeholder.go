// Package placeholder provides runtime parsing of composite format templates.
package placeholder

import (
	"math"
	"strings"
)

// SegmentType indicates the type of segment in a format template.
type SegmentType int

const (
	// SegmentLiteral represents literal text copied verbatim.
	SegmentLiteral SegmentType = iota
	// SegmentPlaceholder represents a {index[,alignment][:mask]} item.
	SegmentPlaceholder
)

// MaxAlignment is the largest alignment magnitude accepted. An item with a
// wider alignment is literal text.
const MaxAlignment = 1 << 20

// Overflow is the Index of a placeholder whose index does not fit in an int.
// It is never a valid argument position.
const Overflow = math.MaxInt

// Placeholder is a parsed format item.
type Placeholder struct {
	Index        int    // 0-based argument position
	Alignment    int    // signed width, negative for left alignment
	HasAlignment bool   // true if ",alignment" was present
	Mask         string // mask token, empty when absent
	Raw          string // exact template text of the item
	Start        int    // byte offset of '{' in the template
	End          int    // byte offset just past '}'
}

// Segment represents a parsed segment of a format template.
type Segment struct {
	Type        SegmentType
	Literal     string      // For SegmentLiteral: the literal text
	Placeholder Placeholder // For SegmentPlaceholder: the parsed item
}

// Template represents a fully parsed format template.
type Template struct {
	Original string
	Segments []Segment
}

// Parse parses a format template into segments.
// Template syntax:
//   - {0}, {12}: argument by 0-based index
//   - {0,7} / {0,-7}: right / left alignment to a total width of at
//     most MaxAlignment
//   - {0:000.##}: mask token ([A-Za-z0-9_#.,^*-]+)
//   - {0,-7:00}: both
//   - Everything else, including anything brace-like that does not fit
//     the grammar above, is literal text.
//
// Parsing never fails; all state is local to the call.
func Parse(template string) *Template {
	result := &Template{
		Original: template,
		Segments: make([]Segment, 0),
	}

	if len(template) == 0 {
		return result
	}

	i := 0
	literalStart := 0

	for i < len(template) {
		if template[i] != '{' {
			i++
			continue
		}

		ph, ok := parseItem(template, i)
		if !ok {
			// Not an item, the brace stays literal
			i++
			continue
		}

		// Flush any accumulated literal
		if i > literalStart {
			result.Segments = append(result.Segments, Segment{
				Type:    SegmentLiteral,
				Literal: template[literalStart:i],
			})
		}

		result.Segments = append(result.Segments, Segment{
			Type:        SegmentPlaceholder,
			Placeholder: ph,
		})
		i = ph.End
		literalStart = i
	}

	// Flush any remaining literal
	if i > literalStart {
		result.Segments = append(result.Segments, Segment{
			Type:    SegmentLiteral,
			Literal: template[literalStart:i],
		})
	}

	return result
}

// Placeholders returns the placeholders of t in encounter order.
func (t *Template) Placeholders() []Placeholder {
	var out []Placeholder
	for _, seg := range t.Segments {
		if seg.Type == SegmentPlaceholder {
			out = append(out, seg.Placeholder)
		}
	}
	return out
}

// HasPlaceholders reports whether t contains at least one placeholder.
func (t *Template) HasPlaceholders() bool {
	for _, seg := range t.Segments {
		if seg.Type == SegmentPlaceholder {
			return true
		}
	}
	return false
}

// MaxIndex returns the highest argument index referenced by t, or -1
// if t has no placeholders.
func (t *Template) MaxIndex() int {
	highest := -1
	for _, seg := range t.Segments {
		if seg.Type == SegmentPlaceholder && seg.Placeholder.Index > highest {
			highest = seg.Placeholder.Index
		}
	}
	return highest
}

// parseItem tries to match a format item at s[start] == '{'.
func parseItem(s string, start int) (Placeholder, bool) {
	pos := start + 1

	digits := scanDigits(s, pos)
	if digits == 0 {
		return Placeholder{}, false
	}
	index, ok := atoi(s[pos : pos+digits])
	if !ok {
		index = Overflow
	}
	pos += digits

	ph := Placeholder{Index: index}

	if pos < len(s) && s[pos] == ',' {
		p := pos + 1
		neg := p < len(s) && s[p] == '-'
		if neg {
			p++
		}
		n := scanDigits(s, p)
		if n == 0 {
			return Placeholder{}, false
		}
		width, ok := atoi(s[p : p+n])
		if !ok || width > MaxAlignment {
			return Placeholder{}, false
		}
		if neg {
			width = -width
		}
		ph.Alignment = width
		ph.HasAlignment = true
		pos = p + n
	}

	if pos < len(s) && s[pos] == ':' {
		p := pos + 1
		for p < len(s) && IsMaskChar(s[p]) {
			p++
		}
		if p == pos+1 {
			return Placeholder{}, false
		}
		ph.Mask = s[pos+1 : p]
		pos = p
	}

	if pos >= len(s) || s[pos] != '}' {
		return Placeholder{}, false
	}

	ph.Start = start
	ph.End = pos + 1
	ph.Raw = s[start:ph.End]
	return ph, true
}

// IsMaskChar reports whether c may appear in a mask token.
func IsMaskChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	return strings.IndexByte("_#.,-^*", c) >= 0
}

func scanDigits(s string, pos int) int {
	n := 0
	for pos+n < len(s) && s[pos+n] >= '0' && s[pos+n] <= '9' {
		n++
	}
	return n
}

// atoi parses ASCII digits, reporting false on int overflow.
func atoi(s string) (int, bool) {
	n := 0
	for j := 0; j < len(s); j++ {
		d := int(s[j] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
