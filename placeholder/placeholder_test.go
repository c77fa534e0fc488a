package placeholder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func lit(s string) Segment {
	return Segment{Type: SegmentLiteral, Literal: s}
}

func item(p Placeholder) Segment {
	return Segment{Type: SegmentPlaceholder, Placeholder: p}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantSegs []Segment
	}{
		{
			name:     "empty",
			template: "",
			wantSegs: []Segment{},
		},
		{
			name:     "literal only",
			template: "hello world",
			wantSegs: []Segment{lit("hello world")},
		},
		{
			name:     "index",
			template: "{0}",
			wantSegs: []Segment{
				item(Placeholder{Index: 0, Raw: "{0}", Start: 0, End: 3}),
			},
		},
		{
			name:     "multi digit index",
			template: "{12}",
			wantSegs: []Segment{
				item(Placeholder{Index: 12, Raw: "{12}", Start: 0, End: 4}),
			},
		},
		{
			name:     "right alignment",
			template: "{0,7}",
			wantSegs: []Segment{
				item(Placeholder{Index: 0, Alignment: 7, HasAlignment: true, Raw: "{0,7}", End: 5}),
			},
		},
		{
			name:     "left alignment",
			template: "{0,-7}",
			wantSegs: []Segment{
				item(Placeholder{Index: 0, Alignment: -7, HasAlignment: true, Raw: "{0,-7}", End: 6}),
			},
		},
		{
			name:     "mask",
			template: "{3:0##-00-^*^-}",
			wantSegs: []Segment{
				item(Placeholder{Index: 3, Mask: "0##-00-^*^-", Raw: "{3:0##-00-^*^-}", End: 15}),
			},
		},
		{
			name:     "alignment and mask",
			template: "{2,-5:#,##0.00}",
			wantSegs: []Segment{
				item(Placeholder{Index: 2, Alignment: -5, HasAlignment: true, Mask: "#,##0.00", Raw: "{2,-5:#,##0.00}", End: 15}),
			},
		},
		{
			name:     "mixed text",
			template: "hello, {0}! {1,3}",
			wantSegs: []Segment{
				lit("hello, "),
				item(Placeholder{Index: 0, Raw: "{0}", Start: 7, End: 10}),
				lit("! "),
				item(Placeholder{Index: 1, Alignment: 3, HasAlignment: true, Raw: "{1,3}", Start: 12, End: 17}),
			},
		},
		{
			name:     "repeated item",
			template: "{0}{0}",
			wantSegs: []Segment{
				item(Placeholder{Index: 0, Raw: "{0}", Start: 0, End: 3}),
				item(Placeholder{Index: 0, Raw: "{0}", Start: 3, End: 6}),
			},
		},
		{
			name:     "doubled braces",
			template: "{{0}}",
			wantSegs: []Segment{
				lit("{"),
				item(Placeholder{Index: 0, Raw: "{0}", Start: 1, End: 4}),
				lit("}"),
			},
		},
		{
			name:     "unclosed",
			template: "{0",
			wantSegs: []Segment{lit("{0")},
		},
		{
			name:     "name instead of index",
			template: "{name}",
			wantSegs: []Segment{lit("{name}")},
		},
		{
			name:     "empty braces",
			template: "{}",
			wantSegs: []Segment{lit("{}")},
		},
		{
			name:     "alignment without digits",
			template: "{0,-}",
			wantSegs: []Segment{lit("{0,-}")},
		},
		{
			name:     "empty mask",
			template: "{0:}",
			wantSegs: []Segment{lit("{0:}")},
		},
		{
			name:     "whitespace is not allowed",
			template: "{0, 7}",
			wantSegs: []Segment{lit("{0, 7}")},
		},
		{
			name:     "invalid mask character",
			template: "{0:0 0}",
			wantSegs: []Segment{lit("{0:0 0}")},
		},
		{
			name:     "malformed then valid",
			template: "{x}{1}",
			wantSegs: []Segment{
				lit("{x}"),
				item(Placeholder{Index: 1, Raw: "{1}", Start: 3, End: 6}),
			},
		},
		{
			name:     "alignment overflow is literal",
			template: "{0,99999999999999999999}",
			wantSegs: []Segment{lit("{0,99999999999999999999}")},
		},
		{
			name:     "index overflow",
			template: "{99999999999999999999}",
			wantSegs: []Segment{
				item(Placeholder{Index: Overflow, Raw: "{99999999999999999999}", End: 22}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.template)
			assert.Equal(t, tt.template, got.Original)
			if diff := cmp.Diff(tt.wantSegs, got.Segments, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) segments mismatch (-want +got):\n%s", tt.template, diff)
			}
		})
	}
}

func TestParseSpansReconstructTemplate(t *testing.T) {
	templates := []string{
		"",
		"plain",
		"{0},{1},{2}",
		"a{0,-2}b{1:00}c{2,3:#.0}d",
		"{{0}} {x} {0:} {1",
	}

	for _, tmpl := range templates {
		var rebuilt string
		for _, seg := range Parse(tmpl).Segments {
			switch seg.Type {
			case SegmentLiteral:
				rebuilt += seg.Literal
			case SegmentPlaceholder:
				assert.Equal(t, tmpl[seg.Placeholder.Start:seg.Placeholder.End], seg.Placeholder.Raw)
				rebuilt += seg.Placeholder.Raw
			}
		}
		assert.Equal(t, tmpl, rebuilt)
	}
}

func TestTemplateHelpers(t *testing.T) {
	tmpl := Parse("{2} and {0,4} and {2:00}")

	assert.True(t, tmpl.HasPlaceholders())
	assert.Equal(t, 2, tmpl.MaxIndex())

	var indices []int
	for _, p := range tmpl.Placeholders() {
		indices = append(indices, p.Index)
	}
	assert.Equal(t, []int{2, 0, 2}, indices)

	empty := Parse("no items")
	assert.False(t, empty.HasPlaceholders())
	assert.Equal(t, -1, empty.MaxIndex())
	assert.Empty(t, empty.Placeholders())
}

func TestParseAlignmentLimit(t *testing.T) {
	tmpl := Parse("{0,1048576}")
	if assert.Len(t, tmpl.Placeholders(), 1) {
		assert.Equal(t, MaxAlignment, tmpl.Placeholders()[0].Alignment)
	}

	tmpl = Parse("{0,-1048576}")
	if assert.Len(t, tmpl.Placeholders(), 1) {
		assert.Equal(t, -MaxAlignment, tmpl.Placeholders()[0].Alignment)
	}

	for _, s := range []string{"{0,1048577}", "{0,-1048577}", "{0,99999999999999}", "{0,99999999999999999999}"} {
		assert.False(t, Parse(s).HasPlaceholders(), s)
	}
}

func TestParseStarMask(t *testing.T) {
	tmpl := Parse("{0:#*}")
	want := []Segment{item(Placeholder{Index: 0, Mask: "#*", Raw: "{0:#*}", Start: 0, End: 6})}
	if diff := cmp.Diff(want, tmpl.Segments); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestIsMaskChar(t *testing.T) {
	for _, c := range []byte("09azAZ_#.,-^*") {
		assert.True(t, IsMaskChar(c), "%q", c)
	}
	for _, c := range []byte(" {}:;/+$") {
		assert.False(t, IsMaskChar(c), "%q", c)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("{0}")
	f.Add("{0,-7:0##.00}")
	f.Add("{{{,}}}")

	f.Fuzz(func(t *testing.T, s string) {
		tmpl := Parse(s)
		for _, p := range tmpl.Placeholders() {
			if s[p.Start:p.End] != p.Raw {
				t.Fatalf("span %d:%d does not match raw %q", p.Start, p.End, p.Raw)
			}
		}
	})
}
