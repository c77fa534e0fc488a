// Package compiler turns composite templates into specialised Go functions.
package compiler

import (
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/KromDaniel/composite/internal/codegen"
	"github.com/KromDaniel/composite/placeholder"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Template         string
	Name             string
	OutputFile       string
	Package          string
	GenerateTestFile bool       // Generate test file comparing against the runtime formatter
	TestArgs         [][]string // Argument rows for the generated test file
	Verbose          bool       // Enable verbose logging of analysis decisions
}

// Compiler generates a Go formatter function for one template.
type Compiler struct {
	config   Config
	file     *jen.File
	parsed   *placeholder.Template
	logger   *Logger
	analysis Analysis
}

// Analysis summarises a parsed template.
type Analysis struct {
	Placeholders int   // number of format items
	Distinct     []int // distinct argument indices in encounter order
	MaxIndex     int   // highest referenced index, -1 if none
	Masked       int   // items carrying a mask
	Aligned      int   // items carrying an alignment
	LiteralBytes int   // bytes of literal text
	Overflow     bool  // an index does not fit in an int
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		parsed: placeholder.Parse(config.Template),
		logger: NewLogger(config.Verbose),
	}
	c.analyzeAndLog()
	return c
}

// Analyze parses template and reports its shape without generating code.
func Analyze(template string) Analysis {
	return analyze(placeholder.Parse(template))
}

func analyze(t *placeholder.Template) Analysis {
	a := Analysis{MaxIndex: t.MaxIndex()}
	seen := make(map[int]bool)
	for _, seg := range t.Segments {
		if seg.Type == placeholder.SegmentLiteral {
			a.LiteralBytes += len(seg.Literal)
			continue
		}
		p := seg.Placeholder
		a.Placeholders++
		if p.Mask != "" {
			a.Masked++
		}
		if p.HasAlignment {
			a.Aligned++
		}
		if p.Index == placeholder.Overflow {
			a.Overflow = true
		}
		if !seen[p.Index] {
			seen[p.Index] = true
			a.Distinct = append(a.Distinct, p.Index)
		}
	}
	return a
}

// analyzeAndLog computes the template analysis and logs it if verbose mode is enabled.
func (c *Compiler) analyzeAndLog() {
	c.analysis = analyze(c.parsed)

	c.logger.Section("Template Analysis")
	c.logger.Log("Template: %q", c.config.Template)
	c.logger.Log("Placeholders: %d (masked %d, aligned %d)", c.analysis.Placeholders, c.analysis.Masked, c.analysis.Aligned)
	c.logger.Log("Distinct indices: %v", c.analysis.Distinct)
	c.logger.Log("Max index: %d", c.analysis.MaxIndex)
	c.logger.Log("Literal bytes: %d", c.analysis.LiteralBytes)
	for _, p := range c.parsed.Placeholders() {
		c.logger.Item(p)
	}
	if c.analysis.Overflow {
		c.logger.Log("Warning: template references an index that overflows int; generated function always fails")
	}
}

// Analysis returns the analysis of the configured template.
func (c *Compiler) Analysis() Analysis {
	return c.analysis
}

// Logger returns the compiler's logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	c.build()

	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// Render writes the generated formatter source to w.
func (c *Compiler) Render(w io.Writer) error {
	c.build()
	return c.file.Render(w)
}

func (c *Compiler) build() {
	// Rebuild from scratch so Render and Generate can both be called.
	c.file = jen.NewFile(c.config.Package)
	c.file.HeaderComment(fmt.Sprintf("Code generated by composite for template: %q", c.config.Template))
	c.file.HeaderComment("DO NOT EDIT.")

	constName := codegen.TemplateConstName(c.config.Name)
	c.file.Commentf("%s is the template %s was generated from.", constName, c.config.Name)
	c.file.Const().Id(constName).Op("=").Lit(c.config.Template)
	c.file.Line()

	c.file.Commentf("%s formats args with the template %q.", c.config.Name, c.config.Template)
	c.file.Comment("It returns the same result as composite.Format on that template.")
	c.file.Func().Id(c.config.Name).
		Params(jen.Id(codegen.ArgsName).Op("...").Id("any")).
		Params(jen.String(), jen.Error()).
		Block(c.formatBody()...)
}

// formatBody emits the bounds checks followed by the output assembly.
func (c *Compiler) formatBody() []jen.Code {
	if c.analysis.Placeholders == 0 {
		return []jen.Code{jen.Return(jen.Id(codegen.TemplateConstName(c.config.Name)), jen.Nil())}
	}

	var body []jen.Code

	// A placeholder needs a check only if it raises the highest index
	// checked so far; anything lower already passed.
	checked := -1
	for _, p := range c.parsed.Placeholders() {
		if p.Index <= checked {
			continue
		}
		if p.Index == placeholder.Overflow {
			body = append(body, jen.Return(jen.Lit(""), indexError(p)))
			return body
		}
		body = append(body,
			jen.If(jen.Len(jen.Id(codegen.ArgsName)).Op("<=").Lit(p.Index)).Block(
				jen.Return(jen.Lit(""), indexError(p)),
			),
		)
		checked = p.Index
	}
	body = append(body, jen.Line())

	b := jen.Id(codegen.BuilderName)
	body = append(body,
		jen.Var().Id(codegen.BuilderName).Qual("strings", "Builder"),
		b.Clone().Dot("Grow").Call(jen.Lit(len(c.config.Template))),
	)

	for _, seg := range c.parsed.Segments {
		switch seg.Type {
		case placeholder.SegmentLiteral:
			body = append(body, b.Clone().Dot("WriteString").Call(jen.Lit(seg.Literal)))
		case placeholder.SegmentPlaceholder:
			body = append(body, c.renderItem(seg.Placeholder))
		}
	}

	body = append(body, jen.Return(b.Clone().Dot("String").Call(), jen.Nil()))
	return body
}

// renderItem emits the rendering of one placeholder; an empty rendering
// leaves the raw item text in the output.
func (c *Compiler) renderItem(p placeholder.Placeholder) jen.Code {
	s := jen.Id(codegen.RenderedName)
	b := jen.Id(codegen.BuilderName)

	return jen.If(
		s.Clone().Op(":=").Qual(codegen.RuntimePackage, "Render").Call(
			jen.Id(codegen.ArgsName).Index(jen.Lit(p.Index)),
			jen.Lit(p.Alignment),
			jen.Lit(p.Mask),
		),
		s.Clone().Op("!=").Lit(""),
	).Block(
		b.Clone().Dot("WriteString").Call(s.Clone()),
	).Else().Block(
		b.Clone().Dot("WriteString").Call(jen.Lit(p.Raw)),
	)
}

func indexError(p placeholder.Placeholder) jen.Code {
	return jen.Op("&").Qual(codegen.RuntimePackage, "IndexError").Values(jen.Dict{
		jen.Id("Index"):       jen.Lit(p.Index),
		jen.Id("Count"):       jen.Len(jen.Id(codegen.ArgsName)),
		jen.Id("Placeholder"): jen.Lit(p.Raw),
		jen.Id("Offset"):      jen.Lit(p.Start),
	})
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
