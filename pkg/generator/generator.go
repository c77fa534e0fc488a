// Package generator provides template-to-Go code generation functionality.
// It compiles composite format templates into specialised Go functions at
// build time, with the same output and errors as composite.Format.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KromDaniel/composite/internal/codegen"
	"github.com/KromDaniel/composite/internal/compiler"
)

// Options configures the template compilation process.
type Options struct {
	// Template is the composite format template to compile
	Template string `yaml:"template"`

	// Name is the generated function name (e.g., "Invoice" generates "func Invoice(args ...any)")
	Name string `yaml:"name"`

	// OutputFile is the path where generated code will be written
	OutputFile string `yaml:"output"`

	// Package is the Go package name for the generated code
	Package string `yaml:"package"`

	// GenerateTestFile generates a test file comparing the generated function against composite.Format
	// (default: true if TestArgs provided)
	GenerateTestFile bool `yaml:"test"`

	// TestArgs lists argument rows for the generated test file
	TestArgs [][]string `yaml:"test_args"`

	// Verbose logs template analysis to stderr
	Verbose bool `yaml:"verbose"`
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Template == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !codegen.IsIdentifier(o.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", o.Name)
	}
	if codegen.IsReserved(o.Name) {
		return fmt.Errorf("name %q clashes with generated code", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !codegen.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", o.Package)
	}
	return nil
}

// config converts o into the compiler configuration.
func (o Options) config() compiler.Config {
	return compiler.Config{
		Template:         o.Template,
		Name:             o.Name,
		OutputFile:       o.OutputFile,
		Package:          o.Package,
		GenerateTestFile: o.GenerateTestFile || len(o.TestArgs) > 0,
		TestArgs:         o.TestArgs,
		Verbose:          o.Verbose,
	}
}

// Compile generates Go code for the given template.
// It returns an error if the options are invalid or code generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	c := compiler.New(opts.config())
	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
