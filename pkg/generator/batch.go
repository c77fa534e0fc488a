package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Batch lists several formatters to generate. Package, Dir and Verbose act
// as defaults for entries that leave them empty.
//
//	package: report
//	dir: internal/report
//	formatters:
//	  - name: Row
//	    template: "{0,-12}|{1,10:0.00}"
//	    output: row_gen.go
//	    test_args: [["apples", "1.5"]]
type Batch struct {
	Package    string    `yaml:"package"`
	Dir        string    `yaml:"dir"`
	Verbose    bool      `yaml:"verbose"`
	Formatters []Options `yaml:"formatters"`
}

// LoadBatch reads a YAML batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes a YAML batch document.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(b.Formatters) == 0 {
		return nil, errors.New("batch file lists no formatters")
	}
	return &b, nil
}

// Resolved returns the entries with batch defaults applied.
func (b *Batch) Resolved() []Options {
	out := make([]Options, 0, len(b.Formatters))
	for _, o := range b.Formatters {
		if o.Package == "" {
			o.Package = b.Package
		}
		if b.Dir != "" && o.OutputFile != "" && !filepath.IsAbs(o.OutputFile) {
			o.OutputFile = filepath.Join(b.Dir, o.OutputFile)
		}
		o.Verbose = o.Verbose || b.Verbose
		out = append(out, o)
	}
	return out
}

// Validate validates every resolved entry and rejects duplicate names
// within one package.
func (b *Batch) Validate() error {
	seen := make(map[string]bool)
	var errs []error
	for i, o := range b.Resolved() {
		if err := o.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("formatter %d (%s): %w", i, o.Name, err))
			continue
		}
		key := o.Package + "." + o.Name
		if seen[key] {
			errs = append(errs, fmt.Errorf("formatter %d: duplicate name %s", i, key))
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// CompileBatch validates the batch and generates every formatter.
func CompileBatch(b *Batch) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid batch: %w", err)
	}
	for _, o := range b.Resolved() {
		if err := Compile(o); err != nil {
			return fmt.Errorf("%s: %w", o.Name, err)
		}
	}
	return nil
}
