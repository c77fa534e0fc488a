// Package codegen provides code generation helpers and constants.
package codegen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuntimePackage is the import path generated formatters call into.
const RuntimePackage = "github.com/KromDaniel/composite/pkg/composite"

// Variable names used in generated code
const (
	ArgsName     = "args"
	BuilderName  = "b"
	RenderedName = "s"
	CasesName    = "cases"
)

// TemplateConstName returns the name of the constant holding the source
// template of a generated formatter. It is exported iff name is.
func TemplateConstName(name string) string {
	return name + "Template"
}

// TestFuncName returns the name of a generated test or benchmark.
func TestFuncName(prefix, name string) string {
	return prefix + UpperFirst(name)
}

// IsIdentifier reports whether s is a valid, non-keyword Go identifier.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}

// reserved lists identifiers the generated files declare or import.
var reserved = map[string]bool{
	ArgsName: true, BuilderName: true, RenderedName: true, CasesName: true,
	"i": true, "t": true, "got": true, "want": true, "err": true, "wantErr": true,
	"strings": true, "testing": true, "composite": true,
}

// IsReserved reports whether name would clash with an identifier used
// inside generated code.
func IsReserved(name string) bool {
	return reserved[name]
}

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	return token.IsExported(name)
}

// LowerFirst converts the first rune of a string to lowercase.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst converts the first rune of a string to uppercase.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(f(r)) + s[size:]
}

// TestFileName derives the _test.go path for a generated file.
func TestFileName(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}
