package compiler

import (
	"fmt"

	"github.com/KromDaniel/composite/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// generateTestFile writes <output>_test.go checking the generated function
// against the runtime formatter for every configured argument row.
func (c *Compiler) generateTestFile() error {
	path := codegen.TestFileName(c.config.OutputFile)

	f := c.testFile()
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	return formatFile(path)
}

func (c *Compiler) testFile() *jen.File {
	rows := c.config.TestArgs
	if len(rows) == 0 {
		rows = [][]string{{}}
	}

	f := jen.NewFile(c.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by composite for template: %q", c.config.Template))
	f.HeaderComment("DO NOT EDIT.")

	argRows := make([]jen.Code, 0, len(rows))
	for _, row := range rows {
		vals := make([]jen.Code, 0, len(row))
		for _, v := range row {
			vals = append(vals, jen.Lit(v))
		}
		argRows = append(argRows, jen.Values(vals...))
	}

	name := c.config.Name
	tmplConst := jen.Id(codegen.TemplateConstName(name))

	f.Func().Id(codegen.TestFuncName("Test", name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id(codegen.CasesName).Op(":=").Index().Index().Id("any").Values(argRows...),
		jen.Line(),
		jen.For(jen.List(jen.Id("i"), jen.Id(codegen.ArgsName)).Op(":=").Range().Id(codegen.CasesName)).Block(
			jen.List(jen.Id("want"), jen.Id("wantErr")).Op(":=").Qual(codegen.RuntimePackage, "Format").Call(
				tmplConst.Clone(), jen.Id(codegen.ArgsName).Op("..."),
			),
			jen.List(jen.Id("got"), jen.Id("err")).Op(":=").Id(name).Call(jen.Id(codegen.ArgsName).Op("...")),
			jen.If(jen.Parens(jen.Id("err").Op("!=").Nil()).Op("!=").Parens(jen.Id("wantErr").Op("!=").Nil())).Block(
				jen.Id("t").Dot("Fatalf").Call(jen.Lit("case %d: err = %v, want %v"), jen.Id("i"), jen.Id("err"), jen.Id("wantErr")),
			),
			jen.If(jen.Id("got").Op("!=").Id("want")).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("case %d: got %q, want %q"), jen.Id("i"), jen.Id("got"), jen.Id("want")),
			),
		),
	)
	f.Line()

	benchArgs := codegen.LowerFirst(name) + "Args"
	f.Func().Id(codegen.TestFuncName("Benchmark", name)).Params(jen.Id("b").Op("*").Qual("testing", "B")).Block(
		jen.Id(benchArgs).Op(":=").Index().Id("any").Add(argRows[0]),
		jen.Id("b").Dot("ReportAllocs").Call(),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
			jen.List(jen.Id("_"), jen.Id("_")).Op("=").Id(name).Call(jen.Id(benchArgs).Op("...")),
		),
	)

	return f
}
