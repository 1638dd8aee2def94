package emitter

import (
	"io"

	"github.com/dave/jennifer/jen"

	"builtins/internal/domain"
)

// GoEmitter writes the manifest as a Go source file holding a table of
// every builtin function.
type GoEmitter struct {
	PackageName string
}

func NewGoEmitter(packageName string) *GoEmitter {
	if packageName == "" {
		packageName = "builtins"
	}
	return &GoEmitter{PackageName: packageName}
}

func (e *GoEmitter) Format() string { return "go" }

func (e *GoEmitter) Emit(w io.Writer, m domain.Manifest) error {
	file := jen.NewFile(e.PackageName)

	for _, c := range m.Copyrights {
		file.HeaderComment("Copyright (C) " + c)
	}
	file.HeaderComment("Code generated by builtins; DO NOT EDIT.")

	file.Const().Defs(
		jen.Id("Framework").Op("=").Lit(m.Framework),
		jen.Id("Namespace").Op("=").Lit(m.Namespace),
		jen.Id("MacroPrefix").Op("=").Lit(m.MacroPrefix),
	)

	file.Comment("Builtin describes one function declared in a builtins source file.")
	file.Type().Id("Builtin").Struct(
		jen.Id("Object").String(),
		jen.Id("Name").String(),
		jen.Id("Parameters").Index().String(),
		jen.Id("Constructor").Bool(),
		jen.Id("Source").String(),
	)

	file.Comment("Builtins lists every builtin function, sorted by name.")
	file.Var().Id("Builtins").Op("=").Index().Id("Builtin").ValuesFunc(func(g *jen.Group) {
		for _, fn := range m.Functions {
			g.Values(jen.Dict{
				jen.Id("Object"):      jen.Lit(fn.ObjectName),
				jen.Id("Name"):        jen.Lit(fn.Name),
				jen.Id("Parameters"):  parameterList(fn.Parameters),
				jen.Id("Constructor"): jen.Lit(fn.IsConstructor),
				jen.Id("Source"):      jen.Lit(fn.Source),
			})
		}
	})

	return file.Render(w)
}

func parameterList(params []string) *jen.Statement {
	return jen.Index().String().ValuesFunc(func(g *jen.Group) {
		for _, p := range params {
			g.Lit(p)
		}
	})
}
