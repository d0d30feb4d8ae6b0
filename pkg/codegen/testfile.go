package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/nomagicln/roundtrip/pkg/testdata"
)

const (
	checkerPath  = "github.com/nomagicln/roundtrip/pkg/checker"
	testdataPath = "github.com/nomagicln/roundtrip/pkg/testdata"
	testifyPath  = "github.com/stretchr/testify/assert"
)

// assertFunc renders the statement failing t when ok is false.
type assertFunc func(typeName string, ok jen.Code) jen.Code

// testFile renders one TestRoundTrip function with a subtest per type.
type testFile struct {
	opts   Options
	assert assertFunc
}

func (f *testFile) render(pkg *Package) ([]byte, error) {
	if pkg == nil || pkg.Name == "" {
		return nil, fmt.Errorf("cannot generate tests: no package")
	}
	if len(pkg.Types) == 0 {
		return nil, fmt.Errorf("cannot generate tests: package %s has no types with setters", pkg.Name)
	}

	file := jen.NewFile(pkg.Name)
	file.HeaderComment("Code generated by roundtrip gen. DO NOT EDIT.")

	file.Func().Id("TestRoundTrip").Params(jen.Id("t").Op("*").Qual("testing", "T")).BlockFunc(func(g *jen.Group) {
		var ctors []jen.Code
		for _, name := range pkg.Constructors() {
			ctors = append(ctors, jen.Id(name))
		}
		var providerOpts []jen.Code
		if len(ctors) > 0 {
			providerOpts = append(providerOpts, jen.Qual(testdataPath, "WithConstructors").Call(ctors...))
		}
		if f.opts.itemCountOption() {
			providerOpts = append(providerOpts, jen.Qual(testdataPath, "WithItemCount").Call(jen.Lit(f.opts.ItemCount)))
		}
		if f.opts.elementModeOption() {
			providerOpts = append(providerOpts, jen.Qual(testdataPath, "WithElementMode").Call(elementModeCode(f.opts.Elements)))
		}
		if f.opts.NoImplicitConstructors {
			providerOpts = append(providerOpts, jen.Qual(testdataPath, "WithoutImplicitConstructors").Call())
		}
		g.Id("provider").Op(":=").Qual(testdataPath, "MustNewProvider").Call(providerOpts...)

		checkOpts := []jen.Code{jen.Qual(checkerPath, "WithProvider").Call(jen.Id("provider"))}
		if f.opts.seedOption() {
			checkOpts = append(checkOpts, jen.Qual(checkerPath, "WithSeed").Call(jen.Lit(f.opts.Seed)))
		}
		if f.opts.Exclude != "" {
			checkOpts = append(checkOpts, jen.Qual(checkerPath, "WithExclusion").Call(jen.Lit(f.opts.Exclude)))
		}
		g.Id("check").Op(":=").Qual(checkerPath, "MustNewGetterIsSetterCheck").Call(checkOpts...)
		g.Line()

		for _, typ := range pkg.Types {
			ok := jen.Id("check").Dot("Check").Call(
				jen.Qual("reflect", "TypeOf").Call(jen.Parens(jen.Op("*").Id(typ.Name)).Call(jen.Nil())),
			)
			g.Id("t").Dot("Run").Call(
				jen.Lit(typ.Name),
				jen.Func().Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(f.assert(typ.Name, ok)),
			)
		}
	})

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render tests for package %s: %w", pkg.Name, err)
	}
	return buf.Bytes(), nil
}

// elementModeCode refers to the named testdata constant of m.
func elementModeCode(m testdata.ElementMode) jen.Code {
	if m == testdata.ElementsZero {
		return jen.Qual(testdataPath, "ElementsZero")
	}
	return jen.Qual(testdataPath, "ElementMode").Call(jen.Lit(string(m)))
}

// TestingGenerator renders tests using only the testing package.
type TestingGenerator struct {
	file testFile
}

// NewTestingGenerator creates a new testing-style generator.
func NewTestingGenerator(opts Options) *TestingGenerator {
	return &TestingGenerator{file: testFile{opts: opts, assert: testingAssert}}
}

// Generate produces the test file of pkg.
func (g *TestingGenerator) Generate(pkg *Package) ([]byte, error) {
	return g.file.render(pkg)
}

func testingAssert(typeName string, ok jen.Code) jen.Code {
	return jen.If(jen.Op("!").Add(ok)).Block(
		jen.Id("t").Dot("Error").Call(jen.Lit("getter/setter round trip failed for "+typeName)),
	)
}

// TestifyGenerator renders tests asserting with testify.
type TestifyGenerator struct {
	file testFile
}

// NewTestifyGenerator creates a new testify-style generator.
func NewTestifyGenerator(opts Options) *TestifyGenerator {
	return &TestifyGenerator{file: testFile{opts: opts, assert: testifyAssert}}
}

// Generate produces the test file of pkg.
func (g *TestifyGenerator) Generate(pkg *Package) ([]byte, error) {
	return g.file.render(pkg)
}

func testifyAssert(typeName string, ok jen.Code) jen.Code {
	return jen.Qual(testifyPath, "True").Call(
		jen.Id("t"),
		ok,
		jen.Lit("getter/setter round trip failed for "+typeName),
	)
}
