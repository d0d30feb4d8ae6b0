// Package codegen generates getter/setter round-trip tests for Go packages.
// It scans a package for types with setters and the constructors that
// build them, then renders a _test.go file in one of several test styles
// (plain testing, testify).
package codegen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nomagicln/roundtrip/pkg/checker"
	"github.com/nomagicln/roundtrip/pkg/testdata"
)

// OutputFormat represents the style of the generated test file.
type OutputFormat string

const (
	// FormatTesting asserts with t.Error from the testing package.
	FormatTesting OutputFormat = "testing"
	// FormatTestify asserts with testify's assert.True.
	FormatTestify OutputFormat = "testify"
)

// ErrUnsupportedFormat is returned by NewGenerator for an unregistered format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultOutput is the default name of the generated file.
const DefaultOutput = "zz_roundtrip_test.go"

// Options contains configuration for code generation.
type Options struct {
	// Seed is passed to the generated check when it differs from
	// checker.DefaultSeed.
	Seed string

	// Exclude is the exclusion pattern of the generated check.
	Exclude string

	// ItemCount is passed to the generated provider when it is positive
	// and differs from testdata.DefaultItemCount.
	ItemCount int

	// Elements is passed to the generated provider when it is a valid
	// mode other than testdata.ElementsSynthesized.
	Elements testdata.ElementMode

	// NoImplicitConstructors disables implicit struct constructors in the
	// generated provider.
	NoImplicitConstructors bool
}

// Generator renders the test file of a scanned package.
type Generator interface {
	// Generate produces Go source for pkg.
	Generate(pkg *Package) ([]byte, error)
}

// GeneratorFactory is a function type that creates a new Generator instance.
type GeneratorFactory func(opts Options) Generator

// registry maps output formats to their corresponding generator factories.
var registry = make(map[OutputFormat]GeneratorFactory)

// init registers all built-in code generators.
func init() {
	register(FormatTesting, func(opts Options) Generator {
		return NewTestingGenerator(opts)
	})
	register(FormatTestify, func(opts Options) Generator {
		return NewTestifyGenerator(opts)
	})
}

// register registers a new code generator factory for the specified format.
func register(format OutputFormat, factory GeneratorFactory) {
	if factory == nil {
		panic(fmt.Sprintf("generator factory for format %s cannot be nil", format))
	}
	registry[format] = factory
}

// NewGenerator creates a new code generator for the specified format.
func NewGenerator(format OutputFormat, opts Options) (Generator, error) {
	factory, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return factory(opts), nil
}

// ValidateFormat checks if the given format is valid.
func ValidateFormat(format string) bool {
	_, ok := registry[OutputFormat(format)]
	return ok
}

// ListFormats returns all registered output formats, sorted.
func ListFormats() []string {
	formats := make([]string, 0, len(registry))
	for format := range registry {
		formats = append(formats, string(format))
	}
	sort.Strings(formats)
	return formats
}

// seedOption reports whether the generated check needs an explicit seed.
func (o Options) seedOption() bool {
	return o.Seed != "" && o.Seed != checker.DefaultSeed
}

// itemCountOption reports whether the generated provider needs an explicit item count.
func (o Options) itemCountOption() bool {
	return o.ItemCount > 0 && o.ItemCount != testdata.DefaultItemCount
}

// elementModeOption reports whether the generated provider needs an explicit element mode.
func (o Options) elementModeOption() bool {
	return o.Elements.Valid() && o.Elements != testdata.ElementsSynthesized
}
