// Package proptest provides gopter parameters and generators shared by the
// property tests of the synthesizer and the checker.
package proptest

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the parameters of cheap properties, such as
// those over a single generator call.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	return params
}

// FastTestParameters returns parameters for properties that synthesize
// whole object graphs per run.
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// PreferComplex generates both constructor preferences.
func PreferComplex() gopter.Gen {
	return gen.Bool()
}

// ItemCount generates container sizes from 0 to max.
func ItemCount(max int) gopter.Gen {
	return gen.IntRange(0, max)
}
