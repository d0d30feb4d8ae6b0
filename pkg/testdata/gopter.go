package testdata

import (
	"github.com/leanovate/gopter"
)

// FromGen adapts a gopter generator into a GeneratorFunc. Every call
// clones the default generator parameters with a seed derived from the
// seed string, so equal seeds draw equal values. When the generator's
// sieve rejects the drawn value, fallback is returned instead.
//
//	testdata.WithGenerator(testdata.TypeOf[string](), testdata.FromGen(gen.Identifier(), "id"))
func FromGen(g gopter.Gen, fallback any) GeneratorFunc {
	defaults := gopter.DefaultGenParameters()
	return func(seed string) any {
		params := defaults.CloneWithSeed(int64(Hash(seed)))
		if value, ok := g(params).Retrieve(); ok {
			return value
		}
		return fallback
	}
}
