package proptest

import (
	"strconv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Seed generates synthesis seeds.
func Seed() gopter.Gen {
	return gen.AnyString()
}

// IdentifierSeed generates seeds made of identifier characters.
func IdentifierSeed() gopter.Gen {
	return gen.Identifier()
}

// SeedPair generates two seeds that differ.
func SeedPair() gopter.Gen {
	return gen.AlphaString().Map(func(s string) []string {
		return []string{s + "a", s + "b"}
	})
}

// IndexedSeeds generates a base seed followed by n seeds derived from it by
// appending the index, the way setter values are seeded.
func IndexedSeeds(n int) gopter.Gen {
	return gen.Identifier().Map(func(base string) []string {
		seeds := make([]string, n)
		for i := range seeds {
			seeds[i] = base + strconv.Itoa(i)
		}
		return seeds
	})
}

// ExclusionName generates accessor-style method names.
func ExclusionName() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("Get", "Set", "Is", ""),
		gen.Identifier(),
	).Map(func(parts []any) string {
		return parts[0].(string) + "X" + parts[1].(string)
	})
}
