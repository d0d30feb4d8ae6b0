package testdata

import (
	"errors"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// GeneratorFunc derives a value from a seed. Equal seeds must yield equal
// values and the function must not fail for any seed.
type GeneratorFunc func(seed string) any

// Generators maps a type to the generator producing its values.
type Generators map[reflect.Type]GeneratorFunc

// Lookup returns the generator registered for t.
func (g Generators) Lookup(t reflect.Type) (GeneratorFunc, bool) {
	fn, ok := g[t]
	return fn, ok && fn != nil
}

// Merge returns a copy of g with every entry of overrides replacing the
// entry of the same type.
func (g Generators) Merge(overrides Generators) Generators {
	merged := make(Generators, len(g)+len(overrides))
	for t, fn := range g {
		merged[t] = fn
	}
	for t, fn := range overrides {
		merged[t] = fn
	}
	return merged
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Hash derives the 32-bit seed hash every default generator is built on.
func Hash(seed string) int32 {
	return int32(xxhash.Sum64String(seed))
}

// DefaultGenerators returns a fresh copy of the built-in generator table.
func DefaultGenerators() Generators {
	g := Generators{
		TypeOf[bool](): func(seed string) any {
			return Hash(seed)%2 != 0
		},
		TypeOf[int8](): func(seed string) any {
			return int8(Hash(seed)%(math.MaxInt8-math.MinInt8) - math.MaxInt8)
		},
		TypeOf[int16](): func(seed string) any {
			return int16(Hash(seed)%(math.MaxInt16-math.MinInt16) - math.MaxInt16)
		},
		TypeOf[int32](): func(seed string) any {
			return Hash(seed)
		},
		TypeOf[int64](): func(seed string) any {
			return int64(Hash(seed)) << 16
		},
		TypeOf[uint16](): func(seed string) any {
			return uint16(Hash(seed))
		},
		TypeOf[uint32](): func(seed string) any {
			return uint32(Hash(seed))
		},
		TypeOf[uint64](): func(seed string) any {
			return xxhash.Sum64String(seed)
		},
		TypeOf[float32](): func(seed string) any {
			return float32(Hash(seed)) / 3
		},
		TypeOf[float64](): func(seed string) any {
			return float64(Hash(seed)) * 2 / 3
		},
		TypeOf[complex64](): func(seed string) any {
			h := float32(Hash(seed))
			return complex(h/3, h/7)
		},
		TypeOf[complex128](): func(seed string) any {
			h := float64(Hash(seed))
			return complex(h*2/3, h/7)
		},
		TypeOf[string](): generateString,
		TypeOf[time.Time](): func(seed string) any {
			return time.Unix(int64(Hash(seed)), 0).UTC()
		},
		TypeOf[error](): func(seed string) any {
			return errors.New(generateString(seed).(string))
		},
	}

	// Same conceptual type, one generator.
	g[TypeOf[int]()] = func(seed string) any { return int(g[TypeOf[int64]()](seed).(int64)) }
	g[TypeOf[uint8]()] = func(seed string) any { return uint8(Hash(seed)) }
	g[TypeOf[uint]()] = func(seed string) any { return uint(xxhash.Sum64String(seed)) }
	g[TypeOf[uintptr]()] = func(seed string) any { return uintptr(xxhash.Sum64String(seed)) }

	return g
}

// generateString renders a name-based UUID of the seed bytes.
func generateString(seed string) any {
	return uuid.NewMD5(uuid.Nil, []byte(seed)).String()
}

// kindTypes maps a basic kind to the predeclared type whose generator
// serves named types of that kind.
var kindTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       TypeOf[bool](),
	reflect.Int:        TypeOf[int](),
	reflect.Int8:       TypeOf[int8](),
	reflect.Int16:      TypeOf[int16](),
	reflect.Int32:      TypeOf[int32](),
	reflect.Int64:      TypeOf[int64](),
	reflect.Uint:       TypeOf[uint](),
	reflect.Uint8:      TypeOf[uint8](),
	reflect.Uint16:     TypeOf[uint16](),
	reflect.Uint32:     TypeOf[uint32](),
	reflect.Uint64:     TypeOf[uint64](),
	reflect.Uintptr:    TypeOf[uintptr](),
	reflect.Float32:    TypeOf[float32](),
	reflect.Float64:    TypeOf[float64](),
	reflect.Complex64:  TypeOf[complex64](),
	reflect.Complex128: TypeOf[complex128](),
	reflect.String:     TypeOf[string](),
}

// generatorFor resolves the generator for t: an exact entry first, then
// the entry of the predeclared type sharing t's basic kind.
func (g Generators) generatorFor(t reflect.Type) (GeneratorFunc, bool) {
	if fn, ok := g.Lookup(t); ok {
		return fn, true
	}
	if base, ok := kindTypes[t.Kind()]; ok {
		return g.Lookup(base)
	}
	return nil, false
}

// coerce turns a generator result into a value of exactly type t.
func coerce(out any, t reflect.Type) (reflect.Value, error) {
	if out == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(out)
	switch {
	case v.Type() == t:
		return v, nil
	case v.Type().AssignableTo(t):
		dst := reflect.New(t).Elem()
		dst.Set(v)
		return dst, nil
	case v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	default:
		return reflect.Value{}, unavailable(t, "generator returned "+v.Type().String(), nil)
	}
}
