// Package testdata synthesizes deterministic values of arbitrary Go types
// from their reflect.Type and a seed string.
//
// Values come from a generator table for well-known types, from small
// container instances for slices, arrays, sets, lists and maps, and from
// constructors for everything else. Equal seeds always yield equal values.
// When a value cannot be produced the result is an *UnavailableError, never
// a partially initialized value.
package testdata

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

// DefaultItemCount is the number of elements put into synthesized slices,
// lists and sets.
const DefaultItemCount = 2

// ElementMode selects what goes into synthesized containers.
type ElementMode string

const (
	// ElementsSynthesized fills containers with synthesized elements.
	ElementsSynthesized ElementMode = "synthesized"

	// ElementsZero fills containers with the element type's zero value.
	ElementsZero ElementMode = "zero"
)

// Valid reports whether m is a known element mode.
func (m ElementMode) Valid() bool {
	return m == ElementsSynthesized || m == ElementsZero
}

// Provider synthesizes values. It is immutable once built and safe for
// concurrent use.
type Provider struct {
	generators Generators
	registry   *Registry
	bindings   map[reflect.Type]reflect.Type
	itemCount  int
	elements   ElementMode
	implicit   bool
	log        logrus.FieldLogger

	overrides Generators
	errs      []error
}

// Option configures a Provider.
type Option func(*Provider)

// WithGenerators overrides the generators of every type in g.
func WithGenerators(g Generators) Option {
	return func(p *Provider) {
		for t, fn := range g {
			p.overrides[t] = fn
		}
	}
}

// WithGenerator overrides the generator of a single type.
func WithGenerator(t reflect.Type, fn GeneratorFunc) Option {
	return func(p *Provider) {
		p.overrides[t] = fn
	}
}

// WithConstructors registers constructor functions. See Registry.Register.
func WithConstructors(fns ...any) Option {
	return func(p *Provider) {
		for _, fn := range fns {
			if err := p.registry.Register(fn); err != nil {
				p.errs = append(p.errs, err)
			}
		}
	}
}

// WithBinding makes values of the interface type iface be synthesized as
// values of concrete.
func WithBinding(iface, concrete reflect.Type) Option {
	return func(p *Provider) {
		switch {
		case iface.Kind() != reflect.Interface:
			p.errs = append(p.errs, fmt.Errorf("binding %s: not an interface type", iface))
		case !concrete.Implements(iface):
			p.errs = append(p.errs, fmt.Errorf("binding %s: %s does not implement it", iface, concrete))
		default:
			p.bindings[iface] = concrete
		}
	}
}

// WithItemCount sets the number of elements of synthesized slices, lists and sets.
func WithItemCount(n int) Option {
	return func(p *Provider) {
		if n < 0 {
			p.errs = append(p.errs, fmt.Errorf("item count must not be negative, got %d", n))
			return
		}
		p.itemCount = n
	}
}

// WithElementMode selects how containers are filled.
func WithElementMode(m ElementMode) Option {
	return func(p *Provider) {
		if !m.Valid() {
			p.errs = append(p.errs, fmt.Errorf("unknown element mode %q", m))
			return
		}
		p.elements = m
	}
}

// WithoutImplicitConstructors disables the field-wise and zero struct
// literals offered for structs without registered constructors.
func WithoutImplicitConstructors() Option {
	return func(p *Provider) {
		p.implicit = false
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// NewProvider builds a provider from the default generator table and the
// given options.
func NewProvider(opts ...Option) (*Provider, error) {
	p := &Provider{
		registry:  NewRegistry(),
		bindings:  map[reflect.Type]reflect.Type{TypeOf[any](): TypeOf[string]()},
		itemCount: DefaultItemCount,
		elements:  ElementsSynthesized,
		implicit:  true,
		log:       logrus.StandardLogger(),
		overrides: make(Generators),
	}

	for _, opt := range opts {
		opt(p)
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("invalid provider configuration: %w", err)
	}

	p.generators = DefaultGenerators().Merge(p.overrides)
	p.overrides = nil
	p.errs = nil

	return p, nil
}

// MustNewProvider is like NewProvider but panics on a configuration error.
func MustNewProvider(opts ...Option) *Provider {
	p, err := NewProvider(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Generators returns a copy of the provider's generator table.
func (p *Provider) Generators() Generators {
	return p.generators.Merge(nil)
}

// Fill synthesizes a value of type t. preferComplex makes constructors
// with more parameters be tried first; it is meant for the instance under
// test, while dependencies are built with the simplest constructor.
func (p *Provider) Fill(t reflect.Type, seed string, preferComplex bool) (v reflect.Value, err error) {
	if t == nil {
		return reflect.Value{}, unavailable(nil, "nil type", nil)
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.WithFields(logrus.Fields{"type": t.String(), "panic": r}).Error("synthesis panicked")
			v = reflect.Value{}
			err = unavailable(t, fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	s := &synthesis{p: p, active: make(map[reflect.Type]bool)}
	return s.fill(t, seed, preferComplex)
}

// Fill synthesizes a value of type T with p.
func Fill[T any](p *Provider, seed string, preferComplex bool) (T, error) {
	var zero T
	v, err := p.Fill(TypeOf[T](), seed, preferComplex)
	if err != nil {
		return zero, err
	}
	out, _ := v.Interface().(T)
	return out, nil
}

// synthesis holds the state of one Fill call.
type synthesis struct {
	p *Provider

	// active holds the types being synthesized on the current path.
	active map[reflect.Type]bool
}

func (s *synthesis) fill(t reflect.Type, seed string, preferComplex bool) (reflect.Value, error) {
	shape := s.p.ShapeOf(t)
	if shape == ShapeWellKnown {
		return synthesizers[shape].synthesize(s, t, seed, preferComplex)
	}

	s.p.log.WithField("type", t.String()).Trace("type not in generator table, synthesizing as " + shape.String())

	if s.active[t] {
		s.p.log.WithField("type", t.String()).Debug("type already being synthesized on this path")
		return reflect.Value{}, unavailable(t, "", ErrCyclic)
	}
	s.active[t] = true
	defer delete(s.active, t)

	return synthesizers[shape].synthesize(s, t, seed, preferComplex)
}

// element synthesizes one container element according to the element mode.
func (s *synthesis) element(t reflect.Type, seed string) (reflect.Value, error) {
	if s.p.elements == ElementsZero {
		return reflect.Zero(t), nil
	}
	return s.fill(t, seed, false)
}
