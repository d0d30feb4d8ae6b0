// Package checker verifies that getters return what their setters were given.
//
// GetterIsSetterCheck synthesizes one instance of the checked type, then
// for every getter/setter pair sets a freshly synthesized value and reads
// it back. The first pair whose getter disagrees fails the check.
package checker

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"

	"github.com/nomagicln/roundtrip/pkg/method"
	"github.com/nomagicln/roundtrip/pkg/testdata"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultSeed is the base of the seeds of the values handed to setters.
	DefaultSeed = "48107951-0256-4a84-9f8e-132ee651ae9e"

	// instanceSeed seeds the instance under test.
	instanceSeed = "test"
)

// Failure reasons.
const (
	ReasonMismatch        = "Getter return value did not match previously set value."
	ReasonInvoke          = "Failed to invoke. See exception."
	ReasonNoInstance      = "Could not synthesize an instance of the checked type."
	ReasonNoSetterValue   = "Could not synthesize a value for the setter parameter."
	ReasonUnexpectedValue = "Getter returned no value."
)

// Checker checks a type.
type Checker interface {
	Check(t reflect.Type) bool
}

// GetterIsSetterCheck checks getter/setter round trips.
type GetterIsSetterCheck struct {
	provider *testdata.Provider
	exclude  *regexp.Regexp
	seed     string
	matchers []method.Matcher
	sink     Sink
	log      logrus.FieldLogger

	errs []error
}

// Option configures a GetterIsSetterCheck.
type Option func(*GetterIsSetterCheck)

// WithProvider sets the provider values are synthesized with.
func WithProvider(p *testdata.Provider) Option {
	return func(c *GetterIsSetterCheck) {
		c.provider = p
	}
}

// WithExclusion skips pairs whose getter and setter names both fully match pattern.
func WithExclusion(pattern string) Option {
	return func(c *GetterIsSetterCheck) {
		re, err := CompileExclusion(pattern)
		if err != nil {
			c.errs = append(c.errs, err)
			return
		}
		c.exclude = re
	}
}

// WithSeed sets the base seed of setter values.
func WithSeed(seed string) Option {
	return func(c *GetterIsSetterCheck) {
		c.seed = seed
	}
}

// WithMatchers replaces the matchers that find the pairs to check.
func WithMatchers(matchers ...method.Matcher) Option {
	return func(c *GetterIsSetterCheck) {
		c.matchers = matchers
	}
}

// WithSink sets where failures are reported.
func WithSink(s Sink) Option {
	return func(c *GetterIsSetterCheck) {
		c.sink = s
	}
}

// WithLogger sets the logger of the check and of its default sink.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *GetterIsSetterCheck) {
		c.log = log
	}
}

// NewGetterIsSetterCheck creates a check. Without options it uses a
// default provider, no exclusion, DefaultSeed, the default matchers and a
// sink logging to the standard logger.
func NewGetterIsSetterCheck(opts ...Option) (*GetterIsSetterCheck, error) {
	c := &GetterIsSetterCheck{
		seed:     DefaultSeed,
		matchers: method.DefaultMatchers(),
		log:      logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if err := errors.Join(c.errs...); err != nil {
		return nil, err
	}
	c.errs = nil

	if c.provider == nil {
		p, err := testdata.NewProvider(testdata.WithLogger(c.log))
		if err != nil {
			return nil, err
		}
		c.provider = p
	}
	if c.sink == nil {
		c.sink = NewLogSink(c.log)
	}

	return c, nil
}

// MustNewGetterIsSetterCheck is like NewGetterIsSetterCheck but panics on error.
func MustNewGetterIsSetterCheck(opts ...Option) *GetterIsSetterCheck {
	c, err := NewGetterIsSetterCheck(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Tuples returns the pairs Check would run for t, after exclusion.
func (c *GetterIsSetterCheck) Tuples(t reflect.Type) []method.Tuple {
	return Filter(method.MatchAll(subjectType(t), c.matchers...), c.exclude)
}

// Check runs every matched, non-excluded pair of t.
func (c *GetterIsSetterCheck) Check(t reflect.Type) bool {
	return c.CheckTuples(t, c.Tuples(t))
}

// CheckTuples runs the given pairs, in order, on one instance of t.
// Pointer-receiver setters are reached by checking through *t when t is
// not a pointer. It returns false at the first failing pair.
func (c *GetterIsSetterCheck) CheckTuples(t reflect.Type, tuples []method.Tuple) bool {
	subject := subjectType(t)

	instance, err := c.provider.Fill(subject, instanceSeed, true)
	if err != nil {
		c.sink.Report(Failure{Type: t, Reason: ReasonNoInstance, Err: err})
		return false
	}

	for i, tuple := range tuples {
		if ok := c.checkTuple(t, instance, tuple, c.seed+strconv.Itoa(i)); !ok {
			return false
		}
	}

	return true
}

func (c *GetterIsSetterCheck) checkTuple(t reflect.Type, instance reflect.Value, tuple method.Tuple, seed string) bool {
	data, err := c.provider.Fill(tuple.SetterParam(), seed, true)
	if err != nil {
		c.sink.Report(Failure{Type: t, Tuple: tuple, Reason: ReasonNoSetterValue, Err: err})
		return false
	}

	if err := method.CallSetter(instance, tuple.Setter, data); err != nil {
		c.sink.Report(Failure{Type: t, Tuple: tuple, Reason: ReasonInvoke, Err: err})
		return false
	}

	out, err := method.Call(instance, tuple.Getter)
	if err != nil {
		c.sink.Report(Failure{Type: t, Tuple: tuple, Reason: ReasonInvoke, Err: err})
		return false
	}
	if len(out) != 1 {
		c.sink.Report(Failure{Type: t, Tuple: tuple, Reason: ReasonUnexpectedValue})
		return false
	}

	if !Equal(data, out[0]) {
		c.sink.Report(Failure{Type: t, Tuple: tuple, Reason: ReasonMismatch})
		return false
	}

	return true
}

// Check runs a default GetterIsSetterCheck on T.
func Check[T any](opts ...Option) (bool, error) {
	c, err := NewGetterIsSetterCheck(opts...)
	if err != nil {
		return false, err
	}
	return c.Check(testdata.TypeOf[T]()), nil
}

// subjectType is the pointer form of t, so setters mutate the instance.
func subjectType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return t
	}
	return reflect.PointerTo(t)
}
