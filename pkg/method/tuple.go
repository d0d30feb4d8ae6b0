// Package method discovers getter/setter method pairs on Go types.
//
// A pair couples a setter (SetX) with the getter that exposes the same
// property (GetX, X or IsX). Pairs are taken from the method set of the
// pointer form of a type, so pointer-receiver setters are included.
package method

import (
	"fmt"
	"reflect"
)

// Tuple is a getter/setter pair on the same type.
type Tuple struct {
	Getter reflect.Method
	Setter reflect.Method
}

// String renders the pair as "Getter/Setter".
func (t Tuple) String() string {
	return fmt.Sprintf("%s/%s", t.Getter.Name, t.Setter.Name)
}

// SetterParam returns the type of the setter's only argument.
func (t Tuple) SetterParam() reflect.Type {
	return t.Setter.Type.In(receiverOffset(t.Setter))
}

// GetterResult returns the type of the getter's only result.
func (t Tuple) GetterResult() reflect.Type {
	return t.Getter.Type.Out(0)
}

// Matcher produces the method pairs of a type in a stable order.
type Matcher interface {
	Match(t reflect.Type) []Tuple
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(t reflect.Type) []Tuple

// Match calls f(t).
func (f MatcherFunc) Match(t reflect.Type) []Tuple {
	return f(t)
}

// DefaultMatchers returns the getter/setter matcher followed by the
// boolean is/setter matcher.
func DefaultMatchers() []Matcher {
	return []Matcher{NewGetterSetterMatcher(), NewIsSetterMatcher()}
}

// MatchAll concatenates the pairs of every matcher, in matcher order.
func MatchAll(t reflect.Type, matchers ...Matcher) []Tuple {
	var tuples []Tuple
	for _, m := range matchers {
		tuples = append(tuples, m.Match(t)...)
	}
	return tuples
}

// receiverOffset is 1 for methods obtained from a concrete type, whose
// func type carries the receiver as first argument, and 0 for interface
// methods.
func receiverOffset(m reflect.Method) int {
	if m.Func.IsValid() {
		return 1
	}
	return 0
}
