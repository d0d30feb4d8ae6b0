package testdata

import (
	"fmt"
	"reflect"

	"github.com/nomagicln/roundtrip/pkg/method"
)

const nilFillSeed = "123"

// FillMutableWithNil synthesizes a value of t with the simplest
// constructors, then passes nil to every setter whose parameter can hold
// nil. Setters of non-nilable parameters keep their synthesized values.
// The returned value has type t.
func (p *Provider) FillMutableWithNil(t reflect.Type) (reflect.Value, error) {
	v, err := p.Fill(t, nilFillSeed, false)
	if err != nil {
		return reflect.Value{}, err
	}

	// Setters need an addressable receiver.
	recv := v
	if t.Kind() != reflect.Pointer {
		recv = reflect.New(t)
		recv.Elem().Set(v)
	}

	for _, setter := range method.Setters(recv.Type()) {
		param := setter.Type.In(1)
		if !Nilable(param) {
			continue
		}
		if err := method.CallSetter(recv, setter, reflect.Zero(param)); err != nil {
			p.log.WithField("type", t.String()).WithField("setter", setter.Name).WithError(err).Warn("could not set nil")
			return reflect.Value{}, fmt.Errorf("fill %s with nil: %w", t, err)
		}
	}

	if t.Kind() != reflect.Pointer {
		return recv.Elem(), nil
	}
	return recv, nil
}

// FillMutableWithNil is the generic form of Provider.FillMutableWithNil.
func FillMutableWithNil[T any](p *Provider) (T, error) {
	var zero T
	v, err := p.FillMutableWithNil(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	out, _ := v.Interface().(T)
	return out, nil
}

// Nilable reports whether values of t can be nil.
func Nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
