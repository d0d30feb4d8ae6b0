package method

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	setPrefix = "Set"
	getPrefix = "Get"
	isPrefix  = "Is"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// GetterSetterMatcher pairs SetX with GetX, or with X when no GetX exists.
type GetterSetterMatcher struct{}

// NewGetterSetterMatcher creates a new getter/setter matcher.
func NewGetterSetterMatcher() *GetterSetterMatcher {
	return &GetterSetterMatcher{}
}

// Match returns the getter/setter pairs of t ordered by setter name.
func (m *GetterSetterMatcher) Match(t reflect.Type) []Tuple {
	mt := MethodSetOf(t)
	var tuples []Tuple

	for _, setter := range Setters(t) {
		property := PropertyName(setter.Name)

		// Priority 1: conventional GetX
		if getter, ok := mt.MethodByName(getPrefix + property); ok && compatible(getter, setter) {
			tuples = append(tuples, Tuple{Getter: getter, Setter: setter})
			continue
		}

		// Priority 2: Go-style X
		if getter, ok := mt.MethodByName(property); ok && compatible(getter, setter) {
			tuples = append(tuples, Tuple{Getter: getter, Setter: setter})
		}
	}

	return tuples
}

// IsSetterMatcher pairs IsX() bool with SetX(bool).
type IsSetterMatcher struct{}

// NewIsSetterMatcher creates a new is/setter matcher.
func NewIsSetterMatcher() *IsSetterMatcher {
	return &IsSetterMatcher{}
}

// Match returns the boolean is/setter pairs of t ordered by setter name.
func (m *IsSetterMatcher) Match(t reflect.Type) []Tuple {
	mt := MethodSetOf(t)
	var tuples []Tuple

	for _, setter := range Setters(t) {
		getter, ok := mt.MethodByName(isPrefix + PropertyName(setter.Name))
		if !ok || !isGetter(getter) || getter.Type.Out(0).Kind() != reflect.Bool {
			continue
		}
		if compatible(getter, setter) {
			tuples = append(tuples, Tuple{Getter: getter, Setter: setter})
		}
	}

	return tuples
}

// Setters returns the setter methods of t: SetX with exactly one
// argument and either no result or a single error result.
func Setters(t reflect.Type) []reflect.Method {
	return filterMethods(MethodSetOf(t), isSetter)
}

// Getters returns the no-argument, single-result methods of t.
func Getters(t reflect.Type) []reflect.Method {
	return filterMethods(MethodSetOf(t), isGetter)
}

// MethodSetOf returns the type whose method set holds t's pointer-receiver
// methods: t itself for pointers and interfaces, *t otherwise.
func MethodSetOf(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return t
	default:
		return reflect.PointerTo(t)
	}
}

// PropertyName strips the Set/Get/Is prefix from a method name.
func PropertyName(name string) string {
	for _, prefix := range []string{setPrefix, getPrefix, isPrefix} {
		if hasAccessorPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

func filterMethods(t reflect.Type, keep func(reflect.Method) bool) []reflect.Method {
	var methods []reflect.Method
	for i := 0; i < t.NumMethod(); i++ {
		if m := t.Method(i); keep(m) {
			methods = append(methods, m)
		}
	}
	return methods
}

func isSetter(m reflect.Method) bool {
	if !hasAccessorPrefix(m.Name, setPrefix) || m.Type.IsVariadic() {
		return false
	}
	if m.Type.NumIn()-receiverOffset(m) != 1 {
		return false
	}
	switch m.Type.NumOut() {
	case 0:
		return true
	case 1:
		return m.Type.Out(0) == errorType
	default:
		return false
	}
}

func isGetter(m reflect.Method) bool {
	return m.Type.NumIn()-receiverOffset(m) == 0 && m.Type.NumOut() == 1
}

// compatible reports whether the setter's argument can be handed back by the getter.
func compatible(getter, setter reflect.Method) bool {
	if !isGetter(getter) {
		return false
	}
	param := setter.Type.In(receiverOffset(setter))
	return param.AssignableTo(getter.Type.Out(0))
}

// hasAccessorPrefix reports whether name is prefix followed by an upper-case letter.
func hasAccessorPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return unicode.IsUpper(r)
}
