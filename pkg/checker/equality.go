package checker

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// Equal reports whether got holds the value that was set. want is first
// assigned to got's type so interface results compare their dynamic
// values. A type's Equal method is used when it has one.
func Equal(want, got reflect.Value) (equal bool) {
	if !want.IsValid() || !got.IsValid() {
		return want.IsValid() == got.IsValid()
	}

	if want.Type() != got.Type() && want.Type().AssignableTo(got.Type()) {
		v := reflect.New(got.Type()).Elem()
		v.Set(want)
		want = v
	}

	defer func() {
		if r := recover(); r != nil {
			equal = reflect.DeepEqual(want.Interface(), got.Interface())
		}
	}()

	return cmp.Equal(want.Interface(), got.Interface(), equalOptions...)
}
