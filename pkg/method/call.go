package method

import (
	"fmt"
	"reflect"
)

// InvocationError wraps a panic raised by, or an error returned from, a
// call into user code.
type InvocationError struct {
	Method string
	Err    error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to invoke %s: %v", e.Method, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Invoke calls fn with args, converting a panic into an InvocationError.
// When fn returns more than one value and the last is a non-nil error, that
// error is returned wrapped; the error result is dropped either way.
// Variadic functions receive their last argument as a slice.
func Invoke(fn reflect.Value, name string, args ...reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &InvocationError{Method: name, Err: panicError(r)}
		}
	}()

	if fn.Type().IsVariadic() {
		out = fn.CallSlice(args)
	} else {
		out = fn.Call(args)
	}

	if n := len(out); n > 1 && fn.Type().Out(n-1) == errorType {
		if callErr, _ := out[n-1].Interface().(error); callErr != nil {
			return nil, &InvocationError{Method: name, Err: callErr}
		}
		out = out[:n-1]
	}

	return out, nil
}

// Call invokes the method m on recv.
func Call(recv reflect.Value, m reflect.Method, args ...reflect.Value) ([]reflect.Value, error) {
	fn := recv.MethodByName(m.Name)
	if !fn.IsValid() {
		return nil, &InvocationError{
			Method: m.Name,
			Err:    fmt.Errorf("method not found on %s", recv.Type()),
		}
	}
	return Invoke(fn, recv.Type().String()+"."+m.Name, args...)
}

// CallSetter invokes the setter m on recv with v. A non-nil error returned
// by the setter is reported as an InvocationError.
func CallSetter(recv reflect.Value, m reflect.Method, v reflect.Value) error {
	out, err := Call(recv, m, v)
	if err != nil {
		return err
	}
	if len(out) == 1 && out[0].Type() == errorType && !out[0].IsNil() {
		return &InvocationError{Method: recv.Type().String() + "." + m.Name, Err: out[0].Interface().(error)}
	}
	return nil
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
