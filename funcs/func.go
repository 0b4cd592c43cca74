package funcs

import (
	"fmt"
	"reflect"
)

// Func is a dynamically typed callable. Missing arguments read as nil.
type Func func(args ...any) any

// Wrapper is the preferred shape for the wrapper passed to [Wrap]: it
// receives the wrapped callable followed by the call's arguments.
type Wrapper func(original Func, args ...any) any

// AsFunc adapts v to a [Func].
//
// Func, func(...any) any and the common fixed-arity shapes over any are
// adapted directly. Any other non-nil Go func is called through reflection:
// missing arguments are zero-filled, surplus ones dropped, numeric arguments
// converted to the parameter type, and only the first result is returned.
//
// A nil or non-func v yields [ErrInvalidArgument].
func AsFunc(v any) (Func, error) {
	switch f := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil is not callable", ErrInvalidArgument)
	case Func:
		if f != nil {
			return f, nil
		}
	case func(...any) any:
		if f != nil {
			return f, nil
		}
	case func() any:
		if f != nil {
			return func(...any) any { return f() }, nil
		}
	case func():
		if f != nil {
			return func(...any) any { f(); return nil }, nil
		}
	case func(any) any:
		if f != nil {
			return func(args ...any) any { return f(arg(args, 0)) }, nil
		}
	case func(any) bool:
		if f != nil {
			return func(args ...any) any { return f(arg(args, 0)) }, nil
		}
	case func(any):
		if f != nil {
			return func(args ...any) any { f(arg(args, 0)); return nil }, nil
		}
	case func(any, any) any:
		if f != nil {
			return func(args ...any) any { return f(arg(args, 0), arg(args, 1)) }, nil
		}
	case func(any, any) bool:
		if f != nil {
			return func(args ...any) any { return f(arg(args, 0), arg(args, 1)) }, nil
		}
	case func(any, any):
		if f != nil {
			return func(args ...any) any { f(arg(args, 0), arg(args, 1)); return nil }, nil
		}
	default:
		return reflectFunc(v)
	}
	return nil, fmt.Errorf("%w: nil %T is not callable", ErrInvalidArgument, v)
}

// MustFunc is like [AsFunc] but panics on error. It is meant for package
// level initialisation with literals known to be callable.
func MustFunc(v any) Func {
	f, err := AsFunc(v)
	if err != nil {
		panic(err)
	}
	return f
}

// IsCallable reports whether [AsFunc] would accept v.
func IsCallable(v any) bool {
	_, err := AsFunc(v)
	return err == nil
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func reflectFunc(v any) (Func, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not callable", ErrInvalidArgument, v)
	}
	if rv.IsNil() {
		return nil, fmt.Errorf("%w: nil %T is not callable", ErrInvalidArgument, v)
	}
	rt := rv.Type()

	return func(args ...any) any {
		numIn := rt.NumIn()
		fixed := numIn
		if rt.IsVariadic() {
			fixed--
		}

		in := make([]reflect.Value, 0, max(numIn, len(args)))
		for i := 0; i < fixed; i++ {
			in = append(in, convertArg(arg(args, i), rt.In(i)))
		}
		if rt.IsVariadic() {
			elem := rt.In(numIn - 1).Elem()
			for i := fixed; i < len(args); i++ {
				in = append(in, convertArg(args[i], elem))
			}
		}

		out := rv.Call(in)
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}, nil
}

// convertArg turns a into a value assignable to t. It panics with an error
// wrapping ErrInvalidArgument when that is impossible.
func convertArg(a any, t reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		return v.Convert(t)
	}
	panic(fmt.Errorf("%w: cannot use %T as %s", ErrInvalidArgument, a, t))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
