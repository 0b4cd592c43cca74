package arr

import "reflect"

// Same reports whether a and b are strictly equal.
//
// Values of different dynamic types are never equal. Comparable values are
// compared with ==, so pointers match only when they point at the same
// object. Slices, maps and funcs are not comparable in Go; they match only
// when both sides share the same underlying storage.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// Truthy reports whether v counts as a "true" value.
//
// The falsy values are: nil, false, numeric zero of any kind, the empty
// string, nil pointers, interfaces, funcs and channels, and empty slices,
// arrays and maps. Everything else, including the string "0", is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
