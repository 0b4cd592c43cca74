package collections

import (
	"iter"
	"reflect"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/samber/lo"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/funcs"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item. A nil or empty slice results in
// zero calls.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Tap calls fn(v) for its side effects and returns v unchanged. It is handy
// for inspecting intermediate values in a pipeline.
func Tap[T any](v T, fn func(T)) T {
	if fn != nil {
		fn(v)
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new slice of the same length holding fn(item, index) for
// every item.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	return lo.Map(items, fn)
}

// Reduce folds items from left to right, starting from initial.
//
//	sum := collections.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](items []T, fn func(acc U, item T) U, initial U) U {
	return lo.Reduce(items, func(acc U, item T, _ int) U { return fn(acc, item) }, initial)
}

// ReduceFirst folds items from left to right, seeding the accumulator with
// the first item. An empty slice yields None.
func ReduceFirst[T any](items []T, f func(acc, item T) T) fn.Option[T] {
	if len(items) == 0 {
		return fn.None[T]()
	}
	return fn.Some(Reduce(items[1:], f, items[0]))
}

// Pluck extracts a value of type U from each item.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return lo.Map(items, func(item T, _ int) U { return fn(item) })
}

// PluckPath reads the property at the dot-separated path from each item.
// Items may be map[string]any (see [arr.Get]), structs, pointers to structs
// or maps with string keys; struct fields must be exported. A missing
// property yields nil at that position.
func PluckPath(items []any, path string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i], _ = property(item, path)
	}
	return out
}

func property(v any, path string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		return arr.Get(m, path)
	}
	for _, seg := range strings.Split(path, ".") {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		}

		var next reflect.Value
		switch rv.Kind() {
		case reflect.Struct:
			next = rv.FieldByName(seg)
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			next = rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		}
		if !next.IsValid() || !next.CanInterface() {
			return nil, false
		}
		v = next.Interface()
	}
	return v, true
}

// Invoke calls the exported method named method on every item that has
// one, passing args. Items without the method are skipped. The items are
// returned unchanged so the call can sit inside a pipeline.
//
// The method is called through [funcs.AsFunc]; arguments that cannot be
// passed to it cause a panic wrapping [funcs.ErrInvalidArgument].
func Invoke[T any](items []T, method string, args ...any) []T {
	for _, item := range items {
		rv := reflect.ValueOf(any(item))
		if !rv.IsValid() {
			continue
		}
		m := rv.MethodByName(method)
		if !m.IsValid() {
			continue
		}
		call, err := funcs.AsFunc(m.Interface())
		if err != nil {
			continue
		}
		call(args...)
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Detect returns the first item for which pred(item, index) is true. It
// stops at the first match and returns None when nothing matches.
func Detect[T any](items []T, pred func(T, int) bool) fn.Option[T] {
	for i, item := range items {
		if pred(item, i) {
			return fn.Some(item)
		}
	}
	return fn.None[T]()
}

// Select returns the items for which pred(item, index) is true.
func Select[T any](items []T, pred func(T, int) bool) []T {
	return lo.Filter(items, pred)
}

// Reject returns the items for which pred(item, index) is false.
// It is the complement of [Select].
func Reject[T any](items []T, pred func(T, int) bool) []T {
	return lo.Reject(items, pred)
}

// Partition returns [Select] and [Reject] of items in one pass.
func Partition[T any](items []T, pred func(T, int) bool) (selected, rejected []T) {
	return lo.FilterReject(items, pred)
}

// All reports whether pred holds for every item. It is true for an empty
// slice and stops at the first failure.
func All[T any](items []T, pred func(T, int) bool) bool {
	for i, item := range items {
		if !pred(item, i) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one item.
func Any[T any](items []T, pred func(T, int) bool) bool {
	return Detect(items, pred).IsSome()
}

// Includes reports whether items contains value, compared with [arr.Same].
func Includes[T any](items []T, value T) bool {
	return arr.IndexOf(items, value) >= 0
}

// Size returns the number of entries in v: the length of a slice, array,
// map, string or channel, and the number of values an iter.Seq yields.
// nil counts as 0 and any other value as 1.
func Size(v any) int {
	switch s := v.(type) {
	case nil:
		return 0
	case iter.Seq[any]:
		n := 0
		for range s {
			n++
		}
		return n
	case iter.Seq2[any, any]:
		n := 0
		for range s {
			n++
		}
		return n
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len()
	}
	return 1
}
