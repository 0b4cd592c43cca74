package collections

import (
	"slices"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-underscore/arr"
)

// Keys returns the keys of m in ascending order.
func Keys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns the values of m ordered by their keys.
func Values[K constraints.Ordered, V any](m map[K]V) []V {
	keys := Keys(m)
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// EachEntry calls fn(value, key) for every entry of m in ascending key order.
func EachEntry[K constraints.Ordered, V any](m map[K]V, fn func(V, K)) {
	for _, k := range Keys(m) {
		fn(m[k], k)
	}
}

// MapValues returns a new map with the same keys as m, holding fn(value, key).
func MapValues[K constraints.Ordered, V, U any](m map[K]V, fn func(V, K) U) map[K]U {
	return lo.MapValues(m, fn)
}

// MapEntries maps every entry of m to a slice element, in ascending key order.
func MapEntries[K constraints.Ordered, V, U any](m map[K]V, fn func(V, K) U) []U {
	keys := Keys(m)
	out := make([]U, len(keys))
	for i, k := range keys {
		out[i] = fn(m[k], k)
	}
	return out
}

// ReduceEntries folds the entries of m in ascending key order.
func ReduceEntries[K constraints.Ordered, V, U any](m map[K]V, fn func(acc U, value V, key K) U, initial U) U {
	acc := initial
	for _, k := range Keys(m) {
		acc = fn(acc, m[k], k)
	}
	return acc
}

// DetectEntry returns the value of the first entry, by ascending key, for
// which pred(value, key) is true.
func DetectEntry[K constraints.Ordered, V any](m map[K]V, pred func(V, K) bool) fn.Option[V] {
	for _, k := range Keys(m) {
		if pred(m[k], k) {
			return fn.Some(m[k])
		}
	}
	return fn.None[V]()
}

// SelectEntries returns the entries of m for which pred(value, key) is true.
// Keys are preserved.
func SelectEntries[K constraints.Ordered, V any](m map[K]V, pred func(V, K) bool) map[K]V {
	return lo.PickBy(m, func(k K, v V) bool { return pred(v, k) })
}

// RejectEntries returns the entries of m for which pred(value, key) is false.
func RejectEntries[K constraints.Ordered, V any](m map[K]V, pred func(V, K) bool) map[K]V {
	return lo.OmitBy(m, func(k K, v V) bool { return pred(v, k) })
}

// AllEntries reports whether pred holds for every entry of m.
func AllEntries[K constraints.Ordered, V any](m map[K]V, pred func(V, K) bool) bool {
	for _, k := range Keys(m) {
		if !pred(m[k], k) {
			return false
		}
	}
	return true
}

// AnyEntries reports whether pred holds for at least one entry of m.
func AnyEntries[K constraints.Ordered, V any](m map[K]V, pred func(V, K) bool) bool {
	return DetectEntry(m, pred).IsSome()
}

// IncludesValue reports whether value is one of the values of m, compared
// with [arr.Same].
func IncludesValue[K comparable, V any](m map[K]V, value V) bool {
	return lo.SomeBy(lo.Values(m), func(v V) bool { return arr.Same(v, value) })
}
