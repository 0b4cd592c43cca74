package arr

import (
	"reflect"
	"sort"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items, or None when items is empty.
func First[T any](items []T) fn.Option[T] {
	if len(items) == 0 {
		return fn.None[T]()
	}
	return fn.Some(items[0])
}

// FirstN returns a copy of the first n elements of items.
// A non-positive n yields an empty slice; n larger than len(items) yields
// the whole list.
func FirstN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return clone(items[:n])
}

// Last returns the final element of items, or None when items is empty.
func Last[T any](items []T) fn.Option[T] {
	if len(items) == 0 {
		return fn.None[T]()
	}
	return fn.Some(items[len(items)-1])
}

// Rest returns every element after the first n (default 1).
//
//	Rest([]int{1, 2, 3, 4})    // [2 3 4]
//	Rest([]int{1, 2, 3, 4}, 0) // [1 2 3 4]
func Rest[T any](items []T, n ...int) []T {
	skip := 1
	if len(n) > 0 {
		skip = n[0]
	}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	return clone(items[skip:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns a copy of items without the values [Truthy] rejects.
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Truthy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Without returns a copy of items with every occurrence of values removed.
// Elements are matched with [Same].
func Without[T any](items []T, values ...T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if IndexOf(values, item) < 0 {
			out = append(out, item)
		}
	}
	return out
}

// Uniq returns items with duplicates removed, keeping first occurrences.
//
// Pass sorted=true when items is already sorted: only adjacent elements are
// then compared, in a single linear pass.
func Uniq[T any](items []T, sorted ...bool) []T {
	out := make([]T, 0, len(items))
	if len(sorted) > 0 && sorted[0] {
		for i, item := range items {
			if i == 0 || !Same(item, items[i-1]) {
				out = append(out, item)
			}
		}
		return out
	}

	seen := make(map[any]struct{}, len(items))
	for _, item := range items {
		key := any(item)
		if hashable(key) {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		} else if IndexOf(out, item) >= 0 {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Intersect returns the elements of list that are present in every one of
// others. Order and multiplicity follow list.
func Intersect[T any](list []T, others ...[]T) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		keep := true
		for _, other := range others {
			if IndexOf(other, item) < 0 {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the position of the first element matching value, or -1.
// A nil slice yields -1.
func IndexOf[T any](items []T, value T) int {
	for i, item := range items {
		if Same(item, value) {
			return i
		}
	}
	return -1
}

// Max returns the element with the largest key. On ties the first one wins.
func Max[T any, K constraints.Ordered](items []T, key func(T) K) fn.Option[T] {
	if len(items) == 0 {
		return fn.None[T]()
	}
	maxItem, maxVal := items[0], key(items[0])
	for _, item := range items[1:] {
		if v := key(item); v > maxVal {
			maxVal, maxItem = v, item
		}
	}
	return fn.Some(maxItem)
}

// Min returns the element with the smallest key. On ties the first one wins.
func Min[T any, K constraints.Ordered](items []T, key func(T) K) fn.Option[T] {
	if len(items) == 0 {
		return fn.None[T]()
	}
	minItem, minVal := items[0], key(items[0])
	for _, item := range items[1:] {
		if v := key(item); v < minVal {
			minVal, minItem = v, item
		}
	}
	return fn.Some(minItem)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten flattens one level of nesting.
func Flatten[T any](items [][]T) []T {
	return lo.Flatten(items)
}

// FlattenDeep recursively flattens items into one flat slice. Nested []any
// values and slices or arrays of any other element type are descended into
// at any depth; strings and []byte are kept whole.
func FlattenDeep(items []any) []any {
	out := make([]any, 0, len(items))
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				walk(elem)
			}
			return
		case []byte:
			out = append(out, val)
			return
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface())
			}
			return
		}
		out = append(out, v)
	}
	for _, item := range items {
		walk(item)
	}
	return out
}

// Concat returns a new slice holding items followed by every slice in others.
func Concat[T any](items []T, others ...[]T) []T {
	return lo.Flatten(append([][]T{items}, others...))
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Zip combines lists element-by-element into rows, stopping at the shortest
// list.
//
//	Zip([]any{1, 2, 3}, []any{"a", "b"}) // [[1 a] [2 b]]
func Zip(lists ...[]any) [][]any {
	if len(lists) == 0 {
		return [][]any{}
	}
	n := len(lists[0])
	for _, l := range lists[1:] {
		n = min(n, len(l))
	}
	out := make([][]any, n)
	for i := range out {
		row := make([]any, len(lists))
		for j, l := range lists {
			row[j] = l[i]
		}
		out[i] = row
	}
	return out
}

// ZipPairs pairs elements from a and b at the same index, stopping at the
// shorter slice.
func ZipPairs[A, B any](a []A, b []B) []fn.T2[A, B] {
	n := min(len(a), len(b))
	out := make([]fn.T2[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = fn.NewT2(a[i], b[i])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of items stably sorted in ascending order of key.
func SortBy[T any, K constraints.Ordered](items []T, key func(T) K) []T {
	return Sort(items, func(a, b T) bool { return key(a) < key(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the arithmetic sequence from start to stop, both inclusive
// when stop is reached exactly. When start > stop the sequence counts down.
// Only the magnitude of step is used; a zero step is [ErrInvalidStep].
//
//	Range(1, 5, 2)  // [1 3 5]
//	Range(5, 1, 2)  // [5 3 1]
func Range[N constraints.Integer | constraints.Float](start, stop, step N) ([]N, error) {
	if step == 0 {
		return nil, ErrInvalidStep
	}
	if step < 0 {
		step = -step
	}
	ascending := start <= stop
	out := make([]N, 0)
	for i := 0; ; i++ {
		var v N
		if ascending {
			v = start + N(i)*step
			if v > stop || (i > 0 && v <= out[i-1]) {
				break
			}
		} else {
			v = start - N(i)*step
			if v < stop || (i > 0 && v >= out[i-1]) {
				break
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place removal
// ─────────────────────────────────────────────────────────────────────────────

// Delete removes the first element of *items matching value (see [Same])
// from the caller's slice and returns it. The second result is false when
// nothing matched, in which case *items is left untouched.
func Delete[T any](items *[]T, value T) (T, bool) {
	idx := IndexOf(*items, value)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return DeleteAt(items, idx)
}

// DeleteAt removes the element at index i from the caller's slice and
// returns it. Returns the zero value and false when i is out of range.
func DeleteAt[T any](items *[]T, i int) (T, bool) {
	s := *items
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	removed := s[i]
	*items = append(s[:i], s[i+1:]...)
	return removed, true
}

// DeleteKey removes key from m and returns the value it held. The second
// result is false when key was absent; m is then unchanged.
func DeleteKey[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	if !ok {
		return v, false
	}
	delete(m, key)
	return v, true
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
