// Package collections provides Underscore-style iteration helpers for two
// kinds of collection: sequences ([]T) and keyed mappings (map[K]V).
//
// # Sequences
//
// Callbacks receive (item, index):
//
//	doubled := collections.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
//	evens := collections.Select([]int{1, 2, 3, 4}, func(n, _ int) bool { return n%2 == 0 })
//	sum := collections.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
//
// [Select] and [Reject] re-index their result: positions of the kept
// elements are not preserved, only their relative order.
//
// # Keyed mappings
//
// The …Entries and …Values variants operate on maps and keep the original
// keys. Callbacks receive (value, key), and every traversal visits keys in
// ascending order so results do not depend on Go's map iteration order:
//
//	upper := collections.MapValues(m, func(v string, _ string) string {
//	    return strings.ToUpper(v)
//	})
//
// # Not-found results
//
// [Detect], [DetectEntry] and [ReduceFirst] return an fn.Option from
// github.com/lightningnetwork/lnd/fn/v2; None signals that nothing matched.
//
// # Immutability
//
// No function in this package mutates its input. Callbacks may of course
// mutate what they are handed.
package collections
