// Package arr provides standalone helper functions for Go slices and
// dot-notation map access, in the spirit of Underscore's array functions.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values. None of
// them mutate their input except the explicit in-place removers ([Delete],
// [DeleteAt], [DeleteKey]):
//
//	head := arr.First([]int{1, 2, 3})             // fn.Some(1)
//	two  := arr.FirstN([]int{1, 2, 3}, 2)         // [1 2]
//	tail := arr.Rest([]int{1, 2, 3, 4})           // [2 3 4]
//	uniq := arr.Uniq([]int{1, 2, 1, 3, 1, 4})     // [1 2 3 4]
//	flat := arr.FlattenDeep([]any{1, []any{2, []int{3}}}) // [1 2 3]
//
// # Equality and truthiness
//
// [Without], [IndexOf], [Intersect], [Uniq] and [Delete] compare elements
// with [Same]: comparable values use ==, while slices, maps and funcs only
// match themselves. Two distinct pointers never match, even when they point
// at equal structs.
//
// [Compact] drops every value for which [Truthy] reports false: nil, false,
// numeric zero, the empty string, nil pointers and empty slices or maps.
//
// # Dot-notation map access
//
// [Get], [Set], [Has] and [Forget] read and write nested map[string]any
// structures with dot-separated paths:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	name, _ := arr.Get(m, "user.name") // "Alice"
package arr
