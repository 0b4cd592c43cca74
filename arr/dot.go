package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// These functions read, write and remove values in nested map[string]any
// structures using dot-separated key paths:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Get(m, "user.address.city")  → "London", true
//	Set(m, "user.age", 30)
//	Has(m, "user.name")          → true
//	Forget(m, "user.address")    → map[city:London], true
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves the value stored at path. The second result is false when
// any segment of the path is missing or crosses a non-map value.
func Get(m map[string]any, path string) (any, bool) {
	parent, last, ok := walk(m, path, false)
	if !ok {
		return nil, false
	}
	v, ok := parent[last]
	return v, ok
}

// Set writes value at path, creating intermediate maps as needed. Existing
// non-map values on the way are replaced.
func Set(m map[string]any, path string, value any) {
	parent, last, _ := walk(m, path, true)
	parent[last] = value
}

// Has reports whether path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Get(m, path)
	return ok
}

// Forget removes path from m and returns the removed value. Intermediate
// maps are not cleaned up.
func Forget(m map[string]any, path string) (any, bool) {
	parent, last, ok := walk(m, path, false)
	if !ok {
		return nil, false
	}
	return DeleteKey(parent, last)
}

// walk descends to the map holding the final path segment. With create set,
// missing or non-map intermediates are replaced by fresh maps.
func walk(m map[string]any, path string, create bool) (map[string]any, string, bool) {
	segments := strings.Split(path, ".")
	current := m
	for _, seg := range segments[:len(segments)-1] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			if !create {
				return nil, "", false
			}
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	return current, segments[len(segments)-1], true
}
