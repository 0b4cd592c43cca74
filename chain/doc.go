// Package chain wraps a single value and threads it through Function
// Library operations by name.
//
//	out, err := chain.Of("foo", "bar", "baz").
//	    Map(strings.ToUpper).
//	    Result()
//	// out == []any{"FOO", "BAR", "BAZ"}
//
// A [Chain] holds one value: a sequence ([]any), a mapping (map[string]any)
// or a scalar. Typed slices and maps with string keys are converted to
// those forms on the way in and after every operation.
//
// # Forwarding
//
// [Chain.Call] looks a name up in a fixed table of operations (see [Names]),
// calls it with the held value first and the call's arguments after it, and
// stores the result as the new held value. The typed methods declared by
// [Chainable] are shorthands for Call. Value, Pop, Shift and Count return a
// plain value instead of the chain.
//
// # Errors
//
// Errors are sticky. The first failing call is recorded, the held value
// stays what it was before that call, and every later chained call is a
// no-op. Check [Chain.Err] or use [Chain.Result] at the end of a pipeline.
//
// # Container access
//
// Chain implements [Iterable], [Countable] and [Indexable] over the held
// value. Sequences are indexed by int and mappings by string; misses
// report [ErrOutOfRange] or [ErrKeyNotFound].
//
// A Chain is not safe for concurrent use.
package chain
