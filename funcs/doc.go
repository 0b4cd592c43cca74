// Package funcs provides function combinators: helpers that take a callable
// and return a new callable with different calling behaviour.
//
// # Dynamic callables
//
// [Func] is the untyped callable used throughout the package. [AsFunc]
// adapts ordinary Go funcs to it, so callers can pass plain closures:
//
//	greet := func(name string) string { return "hi: " + name }
//	exclaim := func(s string) string { return s + "!" }
//
//	f, _ := funcs.Compose(greet, exclaim)
//	f("moe") // "hi: moe!"
//
// Note that [Compose] applies its functions left to right: the first one
// receives the call's arguments and each following one receives the previous
// result.
//
// # Typed variants
//
// Where the shape of the callable is known at compile time, prefer the
// generic variants ([Compose2], [Curry2], [OnceValue], [MemoizeKey], …):
//
//	var fib func(int) int
//	fib = funcs.MemoizeKey(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// # State
//
// [Once], [After] and [Memoize] keep their counters and caches inside the
// returned closure. Two callables produced by separate calls never share
// state. The closures do no locking; confine each one to a single goroutine
// or guard it yourself.
package funcs
