package funcs

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Stateless combinators
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns a Func that returns its first argument unchanged.
func Identity() Func {
	return func(args ...any) any { return arg(args, 0) }
}

// IdentityOf is the typed form of [Identity].
func IdentityOf[T any]() func(T) T {
	return func(v T) T { return v }
}

// Wrap returns a callable that invokes wrapper with fn as its first argument,
// followed by the arguments of the call. This lets wrapper decide whether,
// when and with what arguments fn runs.
//
//	greet := func(name string) string { return "hi: " + name }
//	backwards, _ := funcs.Wrap(greet, func(f funcs.Func, args ...any) any {
//	    name := args[0].(string)
//	    return f(name).(string) + " " + reverse(name)
//	})
//	backwards("moe") // "hi: moe eom"
//
// Both fn and wrapper may be anything [AsFunc] accepts.
func Wrap(fn, wrapper any) (Func, error) {
	original, err := AsFunc(fn)
	if err != nil {
		return nil, fmt.Errorf("wrap: wrapped function: %w", err)
	}

	switch w := wrapper.(type) {
	case Wrapper:
		if w != nil {
			return func(args ...any) any { return w(original, args...) }, nil
		}
	case func(Func, ...any) any:
		if w != nil {
			return func(args ...any) any { return w(original, args...) }, nil
		}
	}

	wf, err := AsFunc(wrapper)
	if err != nil {
		return nil, fmt.Errorf("wrap: wrapper: %w", err)
	}
	return func(args ...any) any {
		return wf(append([]any{original}, args...)...)
	}, nil
}

// WrapFn is the typed form of [Wrap] for single-argument functions.
func WrapFn[A, R any](f func(A) R, wrapper func(func(A) R, A) R) func(A) R {
	return func(a A) R { return wrapper(f, a) }
}

// Curry returns a callable that calls fn with prefix followed by the call's
// own arguments.
//
//	double, _ := funcs.Curry(func(x, y int) int { return x * y }, 2)
//	double(3) // 6
func Curry(fn any, prefix ...any) (Func, error) {
	f, err := AsFunc(fn)
	if err != nil {
		return nil, fmt.Errorf("curry: %w", err)
	}
	bound := append([]any(nil), prefix...)
	return func(args ...any) any {
		all := make([]any, 0, len(bound)+len(args))
		all = append(all, bound...)
		all = append(all, args...)
		return f(all...)
	}, nil
}

// Curry2 binds the first argument of a two-argument function.
func Curry2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Compose chains fns left to right. The first function receives the
// arguments of the call; every following function receives the single
// result of the one before it:
//
//	Compose(f, g, h)(x) == h(g(f(x)))
//
// With no functions the result returns its first argument.
func Compose(fns ...any) (Func, error) {
	chain := make([]Func, len(fns))
	for i, fn := range fns {
		f, err := AsFunc(fn)
		if err != nil {
			return nil, fmt.Errorf("compose: function %d: %w", i, err)
		}
		chain[i] = f
	}
	return func(args ...any) any {
		if len(chain) == 0 {
			return arg(args, 0)
		}
		result := chain[0](args...)
		for _, f := range chain[1:] {
			result = f(result)
		}
		return result
	}, nil
}

// Compose2 is the typed form of [Compose]: Compose2(f, g)(x) == g(f(x)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Times calls fn n times with args and returns the result of the last call,
// or nil when n <= 0.
func Times(n int, fn Func, args ...any) any {
	var result any
	for i := 0; i < n; i++ {
		result = fn(args...)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Stateful combinators
// ─────────────────────────────────────────────────────────────────────────────

// Once returns a callable that runs fn on its first call only. Every later
// call, whatever its arguments, returns the first call's result.
func Once(fn Func) Func {
	var (
		called bool
		result any
	)
	return func(args ...any) any {
		if called {
			return result
		}
		called = true
		result = fn(args...)
		return result
	}
}

// OnceValue is the typed form of [Once].
func OnceValue[T any](fn func() T) func() T {
	var (
		called bool
		result T
	)
	return func() T {
		if !called {
			called = true
			result = fn()
		}
		return result
	}
}

// After returns a callable that ignores its first n-1 calls, returning nil,
// and runs fn on the n-th call and every call after it. With n <= 1 every
// call runs fn.
func After(n int, fn Func) Func {
	calls := 0
	return func(args ...any) any {
		calls++
		if calls < n {
			return nil
		}
		return fn(args...)
	}
}

// AfterValue is the typed form of [After]. The boolean result reports
// whether fn ran.
func AfterValue[T any](n int, fn func() T) func() (T, bool) {
	calls := 0
	return func() (T, bool) {
		calls++
		if calls < n {
			var zero T
			return zero, false
		}
		return fn(), true
	}
}
