package chain

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/funcs"
	"github.com/hasbyte1/go-underscore/strutil"
)

// ─────────────────────────────────────────────────────────────────────────────
// Argument helpers
// ─────────────────────────────────────────────────────────────────────────────

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func restOf(args []any, i int) []any {
	if i < len(args) {
		return args[i:]
	}
	return nil
}

func callback(args []any, i int) (funcs.Func, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%w: missing callback", ErrInvalidArgument)
	}
	return funcs.AsFunc(args[i])
}

// optionalCallback returns the callback at i, or the identity when absent.
func optionalCallback(args []any, i int) (funcs.Func, error) {
	if i >= len(args) || args[i] == nil {
		return funcs.Identity(), nil
	}
	return funcs.AsFunc(args[i])
}

func intArg(args []any, i int, def int) (int, error) {
	if i >= len(args) || args[i] == nil {
		return def, nil
	}
	n, ok := toInt(args[i])
	if !ok {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArgument, args[i])
	}
	return n, nil
}

func stringArg(args []any, i int) (string, error) {
	s, ok := argAt(args, i).(string)
	if !ok {
		return "", fmt.Errorf("%w: expected a string, got %T", ErrInvalidArgument, argAt(args, i))
	}
	return s, nil
}

// listArgs converts each arg to a sequence.
func listArgs(args []any) ([][]any, error) {
	out := make([][]any, len(args))
	for i, a := range args {
		s, ok := normalize(a).([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a list", ErrInvalidArgument, a)
		}
		out[i] = s
	}
	return out, nil
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt {
			return int(f), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// compare orders numbers numerically and strings lexically. Mixed or other
// values are ordered by their %v rendering.
func compare(a, b any) int {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return cmp.Compare(fa, fb)
	}
	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		return strings.Compare(sa, sb)
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func notSequence(held any) error {
	return fmt.Errorf("%w: %T", ErrNotSequence, held)
}

// sequence returns the held value as a list: a sequence as-is, the values of
// a mapping in key order, and nil as an empty list.
func sequence(held any) ([]any, error) {
	switch h := held.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return h, nil
	case map[string]any:
		return collections.Values(h), nil
	}
	return nil, notSequence(held)
}

func truthy[K any](f funcs.Func) func(any, K) bool {
	return func(v any, k K) bool { return arr.Truthy(f(v, k)) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Collections
// ─────────────────────────────────────────────────────────────────────────────

func opEach(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
	case []any:
		collections.Each(h, func(v any, i int) { f(v, i) })
	case map[string]any:
		collections.EachEntry(h, func(v any, k string) { f(v, k) })
	default:
		return nil, notSequence(held)
	}
	return held, nil
}

func opMap(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return collections.Map(h, func(v any, i int) any { return f(v, i) }), nil
	case map[string]any:
		return collections.MapValues(h, func(v any, k string) any { return f(v, k) }), nil
	}
	return nil, notSequence(held)
}

// opReduce folds with f(acc, value). Without an initial value the first
// element seeds the fold and an empty input yields nil.
func opReduce(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	items, err := sequence(held)
	if err != nil {
		return nil, err
	}
	step := func(acc, v any) any { return f(acc, v) }
	if len(args) > 1 {
		return collections.Reduce(items, step, args[1]), nil
	}
	return collections.ReduceFirst(items, step).UnwrapOr(nil), nil
}

func opDetect(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return nil, nil
	case []any:
		return collections.Detect(h, truthy[int](f)).UnwrapOr(nil), nil
	case map[string]any:
		return collections.DetectEntry(h, truthy[string](f)).UnwrapOr(nil), nil
	}
	return nil, notSequence(held)
}

func opSelect(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return collections.Select(h, truthy[int](f)), nil
	case map[string]any:
		return collections.SelectEntries(h, truthy[string](f)), nil
	}
	return nil, notSequence(held)
}

func opReject(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return collections.Reject(h, truthy[int](f)), nil
	case map[string]any:
		return collections.RejectEntries(h, truthy[string](f)), nil
	}
	return nil, notSequence(held)
}

func opAll(held any, args ...any) (any, error) {
	f, err := optionalCallback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return true, nil
	case []any:
		return collections.All(h, truthy[int](f)), nil
	case map[string]any:
		return collections.AllEntries(h, truthy[string](f)), nil
	}
	return nil, notSequence(held)
}

func opAny(held any, args ...any) (any, error) {
	f, err := optionalCallback(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return false, nil
	case []any:
		return collections.Any(h, truthy[int](f)), nil
	case map[string]any:
		return collections.AnyEntries(h, truthy[string](f)), nil
	}
	return nil, notSequence(held)
}

func opIncludes(held any, args ...any) (any, error) {
	v := argAt(args, 0)
	switch h := held.(type) {
	case nil:
		return false, nil
	case []any:
		return collections.Includes(h, v), nil
	case map[string]any:
		return collections.IncludesValue(h, v), nil
	}
	return nil, notSequence(held)
}

// opInvoke calls a method on every element and keeps the held value.
func opInvoke(held any, args ...any) (any, error) {
	method, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	items, err := sequence(held)
	if err != nil {
		return nil, err
	}
	collections.Invoke(items, method, restOf(args, 1)...)
	return held, nil
}

func opPluck(held any, args ...any) (any, error) {
	path, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	items, err := sequence(held)
	if err != nil {
		return nil, err
	}
	return collections.PluckPath(items, path), nil
}

func opSize(held any, _ ...any) (any, error) {
	return collections.Size(held), nil
}

func opTap(held any, args ...any) (any, error) {
	f, err := callback(args, 0)
	if err != nil {
		return nil, err
	}
	return collections.Tap(held, func(v any) { f(v) }), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Arrays
// ─────────────────────────────────────────────────────────────────────────────

// list adapts a []any -> R array function to an Operation.
func list[R any](f func(items []any, args []any) (R, error)) Operation {
	return func(held any, args ...any) (any, error) {
		items, err := sequence(held)
		if err != nil {
			return nil, err
		}
		return f(items, args)
	}
}

var (
	opFirst = list(func(items, _ []any) (any, error) {
		return arr.First(items).UnwrapOr(nil), nil
	})

	opLast = list(func(items, _ []any) (any, error) {
		return arr.Last(items).UnwrapOr(nil), nil
	})

	opFirstN = list(func(items, args []any) ([]any, error) {
		n, err := intArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return arr.FirstN(items, n), nil
	})

	opRest = list(func(items, args []any) ([]any, error) {
		n, err := intArg(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return arr.Rest(items, n), nil
	})

	opCompact = list(func(items, _ []any) ([]any, error) {
		return arr.Compact(items), nil
	})

	opFlatten = list(func(items, _ []any) ([]any, error) {
		return arr.FlattenDeep(items), nil
	})

	opWithout = list(func(items, args []any) ([]any, error) {
		return arr.Without(items, args...), nil
	})

	opUniq = list(func(items, args []any) ([]any, error) {
		return arr.Uniq(items, arr.Truthy(argAt(args, 0))), nil
	})

	opIndexOf = list(func(items, args []any) (int, error) {
		return arr.IndexOf(items, argAt(args, 0)), nil
	})

	opIntersect = list(func(items, args []any) ([]any, error) {
		others, err := listArgs(args)
		if err != nil {
			return nil, err
		}
		return arr.Intersect(items, others...), nil
	})

	opZip = list(func(items, args []any) ([][]any, error) {
		others, err := listArgs(args)
		if err != nil {
			return nil, err
		}
		return arr.Zip(append([][]any{items}, others...)...), nil
	})

	opConcat = list(func(items, args []any) ([]any, error) {
		others, err := listArgs(args)
		if err != nil {
			return nil, err
		}
		return arr.Concat(items, others...), nil
	})

	opReverse = list(func(items, _ []any) ([]any, error) {
		return arr.Reverse(items), nil
	})

	opSortBy = list(func(items, args []any) ([]any, error) {
		key, err := optionalCallback(args, 0)
		if err != nil {
			return nil, err
		}
		keyed := make([]fn.T2[any, any], len(items))
		for i, v := range items {
			keyed[i] = fn.NewT2(v, key(v))
		}
		sorted := arr.Sort(keyed, func(a, b fn.T2[any, any]) bool {
			return compare(a.Second(), b.Second()) < 0
		})
		out := make([]any, len(sorted))
		for i, p := range sorted {
			out[i] = p.First()
		}
		return out, nil
	})

	opMax = list(extreme(arr.Max[scored, float64]))
	opMin = list(extreme(arr.Min[scored, float64]))
)

// scored pairs an element with its numeric key.
type scored = fn.T2[any, float64]

func extreme(pick func([]scored, func(scored) float64) fn.Option[scored]) func([]any, []any) (any, error) {
	return func(items, args []any) (any, error) {
		key, err := optionalCallback(args, 0)
		if err != nil {
			return nil, err
		}
		pairs := make([]scored, len(items))
		for i, v := range items {
			k := key(v)
			f, ok := toFloat(k)
			if !ok {
				return nil, fmt.Errorf("%w: key %v is not a number", ErrInvalidArgument, k)
			}
			pairs[i] = fn.NewT2(v, f)
		}
		best := pick(pairs, func(p scored) float64 { return p.Second() })
		return best.UnwrapOr(fn.NewT2[any, float64](nil, 0)).First(), nil
	}
}

// opDelete removes the first element equal to the argument from the held
// container in place. The removed value, or nil, becomes the held value.
func opDelete(held any, args ...any) (any, error) {
	v := argAt(args, 0)
	switch h := held.(type) {
	case nil:
		return nil, nil
	case []any:
		removed, _ := arr.Delete(&h, v)
		return removed, nil
	case map[string]any:
		for _, k := range collections.Keys(h) {
			if arr.Same(h[k], v) {
				removed, _ := arr.DeleteKey(h, k)
				return removed, nil
			}
		}
		return nil, nil
	}
	return nil, notSequence(held)
}

// opDeleteKey removes the entry at the given key or index from the held
// container in place. The removed value, or nil, becomes the held value.
func opDeleteKey(held any, args ...any) (any, error) {
	key := argAt(args, 0)
	switch h := held.(type) {
	case nil:
		return nil, nil
	case []any:
		i, ok := toInt(key)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidKey, key)
		}
		removed, _ := arr.DeleteAt(&h, i)
		return removed, nil
	case map[string]any:
		k, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidKey, key)
		}
		removed, _ := arr.DeleteKey(h, k)
		return removed, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIndexable, held)
}

func opGetPath(held any, args ...any) (any, error) {
	path, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		v, _ := arr.Get(h, path)
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIndexable, held)
}

func opHasPath(held any, args ...any) (any, error) {
	path, err := stringArg(args, 0)
	if err != nil {
		return nil, err
	}
	switch h := held.(type) {
	case nil:
		return false, nil
	case map[string]any:
		return arr.Has(h, path), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIndexable, held)
}

// ─────────────────────────────────────────────────────────────────────────────
// Functions
// ─────────────────────────────────────────────────────────────────────────────

// resolve adapts v to a funcs.Func. A string is looked up by name: the
// resulting function calls that operation with its first argument as the
// held value and panics with an opFailure carrying the operation's error,
// which apply turns back into an error.
func resolve(v any) (funcs.Func, error) {
	name, ok := v.(string)
	if !ok {
		return funcs.AsFunc(v)
	}
	op, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return func(args ...any) any {
		out, err := apply(op, argAt(args, 0), restOf(args, 1))
		if err != nil {
			panic(opFailure{name: name, err: err})
		}
		return out
	}, nil
}

// opFailure is the panic value of a failing function resolved by name.
type opFailure struct {
	name string
	err  error
}

func (f opFailure) Error() string { return f.name + ": " + f.err.Error() }

func (f opFailure) Unwrap() error { return f.err }

func opWrap(held any, args ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	return funcs.Wrap(f, argAt(args, 0))
}

func opCurry(held any, args ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	return funcs.Curry(f, args...)
}

func opCompose(held any, args ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	return funcs.Compose(append([]any{f}, args...)...)
}

func opOnce(held any, _ ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	return funcs.Once(f), nil
}

func opAfter(held any, args ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	n, err := intArg(args, 0, 1)
	if err != nil {
		return nil, err
	}
	return funcs.After(n, f), nil
}

func opMemoize(held any, args ...any) (any, error) {
	f, err := resolve(held)
	if err != nil {
		return nil, err
	}
	switch h := argAt(args, 0).(type) {
	case nil:
		return funcs.Memoize(f), nil
	case func([]any) string:
		return funcs.Memoize(f, h), nil
	}
	return nil, fmt.Errorf("%w: hasher must be func([]any) string, got %T", ErrInvalidArgument, args[0])
}

// opTimes calls the callback held-value times and holds the last result.
func opTimes(held any, args ...any) (any, error) {
	n, ok := toInt(held)
	if !ok {
		return nil, fmt.Errorf("%w: times needs an integer, got %T", ErrInvalidArgument, held)
	}
	f, err := resolve(argAt(args, 0))
	if err != nil {
		return nil, err
	}
	return funcs.Times(n, f, restOf(args, 1)...), nil
}

func opIdentity(held any, _ ...any) (any, error) {
	return funcs.Identity()(held), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings
// ─────────────────────────────────────────────────────────────────────────────

func opCamelize(held any, args ...any) (any, error) {
	s, ok := held.(string)
	if !ok {
		return nil, fmt.Errorf("%w: camelize needs a string, got %T", ErrInvalidArgument, held)
	}
	if len(args) > 0 {
		return strutil.Camelize(s, arr.Truthy(args[0])), nil
	}
	return strutil.Camelize(s), nil
}

func opWords(held any, _ ...any) (any, error) {
	s, ok := held.(string)
	if !ok {
		return nil, fmt.Errorf("%w: words needs a string, got %T", ErrInvalidArgument, held)
	}
	return strutil.Words(s), nil
}
