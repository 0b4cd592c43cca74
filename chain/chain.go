package chain

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/google/uuid"

	"github.com/hasbyte1/go-underscore/arr"
)

// Chain holds a single value and applies operations to it in turn.
//
// Every chained call replaces the held value with its result and returns the
// same *Chain, so calls can be strung together:
//
//	c := chain.New([]int{3, 1, 2}).SortBy(funcs.Identity()).Reverse()
//	c.Value() // []any{3, 2, 1}
type Chain struct {
	id    uuid.UUID
	value any
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Chain holding value. nil becomes an empty sequence; typed
// slices and arrays become []any; maps with string keys become
// map[string]any; an iter.Seq[any] or iter.Seq2[string, any] is drained into
// a sequence or mapping. A []any is copied so the chain owns its sequence; a
// map[string]any is held as-is, so deleteKey and delete on a mapping are
// visible to the caller.
func New(value any) *Chain {
	switch v := value.(type) {
	case nil:
		return hold([]any{})
	case []any:
		if v == nil {
			return hold([]any{})
		}
		return hold(slices.Clone(v))
	}
	return hold(normalize(value))
}

func hold(value any) *Chain {
	return &Chain{id: uuid.New(), value: value}
}

// Empty creates a Chain holding an empty sequence.
func Empty() *Chain { return New(nil) }

// Of creates a Chain holding a sequence of items (copied).
func Of[T any](items ...T) *Chain { return From(items) }

// From creates a Chain holding a copy of items as a sequence.
func From[T any](items []T) *Chain {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return hold(out)
}

// FromMap creates a Chain holding a copy of m.
func FromMap[V any](m map[string]V) *Chain {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return hold(out)
}

// FromSeq creates a Chain holding every value seq yields, in order.
func FromSeq[T any](seq iter.Seq[T]) *Chain {
	out := []any{}
	for v := range seq {
		out = append(out, v)
	}
	return hold(out)
}

// normalize converts typed containers to the dynamic forms the operations
// work on. Anything else is returned unchanged.
func normalize(v any) any {
	switch t := v.(type) {
	case []any, map[string]any, []byte, string:
		return v
	case iter.Seq[any]:
		out := []any{}
		for x := range t {
			out = append(out, x)
		}
		return out
	case iter.Seq2[string, any]:
		out := map[string]any{}
		for k, x := range t {
			out[k] = x
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out[it.Key().String()] = it.Value().Interface()
		}
		return out
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ID returns the identifier used for this chain in log lines.
func (c *Chain) ID() uuid.UUID { return c.id }

// Value returns the held value.
func (c *Chain) Value() any { return c.value }

// Err returns the error recorded by the first failed call, if any.
func (c *Chain) Err() error { return c.err }

// Result returns the held value together with [Chain.Err].
func (c *Chain) Result() (any, error) { return c.value, c.err }

// ToJSON serialises the held value to JSON.
func (c *Chain) ToJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// String returns a JSON representation of the held value, falling back to
// %v for values JSON cannot encode. It implements [fmt.Stringer].
func (c *Chain) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.value)
	}
	return string(b)
}

// Dump logs a spew dump of the held value at debug level and returns c.
func (c *Chain) Dump() *Chain {
	log.Debugf("chain %s: %v", c.id, spewClosure(c.value))
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Forwarding
// ─────────────────────────────────────────────────────────────────────────────

// Call runs the operation registered under name with the held value as its
// first argument, followed by args. The result becomes the new held value.
//
// An unknown name records [ErrMethodNotFound]. Once an error is recorded,
// Call does nothing.
func (c *Chain) Call(name string, args ...any) *Chain {
	if c.err != nil {
		return c
	}

	op, ok := registry[name]
	if !ok {
		return c.fail(name, fmt.Errorf("%w: %q", ErrMethodNotFound, name))
	}

	log.Tracef("chain %s: %s with %d args", c.id, name, len(args))

	out, err := apply(op, c.value, args)
	if err != nil {
		return c.fail(name, fmt.Errorf("%s: %w", name, err))
	}
	c.value = normalize(out)
	return c
}

func (c *Chain) fail(name string, err error) *Chain {
	log.Debugf("chain %s: %s failed: %v", c.id, name, err)
	c.err = err
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence operations
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values to the held sequence.
func (c *Chain) Push(values ...any) *Chain {
	return c.mutate("push", func(s []any) []any {
		return append(s, values...)
	})
}

// Unshift prepends values to the held sequence, keeping their order.
func (c *Chain) Unshift(values ...any) *Chain {
	return c.mutate("unshift", func(s []any) []any {
		return append(append(make([]any, 0, len(values)+len(s)), values...), s...)
	})
}

func (c *Chain) mutate(name string, fn func([]any) []any) *Chain {
	if c.err != nil {
		return c
	}
	s, ok := c.value.([]any)
	if !ok {
		return c.fail(name, fmt.Errorf("%w: %T", ErrNotSequence, c.value))
	}
	c.value = fn(s)
	return c
}

// Pop removes and returns the last element of the held sequence. It reports
// false when the sequence is empty, the held value is not a sequence or the
// chain has already failed.
func (c *Chain) Pop() (any, bool) {
	if c.err != nil {
		return nil, false
	}
	s, ok := c.value.([]any)
	if !ok || len(s) == 0 {
		return nil, false
	}
	v, _ := arr.DeleteAt(&s, len(s)-1)
	c.value = s
	return v, true
}

// Shift removes and returns the first element of the held sequence. It
// reports false in the same cases as Pop.
func (c *Chain) Shift() (any, bool) {
	if c.err != nil {
		return nil, false
	}
	s, ok := c.value.([]any)
	if !ok || len(s) == 0 {
		return nil, false
	}
	v, _ := arr.DeleteAt(&s, 0)
	c.value = s
	return v, true
}

// Range replaces the held value with the integers from start to stop,
// inclusive, as generated by [arr.Range]. step defaults to 1; a zero step
// records [arr.ErrInvalidStep].
func (c *Chain) Range(start, stop int, step ...int) *Chain {
	if c.err != nil {
		return c
	}
	st := 1
	if len(step) > 0 {
		st = step[0]
	}
	nums, err := arr.Range(start, stop, st)
	if err != nil {
		return c.fail("range", err)
	}
	c.value = normalize(nums)
	return c
}
