package collections_test

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hasbyte1/go-underscore/collections"
)

type user struct {
	Name    string
	Age     int
	Address *address
	secret  string
}

type address struct {
	City string
}

type counter struct{ hits int }

func (c *counter) Hit(n int) { c.hits += n }

func isEven(n, _ int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var got []int
	var idx []int
	collections.Each([]int{1, 2, 3}, func(n, i int) {
		got = append(got, n*2)
		idx = append(idx, i)
	})
	require.Equal(t, []int{2, 4, 6}, got)
	require.Equal(t, []int{0, 1, 2}, idx)
}

func TestEachNil(t *testing.T) {
	calls := 0
	collections.Each[int](nil, func(int, int) { calls++ })
	require.Zero(t, calls)
}

func TestTap(t *testing.T) {
	var seen []int
	out := collections.Tap([]int{1, 2}, func(v []int) { seen = v })
	require.Equal(t, []int{1, 2}, out)
	require.Equal(t, out, seen)
	require.Equal(t, 3, collections.Tap(3, nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	out := collections.Map([]string{"foo", "bar"}, func(s string, i int) string {
		return strings.ToUpper(s) + string(rune('0'+i))
	})
	require.Equal(t, []string{"FOO0", "BAR1"}, out)
}

func TestMapDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3}
	collections.Map(in, func(n, _ int) int { return n * 10 })
	require.Equal(t, []int{1, 2, 3}, in)
}

func TestReduce(t *testing.T) {
	sum := collections.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
	require.Equal(t, 6, sum)

	joined := collections.Reduce([]int{1, 2}, func(acc string, n int) string {
		return acc + string(rune('a'+n))
	}, ">")
	require.Equal(t, ">bc", joined)

	require.Equal(t, 7, collections.Reduce(nil, func(acc, n int) int { return acc + n }, 7))
}

func TestReduceFirst(t *testing.T) {
	got := collections.ReduceFirst([]int{1, 2, 3}, func(acc, n int) int { return acc*10 + n })
	require.Equal(t, 123, got.UnwrapOr(0))

	require.True(t, collections.ReduceFirst(nil, func(acc, n int) int { return acc + n }).IsNone())
}

func TestPluck(t *testing.T) {
	users := []user{{Name: "moe", Age: 40}, {Name: "larry", Age: 50}}
	require.Equal(t, []string{"moe", "larry"}, collections.Pluck(users, func(u user) string { return u.Name }))
}

func TestPluckPath(t *testing.T) {
	items := []any{
		map[string]any{"name": "moe", "address": map[string]any{"city": "nyc"}},
		user{Name: "larry", Address: &address{City: "sf"}},
		&user{Name: "curly"},
		map[string]string{"name": "shemp"},
		42,
	}

	require.Equal(t, []any{"moe", nil, nil, "shemp", nil}, collections.PluckPath(items, "name"))
	require.Equal(t, []any{nil, "larry", "curly", nil, nil}, collections.PluckPath(items, "Name"))
	require.Equal(t, []any{"nyc", nil, nil, nil, nil}, collections.PluckPath(items, "address.city"))
	require.Equal(t, []any{nil, "sf", nil, nil, nil}, collections.PluckPath(items, "Address.City"))
}

func TestPluckPathSkipsUnexportedFields(t *testing.T) {
	got := collections.PluckPath([]any{user{secret: "x"}}, "secret")
	require.Equal(t, []any{nil}, got)
}

func TestInvoke(t *testing.T) {
	a, b := &counter{}, &counter{}
	items := []any{a, "no methods", b, nil}

	out := collections.Invoke(items, "Hit", 2)
	require.Equal(t, items, out)
	require.Equal(t, 2, a.hits)
	require.Equal(t, 2, b.hits)
}

func TestInvokeMissingMethod(t *testing.T) {
	c := &counter{}
	collections.Invoke([]*counter{c}, "Miss")
	require.Zero(t, c.hits)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

func TestDetect(t *testing.T) {
	calls := 0
	got := collections.Detect([]int{1, 2, 3, 4, 5, 6}, func(n, _ int) bool {
		calls++
		return n%2 == 0
	})
	require.Equal(t, 2, got.UnwrapOr(-1))
	require.Equal(t, 2, calls)

	require.True(t, collections.Detect([]int{1, 3}, isEven).IsNone())
}

func TestSelectReject(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	require.Equal(t, []int{2, 4, 6}, collections.Select(items, isEven))
	require.Equal(t, []int{1, 3, 5}, collections.Reject(items, isEven))

	sel, rej := collections.Partition(items, isEven)
	require.Equal(t, []int{2, 4, 6}, sel)
	require.Equal(t, []int{1, 3, 5}, rej)
}

func TestSelectRejectComplementProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(rt, "items")
		mod := rapid.IntRange(1, 5).Draw(rt, "mod")
		pred := func(n, _ int) bool { return n%mod == 0 }

		sel := collections.Select(items, pred)
		rej := collections.Reject(items, pred)
		require.Len(rt, rej, len(items)-len(sel))
		for _, n := range sel {
			require.True(rt, n%mod == 0)
		}
		for _, n := range rej {
			require.False(rt, n%mod == 0)
		}
	})
}

func TestAll(t *testing.T) {
	require.True(t, collections.All([]int{2, 4}, isEven))
	require.True(t, collections.All(nil, isEven))

	calls := 0
	ok := collections.All([]int{2, 3, 4, 6}, func(n, i int) bool {
		calls++
		return isEven(n, i)
	})
	require.False(t, ok)
	require.Equal(t, 2, calls)

	// a failing element followed by passing ones still fails.
	require.False(t, collections.All([]int{1, 2, 4}, isEven))
}

func TestAny(t *testing.T) {
	require.True(t, collections.Any([]int{1, 2}, isEven))
	require.False(t, collections.Any([]int{1, 3}, isEven))
	require.False(t, collections.Any(nil, isEven))
}

func TestIncludes(t *testing.T) {
	require.True(t, collections.Includes([]int{1, 2, 3}, 3))
	require.False(t, collections.Includes([]any{1, 2, 3}, any("3")))
	require.False(t, collections.Includes(nil, 1))
}

func TestSize(t *testing.T) {
	var seq iter.Seq[any] = func(yield func(any) bool) {
		for i := range 4 {
			if !yield(i) {
				return
			}
		}
	}

	cases := []struct {
		name string
		v    any
		want int
	}{
		{"nil", nil, 0},
		{"slice", []int{1, 2, 3}, 3},
		{"empty slice", []string{}, 0},
		{"array", [2]int{}, 2},
		{"map", map[string]int{"a": 1}, 1},
		{"string", "héllo", 6},
		{"seq", seq, 4},
		{"scalar", 42, 1},
		{"struct", user{}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, collections.Size(tc.v))
		})
	}
}
