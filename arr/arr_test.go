package arr_test

import (
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hasbyte1/go-underscore/arr"
)

// ─── First / FirstN / Last / Rest ─────────────────────────────────────────────

func TestFirst(t *testing.T) {
	require.Equal(t, fn.Some(1), arr.First([]int{1, 2, 3}))
	require.True(t, arr.First([]int{}).IsNone())
	require.True(t, arr.First[int](nil).IsNone())
}

func TestFirstN(t *testing.T) {
	list := []int{1, 2, 3}
	require.Equal(t, []int{}, arr.FirstN(list, 0))
	require.Equal(t, []int{1, 2}, arr.FirstN(list, 2))
	require.Equal(t, []int{1, 2, 3}, arr.FirstN(list, 10))
	require.Equal(t, []int{}, arr.FirstN(list, -1))
}

func TestFirstNCopies(t *testing.T) {
	list := []int{1, 2, 3}
	head := arr.FirstN(list, 2)
	head[0] = 99
	require.Equal(t, 1, list[0])
}

func TestLast(t *testing.T) {
	require.Equal(t, fn.Some(3), arr.Last([]int{1, 2, 3}))
	require.True(t, arr.Last([]string{}).IsNone())
}

func TestRest(t *testing.T) {
	numbers := []int{1, 2, 3, 4}
	require.Equal(t, []int{2, 3, 4}, arr.Rest(numbers))
	require.Equal(t, []int{1, 2, 3, 4}, arr.Rest(numbers, 0))
	require.Equal(t, []int{3, 4}, arr.Rest(numbers, 2))
	require.Equal(t, []int{}, arr.Rest(numbers, 4))
	require.Equal(t, []int{}, arr.Rest(numbers, 9))
}

// ─── Compact / Truthy ─────────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	values := []any{0, 1, false, 2, false, 3}
	require.Equal(t, []any{1, 2, 3}, arr.Compact(values))
}

func TestCompactTyped(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, arr.Compact([]string{"", "a", "", "b"}))
}

func TestTruthy(t *testing.T) {
	var nilPtr *int
	one := 1

	falsy := []any{nil, false, 0, int8(0), uint(0), 0.0, float32(0), "", nilPtr, []any{}, map[string]any{}, []int(nil)}
	for _, v := range falsy {
		require.Falsef(t, arr.Truthy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, 1, -1, 0.5, "0", "x", &one, []any{0}, map[string]any{"a": nil}, struct{}{}}
	for _, v := range truthy {
		require.Truef(t, arr.Truthy(v), "%#v should be truthy", v)
	}
}

// ─── Flatten ──────────────────────────────────────────────────────────────────

func TestFlattenDeep(t *testing.T) {
	list := []any{1, []any{2}, []any{3, []any{[]any{[]any{4}}}}}
	require.Equal(t, []any{1, 2, 3, 4}, arr.FlattenDeep(list))
}

func TestFlattenDeepTypedSlices(t *testing.T) {
	list := []any{"ab", []string{"c", "d"}, [2]int{5, 6}, []byte("xy")}
	require.Equal(t, []any{"ab", "c", "d", 5, 6, []byte("xy")}, arr.FlattenDeep(list))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, arr.Flatten([][]int{{1, 2}, {}, {3, 4}}))
}

// ─── Without / Uniq / IndexOf / Intersect ─────────────────────────────────────

func TestWithout(t *testing.T) {
	list := []int{1, 2, 1, 0, 3, 1, 4}
	require.Equal(t, []int{2, 3, 4}, arr.Without(list, 0, 1))
}

type object struct{ n int }

func TestWithoutUsesIdentity(t *testing.T) {
	list := []any{&object{1}, &object{2}}

	require.Len(t, arr.Without(list, any(&object{1})), 2)
	require.Len(t, arr.Without(list, list[0]), 1)
}

func TestWithoutDistinguishesTypes(t *testing.T) {
	list := []any{1, int64(1), "1"}
	require.Equal(t, []any{int64(1), "1"}, arr.Without(list, any(1)))
}

func TestUniq(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, arr.Uniq([]int{1, 2, 1, 3, 1, 4}))
}

func TestUniqSorted(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, arr.Uniq([]int{1, 1, 1, 2, 2, 3}, true))
}

func TestUniqNonComparable(t *testing.T) {
	shared := []int{1}
	list := []any{shared, shared, []int{1}, 2, 2}
	require.Len(t, arr.Uniq(list), 3)
}

func TestIndexOf(t *testing.T) {
	require.Equal(t, 1, arr.IndexOf([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, arr.IndexOf([]string{"a"}, "z"))
	require.Equal(t, -1, arr.IndexOf(nil, "z"))
	require.Equal(t, 0, arr.IndexOf([]int{7, 7}, 7))
}

func TestIntersect(t *testing.T) {
	require.Equal(t, []int{1, 2}, arr.Intersect([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1}))
	require.Equal(t, []int{2, 2}, arr.Intersect([]int{2, 4, 2}, []int{2}))
	require.Equal(t, []int{1, 2}, arr.Intersect([]int{1, 2}))
}

// ─── Zip / Concat / Reverse ───────────────────────────────────────────────────

func TestZip(t *testing.T) {
	got := arr.Zip([]any{1, 2, 3}, []any{"a", "b"}, []any{true, false, true})
	require.Equal(t, [][]any{{1, "a", true}, {2, "b", false}}, got)
	require.Empty(t, arr.Zip())
}

func TestZipPairs(t *testing.T) {
	pairs := arr.ZipPairs([]string{"x", "y", "z"}, []int{1, 2})
	require.Len(t, pairs, 2)
	require.Equal(t, "y", pairs[1].First())
	require.Equal(t, 2, pairs[1].Second())
}

func TestConcat(t *testing.T) {
	a := []int{1, 2}
	got := arr.Concat(a, []int{3}, []int{4, 5})
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
	got[0] = 9
	require.Equal(t, 1, a[0])
}

func TestReverse(t *testing.T) {
	require.Equal(t, []int{3, 2, 1}, arr.Reverse([]int{1, 2, 3}))
}

// ─── Sorting / extremes ───────────────────────────────────────────────────────

func TestSortByIsStable(t *testing.T) {
	type row struct {
		key  int
		name string
	}
	rows := []row{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	got := arr.SortBy(rows, func(r row) int { return r.key })
	require.Equal(t, []row{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, got)
}

func TestMaxMin(t *testing.T) {
	words := []string{"pear", "fig", "banana", "kiwi"}
	length := func(s string) int { return len(s) }

	require.Equal(t, fn.Some("banana"), arr.Max(words, length))
	require.Equal(t, fn.Some("fig"), arr.Min(words, length))
	require.Equal(t, fn.Some("pear"), arr.Max([]string{"pear", "kiwi"}, length))
	require.True(t, arr.Max([]string{}, length).IsNone())
}

// ─── Range ────────────────────────────────────────────────────────────────────

func TestRange(t *testing.T) {
	got, err := arr.Range(1, 5, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)

	got, err = arr.Range(0, 10, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 6, 9}, got)

	got, err = arr.Range(5, 1, -2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 3, 1}, got)

	got, err = arr.Range(3, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)
}

func TestRangeFloat(t *testing.T) {
	got, err := arr.Range(0.0, 1.0, 0.25)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)
}

func TestRangeUnsignedDescending(t *testing.T) {
	got, err := arr.Range[uint8](4, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []uint8{4, 2, 0}, got)
}

func TestRangeZeroStep(t *testing.T) {
	_, err := arr.Range(1, 5, 0)
	require.ErrorIs(t, err, arr.ErrInvalidStep)
}

// ─── In-place removal ─────────────────────────────────────────────────────────

func TestDeleteKey(t *testing.T) {
	m := map[string]string{"foo": "bar"}

	v, ok := arr.DeleteKey(m, "missing")
	require.False(t, ok)
	require.Empty(t, v)
	require.Equal(t, map[string]string{"foo": "bar"}, m)

	v, ok = arr.DeleteKey(m, "foo")
	require.True(t, ok)
	require.Equal(t, "bar", v)
	require.Empty(t, m)
}

func TestDelete(t *testing.T) {
	list := []string{"a", "b", "c", "b"}

	v, ok := arr.Delete(&list, "b")
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, []string{"a", "c", "b"}, list)

	_, ok = arr.Delete(&list, "z")
	require.False(t, ok)
	require.Equal(t, []string{"a", "c", "b"}, list)
}

func TestDeleteAt(t *testing.T) {
	list := []int{10, 20, 30}

	v, ok := arr.DeleteAt(&list, 0)
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, []int{20, 30}, list)

	_, ok = arr.DeleteAt(&list, 2)
	require.False(t, ok)
}

// ─── Properties ───────────────────────────────────────────────────────────────

func TestUniqProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(-5, 5)).Draw(rt, "items")
		got := arr.Uniq(items)

		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				rt.Fatalf("duplicate %d in %v", v, got)
			}
			seen[v] = true
		}
		for _, v := range items {
			if !seen[v] {
				rt.Fatalf("lost %d from %v", v, items)
			}
		}
	})
}

func TestWithoutProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(0, 9)).Draw(rt, "items")
		drop := rapid.SliceOf(rapid.IntRange(0, 9)).Draw(rt, "drop")
		got := arr.Without(items, drop...)

		for _, v := range got {
			if arr.IndexOf(drop, v) >= 0 {
				rt.Fatalf("%d should have been removed", v)
			}
		}
		require.Len(rt, got, len(items)-len(arr.Intersect(items, drop)))
	})
}

func TestFirstNRestProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.Int()).Draw(rt, "items")
		n := rapid.IntRange(0, len(items)).Draw(rt, "n")

		got := arr.Concat(arr.FirstN(items, n), arr.Rest(items, n))
		require.Len(rt, got, len(items))
		for i := range items {
			require.Equal(rt, items[i], got[i])
		}
	})
}
