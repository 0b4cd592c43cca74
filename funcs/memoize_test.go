package funcs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/funcs"
)

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func TestMemoizeFibonacci(t *testing.T) {
	var fastFib funcs.Func
	fastFib = funcs.Memoize(func(args ...any) any {
		n := args[0].(int)
		if n < 2 {
			return n
		}
		return fastFib(n-1).(int) + fastFib(n-2).(int)
	})

	require.Equal(t, 55, fib(10))
	require.Equal(t, 55, fastFib(10))
}

func TestMemoizeCachesByArguments(t *testing.T) {
	calls := 0
	add := funcs.Memoize(func(args ...any) any {
		calls++
		return args[0].(int) + args[1].(int)
	})

	require.Equal(t, 3, add(1, 2))
	require.Equal(t, 3, add(1, 2))
	require.Equal(t, 1, calls)

	require.Equal(t, 5, add(2, 3))
	require.Equal(t, 2, calls)
}

func TestMemoizeCachesZeroResults(t *testing.T) {
	calls := 0
	zero := funcs.Memoize(func(...any) any { calls++; return nil })
	zero("a")
	zero("a")
	require.Equal(t, 1, calls)
}

func TestMemoizeDistinguishesArgumentTypes(t *testing.T) {
	calls := 0
	f := funcs.Memoize(func(args ...any) any { calls++; return fmt.Sprintf("%T", args[0]) })
	require.Equal(t, "int", f(1))
	require.Equal(t, "string", f("1"))
	require.Equal(t, 2, calls)
}

func TestMemoizeCustomHasher(t *testing.T) {
	calls := 0
	byLength := func(args []any) string { return fmt.Sprint(len(args[0].(string))) }
	f := funcs.Memoize(func(args ...any) any { calls++; return args[0] }, byLength)

	require.Equal(t, "abc", f("abc"))
	require.Equal(t, "abc", f("xyz"))
	require.Equal(t, 1, calls)
}

func TestMemoizeWithMaxEntries(t *testing.T) {
	calls := 0
	opts := funcs.DefaultMemoizeOptions()
	opts.MaxEntries = 2
	f, err := funcs.MemoizeWith(func(args ...any) any { calls++; return args[0] }, opts)
	require.NoError(t, err)

	f(1)
	f(2)
	f(3) // evicts 1
	require.Equal(t, 3, calls)

	f(2)
	require.Equal(t, 3, calls)

	f(1)
	require.Equal(t, 4, calls)
}

func TestMemoizeWithInvalidOptions(t *testing.T) {
	_, err := funcs.MemoizeWith(funcs.Identity(), funcs.MemoizeOptions{MaxEntries: -1})
	require.ErrorIs(t, err, funcs.ErrInvalidOption)
}

func TestHashArgsIsStable(t *testing.T) {
	require.Equal(t, funcs.HashArgs([]any{1, "a"}), funcs.HashArgs([]any{1, "a"}))
	require.NotEqual(t, funcs.HashArgs([]any{1, "a"}), funcs.HashArgs([]any{"a", 1}))
	require.Len(t, funcs.HashArgs(nil), 64)
}

func TestMemoizeKey(t *testing.T) {
	calls := 0
	var fastFib func(int) int
	fastFib = funcs.MemoizeKey(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fastFib(n-1) + fastFib(n-2)
	})

	require.Equal(t, fib(30), fastFib(30))
	require.Equal(t, 31, calls)
}
