package funcs

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

// MemoizeOptions configures a callable built by [MemoizeWith].
type MemoizeOptions struct {
	// Hasher derives the cache key from the call arguments.
	// Defaults to [HashArgs] when nil.
	Hasher func(args []any) string

	// MaxEntries bounds the cache. When full, the oldest entry is evicted.
	// Zero means unbounded.
	MaxEntries int
}

// DefaultMemoizeOptions returns MemoizeOptions with an unbounded cache keyed
// by [HashArgs].
func DefaultMemoizeOptions() MemoizeOptions {
	return MemoizeOptions{Hasher: HashArgs}
}

func validateMemoizeOptions(opts MemoizeOptions) error {
	if opts.MaxEntries < 0 {
		return fmt.Errorf("%w: memoize max_entries must be ≥ 0, got %d", ErrInvalidOption, opts.MaxEntries)
	}
	return nil
}

// HashArgs is the default memoize key: the hex BLAKE2b-256 digest of the
// %#v rendering of each argument, joined by commas. Arguments that print
// the same (for instance two pointers to equal structs) share a key.
func HashArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	sum := blake2b.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Memoization
// ─────────────────────────────────────────────────────────────────────────────

// Memoize returns a callable that caches fn's results by argument key.
// The key comes from hasher[0] when given, otherwise from [HashArgs].
// A result is cached even when it is nil or zero.
func Memoize(fn Func, hasher ...func(args []any) string) Func {
	opts := DefaultMemoizeOptions()
	if len(hasher) > 0 && hasher[0] != nil {
		opts.Hasher = hasher[0]
	}
	// Default options always validate.
	memo, _ := MemoizeWith(fn, opts)
	return memo
}

// MemoizeWith is [Memoize] with explicit options.
func MemoizeWith(fn Func, opts MemoizeOptions) (Func, error) {
	if err := validateMemoizeOptions(opts); err != nil {
		return nil, err
	}
	if opts.Hasher == nil {
		opts.Hasher = HashArgs
	}

	results := make(map[string]any)
	var order []string

	return func(args ...any) any {
		key := opts.Hasher(args)
		if v, ok := results[key]; ok {
			return v
		}
		v := fn(args...)
		if opts.MaxEntries > 0 && len(results) >= opts.MaxEntries {
			delete(results, order[0])
			order = order[1:]
		}
		results[key] = v
		order = append(order, key)
		return v
	}, nil
}

// MemoizeKey is the typed form of [Memoize] for single-argument functions
// with a comparable argument. The returned function may be referenced from
// inside fn to memoize recursive calls.
func MemoizeKey[K comparable, V any](fn func(K) V) func(K) V {
	results := make(map[K]V)
	return func(k K) V {
		if v, ok := results[k]; ok {
			return v
		}
		v := fn(k)
		results[k] = v
		return v
	}
}
