package chain

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/collections"
)

// Iterable is implemented by values whose entries can be walked in order.
type Iterable interface {
	// All yields (key, value) pairs: (int, element) for a sequence and
	// (string, value) in ascending key order for a mapping.
	All() iter.Seq2[any, any]

	// Keys returns the keys All would yield.
	Keys() []any
}

// Countable is implemented by values that know their number of entries.
type Countable interface {
	Count() int
}

// Indexable is implemented by values that support keyed access.
type Indexable interface {
	Get(key any) (any, error)
	Set(key, value any) error
	Exists(key any) bool
	Delete(key any) error
}

var (
	_ Iterable  = (*Chain)(nil)
	_ Countable = (*Chain)(nil)
	_ Indexable = (*Chain)(nil)
)

// All iterates over the held value. Scalars and nil yield nothing.
func (c *Chain) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		switch h := c.value.(type) {
		case []any:
			for i, v := range h {
				if !yield(i, v) {
					return
				}
			}
		case map[string]any:
			for _, k := range collections.Keys(h) {
				if !yield(k, h[k]) {
					return
				}
			}
		}
	}
}

// Keys returns the indices of a held sequence or the sorted keys of a held
// mapping.
func (c *Chain) Keys() []any {
	keys := []any{}
	for k := range c.All() {
		keys = append(keys, k)
	}
	return keys
}

// Count returns the number of entries in the held value as reported by
// collections.Size: nil counts 0 and a scalar counts 1.
func (c *Chain) Count() int {
	return collections.Size(c.value)
}

// Get returns the entry at key.
func (c *Chain) Get(key any) (any, error) {
	switch h := c.value.(type) {
	case []any:
		i, err := index(h, key)
		if err != nil {
			return nil, err
		}
		return h[i], nil
	case map[string]any:
		k, err := mapKey(key)
		if err != nil {
			return nil, err
		}
		v, ok := h[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, k)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIndexable, c.value)
}

// Set stores value at key. On a sequence, a nil key appends and an existing
// index is overwritten; a nil held value is treated as an empty sequence.
func (c *Chain) Set(key, value any) error {
	if c.value == nil {
		c.value = []any{}
	}
	switch h := c.value.(type) {
	case []any:
		if key == nil {
			c.value = append(h, value)
			return nil
		}
		i, err := index(h, key)
		if err != nil {
			return err
		}
		h[i] = value
		return nil
	case map[string]any:
		k, err := mapKey(key)
		if err != nil {
			return err
		}
		h[k] = value
		return nil
	}
	return fmt.Errorf("%w: %T", ErrNotIndexable, c.value)
}

// Exists reports whether key addresses an entry of the held value.
func (c *Chain) Exists(key any) bool {
	_, err := c.Get(key)
	return err == nil
}

// Delete removes the entry at key. Deleting from a sequence shifts the later
// elements down by one.
func (c *Chain) Delete(key any) error {
	switch h := c.value.(type) {
	case []any:
		i, err := index(h, key)
		if err != nil {
			return err
		}
		arr.DeleteAt(&h, i)
		c.value = h
		return nil
	case map[string]any:
		k, err := mapKey(key)
		if err != nil {
			return err
		}
		if _, ok := arr.DeleteKey(h, k); !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, k)
		}
		return nil
	}
	return fmt.Errorf("%w: %T", ErrNotIndexable, c.value)
}

func index(s []any, key any) (int, error) {
	i, ok := toInt(key)
	if !ok {
		return 0, fmt.Errorf("%w: %T for a sequence", ErrInvalidKey, key)
	}
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(s))
	}
	return i, nil
}

func mapKey(key any) (string, error) {
	k, ok := key.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T for a mapping", ErrInvalidKey, key)
	}
	return k, nil
}
