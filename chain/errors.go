package chain

import (
	"errors"

	"github.com/hasbyte1/go-underscore/funcs"
)

// Sentinel errors returned by Chain operations.
var (
	// ErrMethodNotFound is returned when a forwarded call names no
	// registered operation.
	ErrMethodNotFound = errors.New("chain: method not found")

	// ErrOutOfRange is returned when an index is outside [0, Count()-1].
	ErrOutOfRange = errors.New("chain: index out of range")

	// ErrKeyNotFound is returned when a key is absent from a held mapping.
	ErrKeyNotFound = errors.New("chain: key not found")

	// ErrInvalidKey is returned when a key has the wrong type for the held
	// value: sequences take integer keys, mappings take string keys.
	ErrInvalidKey = errors.New("chain: invalid key")

	// ErrNotIndexable is returned by indexed access on a scalar held value.
	ErrNotIndexable = errors.New("chain: held value is not indexable")

	// ErrNotSequence is returned when an operation needs a sequence or
	// mapping but the held value is something else.
	ErrNotSequence = errors.New("chain: held value is not a sequence")

	// ErrInvalidArgument is returned when an argument, usually a callback,
	// has the wrong shape. It is the same value as funcs.ErrInvalidArgument.
	ErrInvalidArgument = funcs.ErrInvalidArgument
)
