package funcs

import "errors"

var (
	// ErrInvalidArgument is returned when a value that must be invocable is
	// not, or when arguments cannot be passed to a wrapped func.
	ErrInvalidArgument = errors.New("funcs: invalid argument")

	// ErrInvalidOption is returned by [MemoizeWith] for out-of-range options.
	ErrInvalidOption = errors.New("funcs: invalid option")
)
