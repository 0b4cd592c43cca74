package arr

import "errors"

// ErrInvalidStep is returned by [Range] when step is zero.
var ErrInvalidStep = errors.New("arr: range step must not be zero")
