package chain

import (
	"errors"

	"github.com/hasbyte1/go-underscore/collections"
)

// Operation is a forwarded operation. It receives the held value followed by
// the call's arguments and returns the new held value.
type Operation func(held any, args ...any) (any, error)

// Operation names accepted by [Chain.Call].
const (
	OpEach      = "each"
	OpMap       = "map"
	OpReduce    = "reduce"
	OpInject    = "inject"
	OpDetect    = "detect"
	OpFind      = "find"
	OpSelect    = "select"
	OpFilter    = "filter"
	OpReject    = "reject"
	OpAll       = "all"
	OpEvery     = "every"
	OpAny       = "any"
	OpSome      = "some"
	OpIncludes  = "includes"
	OpContains  = "contains"
	OpInvoke    = "invoke"
	OpPluck     = "pluck"
	OpSize      = "size"
	OpTap       = "tap"
	OpFirst     = "first"
	OpFirstN    = "firstN"
	OpLast      = "last"
	OpRest      = "rest"
	OpCompact   = "compact"
	OpFlatten   = "flatten"
	OpWithout   = "without"
	OpUniq      = "uniq"
	OpIndexOf   = "indexOf"
	OpIntersect = "intersect"
	OpZip       = "zip"
	OpConcat    = "concat"
	OpReverse   = "reverse"
	OpSortBy    = "sortBy"
	OpMax       = "max"
	OpMin       = "min"
	OpDelete    = "delete"
	OpDeleteKey = "deleteKey"
	OpGetPath   = "getPath"
	OpHasPath   = "hasPath"
	OpWrap      = "wrap"
	OpCurry     = "curry"
	OpCompose   = "compose"
	OpOnce      = "once"
	OpAfter     = "after"
	OpMemoize   = "memoize"
	OpTimes     = "times"
	OpIdentity  = "identity"
	OpCamelize  = "camelize"
	OpWords     = "words"
)

// registry is filled in init because wrap resolves names through it.
var registry map[string]Operation

func init() {
	registry = map[string]Operation{
		OpEach:      opEach,
		OpMap:       opMap,
		OpReduce:    opReduce,
		OpInject:    opReduce,
		OpDetect:    opDetect,
		OpFind:      opDetect,
		OpSelect:    opSelect,
		OpFilter:    opSelect,
		OpReject:    opReject,
		OpAll:       opAll,
		OpEvery:     opAll,
		OpAny:       opAny,
		OpSome:      opAny,
		OpIncludes:  opIncludes,
		OpContains:  opIncludes,
		OpInvoke:    opInvoke,
		OpPluck:     opPluck,
		OpSize:      opSize,
		OpTap:       opTap,
		OpFirst:     opFirst,
		OpFirstN:    opFirstN,
		OpLast:      opLast,
		OpRest:      opRest,
		OpCompact:   opCompact,
		OpFlatten:   opFlatten,
		OpWithout:   opWithout,
		OpUniq:      opUniq,
		OpIndexOf:   opIndexOf,
		OpIntersect: opIntersect,
		OpZip:       opZip,
		OpConcat:    opConcat,
		OpReverse:   opReverse,
		OpSortBy:    opSortBy,
		OpMax:       opMax,
		OpMin:       opMin,
		OpDelete:    opDelete,
		OpDeleteKey: opDeleteKey,
		OpGetPath:   opGetPath,
		OpHasPath:   opHasPath,
		OpWrap:      opWrap,
		OpCurry:     opCurry,
		OpCompose:   opCompose,
		OpOnce:      opOnce,
		OpAfter:     opAfter,
		OpMemoize:   opMemoize,
		OpTimes:     opTimes,
		OpIdentity:  opIdentity,
		OpCamelize:  opCamelize,
		OpWords:     opWords,
	}
}

// Names returns every name [Chain.Call] accepts, in ascending order.
func Names() []string {
	return collections.Keys(registry)
}

// Has reports whether name is a registered operation.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// apply runs op and returns as errors the panics raised by its callbacks:
// ErrInvalidArgument from funcs.AsFunc adapters and opFailure from functions
// resolved by name. Any other panic is re-raised.
func apply(op Operation, held any, args []any) (out any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var failed opFailure
		if e, ok := r.(error); ok && (errors.As(e, &failed) || errors.Is(e, ErrInvalidArgument)) {
			err = e
			return
		}
		panic(r)
	}()
	return op(held, args...)
}
