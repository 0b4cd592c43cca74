package chain

// Chainable lists the forwarded operations available as methods. Each one is
// a shorthand for [Chain.Call] with the matching Op name; callbacks may be
// anything funcs.AsFunc accepts.
type Chainable interface {
	// Collections.
	Each(fn any) *Chain
	Map(fn any) *Chain
	Reduce(fn any, initial ...any) *Chain
	Detect(pred any) *Chain
	Select(pred any) *Chain
	Reject(pred any) *Chain
	Every(pred ...any) *Chain
	Some(pred ...any) *Chain
	Includes(value any) *Chain
	Invoke(method string, args ...any) *Chain
	Pluck(path string) *Chain
	Size() *Chain
	Tap(fn any) *Chain

	// Arrays.
	First() *Chain
	FirstN(n int) *Chain
	Last() *Chain
	Rest(n ...int) *Chain
	Compact() *Chain
	Flatten() *Chain
	Without(values ...any) *Chain
	Uniq(sorted ...bool) *Chain
	IndexOf(value any) *Chain
	Intersect(lists ...any) *Chain
	Zip(lists ...any) *Chain
	Concat(lists ...any) *Chain
	Reverse() *Chain
	SortBy(key ...any) *Chain
	Max(key ...any) *Chain
	Min(key ...any) *Chain
	RemoveValue(value any) *Chain
	RemoveKey(key any) *Chain
	GetPath(path string) *Chain
	HasPath(path string) *Chain

	// Functions.
	Wrap(wrapper any) *Chain
	Curry(args ...any) *Chain
	Compose(fns ...any) *Chain
	Once() *Chain
	After(n int) *Chain
	Memoize(hasher ...func([]any) string) *Chain
	Times(fn any, args ...any) *Chain
	Identity() *Chain

	// Strings.
	Camelize(pascalCase ...bool) *Chain
	Words() *Chain
}

var _ Chainable = (*Chain)(nil)

func anys[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func (c *Chain) Each(fn any) *Chain { return c.Call(OpEach, fn) }
func (c *Chain) Map(fn any) *Chain { return c.Call(OpMap, fn) }
func (c *Chain) Reduce(fn any, initial ...any) *Chain { return c.Call(OpReduce, append([]any{fn}, initial...)...) }
func (c *Chain) Detect(pred any) *Chain { return c.Call(OpDetect, pred) }
func (c *Chain) Select(pred any) *Chain { return c.Call(OpSelect, pred) }
func (c *Chain) Reject(pred any) *Chain { return c.Call(OpReject, pred) }
func (c *Chain) Every(pred ...any) *Chain { return c.Call(OpEvery, pred...) }
func (c *Chain) Some(pred ...any) *Chain { return c.Call(OpSome, pred...) }
func (c *Chain) Includes(value any) *Chain { return c.Call(OpIncludes, value) }
func (c *Chain) Invoke(method string, args ...any) *Chain { return c.Call(OpInvoke, append([]any{method}, args...)...) }
func (c *Chain) Pluck(path string) *Chain { return c.Call(OpPluck, path) }
func (c *Chain) Size() *Chain { return c.Call(OpSize) }
func (c *Chain) Tap(fn any) *Chain { return c.Call(OpTap, fn) }

func (c *Chain) First() *Chain { return c.Call(OpFirst) }
func (c *Chain) FirstN(n int) *Chain { return c.Call(OpFirstN, n) }
func (c *Chain) Last() *Chain { return c.Call(OpLast) }
func (c *Chain) Rest(n ...int) *Chain { return c.Call(OpRest, anys(n)...) }
func (c *Chain) Compact() *Chain { return c.Call(OpCompact) }
func (c *Chain) Flatten() *Chain { return c.Call(OpFlatten) }
func (c *Chain) Without(values ...any) *Chain { return c.Call(OpWithout, values...) }
func (c *Chain) Uniq(sorted ...bool) *Chain { return c.Call(OpUniq, anys(sorted)...) }
func (c *Chain) IndexOf(value any) *Chain { return c.Call(OpIndexOf, value) }
func (c *Chain) Intersect(lists ...any) *Chain { return c.Call(OpIntersect, lists...) }
func (c *Chain) Zip(lists ...any) *Chain { return c.Call(OpZip, lists...) }
func (c *Chain) Concat(lists ...any) *Chain { return c.Call(OpConcat, lists...) }
func (c *Chain) Reverse() *Chain { return c.Call(OpReverse) }
func (c *Chain) SortBy(key ...any) *Chain { return c.Call(OpSortBy, key...) }
func (c *Chain) Max(key ...any) *Chain { return c.Call(OpMax, key...) }
func (c *Chain) Min(key ...any) *Chain { return c.Call(OpMin, key...) }
func (c *Chain) RemoveValue(value any) *Chain { return c.Call(OpDelete, value) }
func (c *Chain) RemoveKey(key any) *Chain { return c.Call(OpDeleteKey, key) }
func (c *Chain) GetPath(path string) *Chain { return c.Call(OpGetPath, path) }
func (c *Chain) HasPath(path string) *Chain { return c.Call(OpHasPath, path) }

func (c *Chain) Wrap(wrapper any) *Chain { return c.Call(OpWrap, wrapper) }
func (c *Chain) Curry(args ...any) *Chain { return c.Call(OpCurry, args...) }
func (c *Chain) Compose(fns ...any) *Chain { return c.Call(OpCompose, fns...) }
func (c *Chain) Once() *Chain { return c.Call(OpOnce) }
func (c *Chain) After(n int) *Chain { return c.Call(OpAfter, n) }
func (c *Chain) Times(fn any, args ...any) *Chain { return c.Call(OpTimes, append([]any{fn}, args...)...) }
func (c *Chain) Identity() *Chain { return c.Call(OpIdentity) }

func (c *Chain) Memoize(hasher ...func([]any) string) *Chain {
	if len(hasher) == 0 {
		return c.Call(OpMemoize)
	}
	return c.Call(OpMemoize, hasher[0])
}

func (c *Chain) Camelize(pascalCase ...bool) *Chain { return c.Call(OpCamelize, anys(pascalCase)...) }
func (c *Chain) Words() *Chain { return c.Call(OpWords) }
