package chain_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore/chain"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkChainMapAnyShape(b *testing.B) {
	items := makeInts(10_000)
	double := func(v any) any { return v.(int) * 2 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.From(items).Map(double)
	}
}

func BenchmarkChainMapReflected(b *testing.B) {
	items := makeInts(10_000)
	double := func(n int) int { return n * 2 }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.From(items).Map(double)
	}
}

func BenchmarkChainPipeline(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.From(items).
			Select(func(v any) bool { return v.(int)%3 == 0 }).
			Uniq().
			Reverse().
			FirstN(10)
	}
}

func BenchmarkPushPop(b *testing.B) {
	c := chain.Empty()
	for i := 0; i < b.N; i++ {
		c.Push(i)
		c.Pop()
	}
}
