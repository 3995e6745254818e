// Package order_test: benchmarks for refinement and the transitive engine
// on chain- and diamond-shaped graphs of realistic trace sizes.
package order_test

import (
	"testing"

	"github.com/katalvlaran/intorder/order"
)

// buildChain links n unbounded nodes with ≤ edges, with a single strict
// edge in the middle so strict queries must walk the chain.
func buildChain(n int) []*order.Node {
	nodes := make([]*order.Node, n)
	for i := range nodes {
		nodes[i] = order.New()
	}
	for i := 0; i+1 < n; i++ {
		if i == n/2 {
			if err := nodes[i].MakeLt(nodes[i+1]); err != nil {
				panic(err)
			}

			continue
		}
		if err := nodes[i].MakeLe(nodes[i+1]); err != nil {
			panic(err)
		}
	}

	return nodes
}

func BenchmarkMakeLt_FreshPair(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x, y := order.New(), order.New()
		if err := x.MakeLt(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKnownLt_Chain64(b *testing.B) {
	nodes := buildChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !nodes[0].KnownLt(nodes[len(nodes)-1]) {
			b.Fatal("expected strict order across the chain")
		}
	}
}

func BenchmarkKnownLe_Chain64(b *testing.B) {
	nodes := buildChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !nodes[0].KnownLe(nodes[len(nodes)-1]) {
			b.Fatal("expected non-strict order across the chain")
		}
	}
}

func BenchmarkKnownLt_Unprovable(b *testing.B) {
	// Worst case: the engine exhausts the graph without an early exit.
	nodes := buildChain(64)
	last := order.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if nodes[0].KnownLt(last) {
			b.Fatal("unrelated node must stay unknown")
		}
	}
}
