package core_test

import (
	"testing"

	"github.com/katalvlaran/graphx/core"
)

// BenchmarkKeyIndex_Resolve measures interning throughput over a stream of
// fresh and repeated composite keys.
func BenchmarkKeyIndex_Resolve(b *testing.B) {
	const N = 4096
	ix := core.NewKeyIndex()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ix.Resolve(core.Pair(i%N, (i*7)%N))
	}
}

// BenchmarkGraph_AddEdge measures edge insertion on a directed chain.
func BenchmarkGraph_AddEdge(b *testing.B) {
	const N = 10000
	g, err := core.NewGraph(N + 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(core.Scalar(i%N), core.Scalar(i%N+1), 0)
	}
}
