package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphx/bfs"
	"github.com/katalvlaran/graphx/core"
)

// BenchmarkRun_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkRun_Chain(b *testing.B) {
	const N = 10000
	g, err := core.NewGraph(N + 1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(core.Scalar(i), core.Scalar(i+1), 0)
	}
	t, err := bfs.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Clear()
		_ = t.Run(core.Scalar(0))
	}
}

// BenchmarkRun_Grid measures BFS on an M×M grid of Pair-keyed cells.
func BenchmarkRun_Grid(b *testing.B) {
	const M = 100
	g, err := core.NewGraph(M*M, core.WithDirected(false))
	if err != nil {
		b.Fatal(err)
	}
	for r := 0; r < M; r++ {
		for c := 0; c < M; c++ {
			if c+1 < M {
				_ = g.AddEdge(core.Pair(r, c), core.Pair(r, c+1), 0)
			}
			if r+1 < M {
				_ = g.AddEdge(core.Pair(r, c), core.Pair(r+1, c), 0)
			}
		}
	}
	t, err := bfs.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M*M + 2*M*(M-1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Clear()
		_ = t.Run(core.Pair(0, 0))
	}
}

// BenchmarkRun_RandomSparse measures BFS on a sparse random directed graph.
func BenchmarkRun_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g, err := core.NewGraph(V)
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < E; k++ {
		_ = g.AddEdge(core.Scalar(rnd.Intn(V)), core.Scalar(rnd.Intn(V)), 0)
	}
	t, err := bfs.New(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Clear()
		_ = t.Run(core.Scalar(0))
	}
}
