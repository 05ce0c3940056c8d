package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hexterrain/gridgraph"
)

// BenchmarkReachable measures Reachable on a randomly generated 1000×1000
// grid with values in [0,4] under all four moves.
// Complexity: O(W×H×d)
func BenchmarkReachable(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}
	gg, err := gridgraph.New(grid, gridgraph.AllMoves)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gg.Reachable(gridgraph.Position{})
	}
}
