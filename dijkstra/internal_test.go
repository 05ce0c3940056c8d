package dijkstra

import (
	"container/heap"
	"errors"
	"testing"

	"github.com/katalvlaran/hexterrain/gridgraph"
)

// TestStepDirection checks every axis-aligned delta and rejects the rest.
func TestStepDirection(t *testing.T) {
	o := gridgraph.Position{X: 3, Y: 3}
	ok := []struct {
		to   gridgraph.Position
		want Direction
	}{
		{gridgraph.Position{X: 4, Y: 3}, DirRight},
		{gridgraph.Position{X: 2, Y: 3}, DirLeft},
		{gridgraph.Position{X: 3, Y: 4}, DirDown},
		{gridgraph.Position{X: 3, Y: 2}, DirUp},
	}
	for _, tc := range ok {
		got, err := stepDirection(o, tc.to)
		if err != nil || got != tc.want {
			t.Errorf("stepDirection(%s,%s) = %s, %v; want %s", o, tc.to, got, err, tc.want)
		}
	}

	bad := []gridgraph.Position{
		{X: 3, Y: 3}, // zero
		{X: 4, Y: 4}, // diagonal
		{X: 2, Y: 4},
	}
	for _, to := range bad {
		if _, err := stepDirection(o, to); !errors.Is(err, ErrNonAdjacentStep) {
			t.Errorf("stepDirection(%s,%s) error = %v; want ErrNonAdjacentStep", o, to, err)
		}
	}
}

// TestResult_CorruptPredecessor forces a diagonal predecessor link and
// expects reconstruction to fail loudly instead of emitting a bad route.
func TestResult_CorruptPredecessor(t *testing.T) {
	gg, err := gridgraph.New([][]int{{1, 1}, {1, 1}}, gridgraph.AllMoves)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := DefaultOptions()
	r := newRunner(gg, cfg, gridgraph.Position{X: 1, Y: 1})
	r.init()
	r.process()

	r.prev[r.dst] = r.src // (0,0) → (1,1) is diagonal
	if _, err := r.result(); !errors.Is(err, ErrNonAdjacentStep) {
		t.Fatalf("result() error = %v; want ErrNonAdjacentStep", err)
	}
}

// TestCellPQ_Order checks the heap pops in ascending cost.
func TestCellPQ_Order(t *testing.T) {
	gg, _ := gridgraph.New([][]int{{1}}, gridgraph.AllMoves)
	r := newRunner(gg, DefaultOptions(), gridgraph.Position{})
	for i, c := range []int64{5, 1, 4, 2, 3} {
		r.pq = append(r.pq, cellItem{idx: i, cost: c})
	}
	heap.Init(&r.pq)
	var prev int64 = -1
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(cellItem)
		if it.cost < prev {
			t.Fatalf("heap popped %d after %d", it.cost, prev)
		}
		prev = it.cost
	}
}
