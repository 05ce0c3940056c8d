// Package dijkstra implements Dijkstra's shortest-path algorithm on terrain grids.
//
// It processes cells in order of increasing route cost using a min-heap
// priority queue, relaxing the moveset-permitted neighbors of each settled cell.
//
// Notes on implementation choices:
//
//   - Per-cell state lives in flat row-major slices sized once from the grid.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries for cells that are already settled.
//   - Relaxation is strict (“<”), so the first predecessor found at a given
//     cost is kept.
//   - Reachability is tracked by predecessor links, never by the cost value,
//     so a cell costing math.MaxInt64 is still a valid route.
//   - Sums that would overflow saturate at math.MaxInt64 and are flagged;
//     a destination reached only through such sums is ErrCostOverflow.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/hexterrain/gridgraph"
)

// LeastCostPath computes the cheapest route across grid from Options.Origin
// to Options.Destination, where entering a cell costs grid[y][x] and the
// origin's own cost is included.
//
// Returns:
//
//   - *Result with Path, Directions, Cost and Reachable filled in.
//   - err if inputs are invalid, or ErrUnreachable in strict mode.
//
// Preconditions and validation (in order):
//  1. grid must have at least one row (ErrNilGrid).
//  2. grid must be non-empty, rectangular and non-negative
//     (gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular, gridgraph.ErrNegativeCost).
//  3. origin and destination must be inside the grid (ErrOutOfBounds).
//  4. in strict mode, destination must be in the moveset flood of the
//     origin (ErrUnreachable, without running the heap).
//
// Complexity:
//
//   - Time:  O(V log V), V = rows×cols
//   - Space: O(V)
func LeastCostPath(grid [][]int, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid
	if len(grid) == 0 {
		return nil, ErrNilGrid
	}
	gg, err := gridgraph.New(grid, cfg.Moves)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Resolve and validate endpoints
	dst := gridgraph.Position{X: gg.Width - 1, Y: gg.Height - 1}
	if cfg.Destination != nil {
		dst = *cfg.Destination
	}
	if !gg.InBounds(cfg.Origin) {
		return nil, fmt.Errorf("%w: origin %s not in %dx%d grid", ErrOutOfBounds, cfg.Origin, gg.Width, gg.Height)
	}
	if !gg.InBounds(dst) {
		return nil, fmt.Errorf("%w: destination %s not in %dx%d grid", ErrOutOfBounds, dst, gg.Width, gg.Height)
	}

	// 4) Strict mode: cheap BFS pre-check before the heap run.
	// Walls are not part of the flood, so a pass here is not final.
	if cfg.Strict {
		ok, err := gg.CanReach(cfg.Origin, dst)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: %w", err)
		}
		if !ok {
			return nil, unreachableError(cfg, dst)
		}
	}

	// 5) Run
	r := newRunner(gg, cfg, dst)
	r.init()
	r.process()

	return r.result()
}

// runner holds the mutable state for a single planner execution.
type runner struct {
	gg      *gridgraph.GridGraph // validated, immutable grid
	options Options              // resolved configuration
	src     int                  // origin index
	dst     int                  // destination index
	dist    []int64              // index → best known route cost
	prev    []int                // index → predecessor index, -1 if none
	settled []bool               // index → cost is final
	over    []bool               // index → dist saturated by overflow
	pq      cellPQ               // min-heap, lazy decrease-key
	nbrs    []gridgraph.Position // scratch buffer for Neighbors
}

func newRunner(gg *gridgraph.GridGraph, cfg Options, dst gridgraph.Position) *runner {
	n := gg.Len()
	return &runner{
		gg:      gg,
		options: cfg,
		src:     gg.Index(cfg.Origin),
		dst:     gg.Index(dst),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		over:    make([]bool, n),
		pq:      make(cellPQ, 0, n),
		nbrs:    make([]gridgraph.Position, 0, 4),
	}
}

// init sets every tentative cost to Unreachable except the origin, whose
// tentative cost is its own cell cost, and seeds the heap with it.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	r.dist[r.src] = int64(r.gg.Cost(r.options.Origin))

	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: r.src, cost: r.dist[r.src]})
}

// process is the main loop. It repeatedly settles the cheapest unsettled cell
// and relaxes its neighbors until the heap drains, or until the destination
// is settled when EarlyExit is set.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		u := item.idx

		// Stale heap entry for a cell that is already final.
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		if r.options.EarlyExit && u == r.dst {
			return
		}
		r.relax(u)
	}
}

// reached reports whether i has a tentative route: it is the origin or has
// a predecessor.
func (r *runner) reached(i int) bool { return i == r.src || r.prev[i] >= 0 }

// relax tries to improve every unsettled neighbor of u. The candidate cost of
// neighbor v is dist[u] + cost(v), saturated at math.MaxInt64.
// Walls (cost ≥ ImpassableCost) are skipped.
func (r *runner) relax(u int) {
	up := r.gg.Coordinate(u)
	r.nbrs = r.gg.Neighbors(r.nbrs[:0], up)
	for _, vp := range r.nbrs {
		v := r.gg.Index(vp)
		if r.settled[v] {
			continue
		}
		c := int64(r.gg.Cost(vp))
		if c >= r.options.ImpassableCost {
			continue
		}
		nd, over := r.dist[u]+c, r.over[u]
		if c > math.MaxInt64-r.dist[u] {
			nd, over = math.MaxInt64, true
		}
		if r.reached(v) && nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.over[v] = over
		heap.Push(&r.pq, cellItem{idx: v, cost: nd})
	}
}

// result walks predecessor links back from the destination and derives a
// direction token for every step.
func (r *runner) result() (*Result, error) {
	dstPos := r.gg.Coordinate(r.dst)
	if !r.reached(r.dst) {
		if r.options.Strict {
			return nil, unreachableError(r.options, dstPos)
		}
		return &Result{
			Path:       []gridgraph.Position{dstPos},
			Directions: []Direction{},
			Cost:       Unreachable,
			Reachable:  false,
		}, nil
	}
	if r.over[r.dst] {
		return nil, fmt.Errorf("%w: %s → %s", ErrCostOverflow, r.options.Origin, dstPos)
	}

	path := []gridgraph.Position{dstPos}
	dirs := make([]Direction, 0)
	for at := r.dst; r.prev[at] >= 0; at = r.prev[at] {
		from, to := r.gg.Coordinate(r.prev[at]), r.gg.Coordinate(at)
		d, err := stepDirection(from, to)
		if err != nil {
			return nil, err
		}
		path = append(path, from)
		dirs = append(dirs, d)
	}
	slices.Reverse(path)
	slices.Reverse(dirs)

	return &Result{
		Path:       path,
		Directions: dirs,
		Cost:       r.dist[r.dst],
		Reachable:  true,
	}, nil
}

func unreachableError(cfg Options, dst gridgraph.Position) error {
	return fmt.Errorf("%w: %s → %s under moveset %q",
		ErrUnreachable, cfg.Origin, dst, cfg.Moves.String())
}

// stepDirection maps a single move to its token: +x→r, -x→l, +y→d, -y→u.
// Diagonal or zero deltas return ErrNonAdjacentStep.
func stepDirection(from, to gridgraph.Position) (Direction, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx > 0 && dy == 0:
		return DirRight, nil
	case dx < 0 && dy == 0:
		return DirLeft, nil
	case dy > 0 && dx == 0:
		return DirDown, nil
	case dy < 0 && dx == 0:
		return DirUp, nil
	}
	return 0, fmt.Errorf("%w: %s → %s", ErrNonAdjacentStep, from, to)
}

// cellItem is a heap entry: a cell index and the route cost it was pushed with.
type cellItem struct {
	idx  int
	cost int64
}

// cellPQ is a min-heap of cellItem ordered by cost ascending.
type cellPQ []cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
