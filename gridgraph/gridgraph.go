// Package gridgraph provides utilities to treat a 2D grid of integer cell costs
// as a graph. It supports:
//
//   - Any subset of the four axis-aligned moves (see Moveset)
//   - Row-major indexing for flat per-cell state arrays
//   - Reachability flooding under a moveset
package gridgraph

import "fmt"

// New constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any cell is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, moves Moveset) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, c := range values[y] {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, x, y, c)
			}
			cells[y][x] = c
		}
	}
	// Precompute permitted offsets in r, l, d, u order
	offsets := make([]step, 0, len(stepOrder))
	for _, s := range stepOrder {
		if moves.Has(s.move) {
			offsets = append(offsets, s)
		}
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		CellValues: cells,
		Moves:      moves,
		offsets:    offsets,
	}, nil
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int { return gg.Width * gg.Height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// CheckBounds returns ErrOutOfBounds, annotated with p and the grid size,
// if p is outside the grid.
func (gg *GridGraph) CheckBounds(p Position) error {
	if gg.InBounds(p) {
		return nil
	}
	return fmt.Errorf("%w: %s not in %dx%d grid", ErrOutOfBounds, p, gg.Width, gg.Height)
}

// Cost returns the cost of entering p. p must be in bounds.
func (gg *GridGraph) Cost(p Position) int {
	return gg.CellValues[p.Y][p.X]
}

// Neighbors appends to dst the positions adjacent to p under gg.Moves,
// in the order right, left, down, up, skipping anything off-grid.
// Passing a reused dst[:0] keeps hot loops allocation-free.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(dst []Position, p Position) []Position {
	for _, s := range gg.offsets {
		q := Position{X: p.X + s.dx, Y: p.Y + s.dy}
		if gg.InBounds(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p Position) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{X: idx % gg.Width, Y: idx / gg.Width}
}
