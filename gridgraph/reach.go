package gridgraph

// Reachable floods the grid from origin under gg.Moves and returns a
// row-major slice where seen[Index(p)] is true iff p can be reached from
// origin (origin itself included). Costs do not matter here, only adjacency.
//
// Returns ErrOutOfBounds if origin is outside the grid.
//
// Time:   O(W·H·d), where d ≤ 4.
// Memory: O(W·H) for visited flags and the queue.
func (gg *GridGraph) Reachable(origin Position) ([]bool, error) {
	if err := gg.CheckBounds(origin); err != nil {
		return nil, err
	}
	seen := make([]bool, gg.Len())
	i0 := gg.Index(origin)
	seen[i0] = true

	// BFS over indices; queue grows in place
	queue := make([]int, 1, gg.Len())
	queue[0] = i0
	nbrs := make([]Position, 0, len(stepOrder))
	for qi := 0; qi < len(queue); qi++ {
		u := gg.Coordinate(queue[qi])
		nbrs = gg.Neighbors(nbrs[:0], u)
		for _, v := range nbrs {
			vi := gg.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return seen, nil
}

// CanReach reports whether to is reachable from from under gg.Moves.
func (gg *GridGraph) CanReach(from, to Position) (bool, error) {
	if err := gg.CheckBounds(to); err != nil {
		return false, err
	}
	seen, err := gg.Reachable(from)
	if err != nil {
		return false, err
	}
	return seen[gg.Index(to)], nil
}
