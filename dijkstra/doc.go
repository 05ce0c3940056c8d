// Package dijkstra computes least-cost routes across a terrain cost grid
// with Dijkstra's single-source shortest-path algorithm.
//
// Overview:
//
//   - The grid is an implicit directed graph: each cell is a vertex, and each
//     Moveset-permitted neighbor is an edge whose weight is the cost of the
//     cell being entered. Entering a cell always costs the same, whatever the
//     direction of entry.
//   - The origin's own cost is counted: a route's cost is the sum of every
//     cell on it, endpoints included.
//   - Alongside the cell sequence the planner returns one Direction token per
//     step ('u', 'd', 'l', 'r').
//
// When to use:
//
//   - Tile-based games and simulations where terrain has a price of entry.
//   - Demo and test fixtures for routing UIs, together with package hexgrid.
//
// Key features:
//
//   - Functional options select origin, destination, moveset and behavior
//     without changing the API signature.
//   - WithEarlyExit: stop as soon as the destination is settled. Costs never
//     change; only the amount of work does.
//   - WithImpassableCost: cells whose cost is ≥ threshold act as walls.
//   - WithStrictReachability: report ErrUnreachable instead of the
//     single-cell fallback route.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = W×H, since each cell has at most 4 out-edges.
//   - Space: O(V) for flat distance, predecessor and settled arrays, plus
//     O(V) heap entries under lazy decrease-key.
//   - The default run relaxes every reachable cell before returning.
//
// Unreachable destinations:
//
//	Without WithStrictReachability an unreachable destination yields
//	Path == [destination], Directions == [], Reachable == false and
//	Cost == math.MaxInt64. Origin == destination yields the same Path and
//	Directions shape but Reachable == true and Cost == grid[origin].
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid is nil or has no rows.
//   - ErrOutOfBounds:      origin or destination lies outside the grid.
//   - ErrNonAdjacentStep:  path reconstruction produced a step that is not a
//     single axis-aligned move (internal consistency failure).
//   - ErrUnreachable:      strict mode only.
//   - gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular,
//     gridgraph.ErrNegativeCost: shape and value validation.
//
// Thread safety:
//
//   - Every call owns its state; concurrent calls on the same input grid are
//     safe as long as nobody mutates the grid meanwhile.
package dijkstra
