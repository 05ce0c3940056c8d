// Package gridgraph treats a rectangular 2D grid of movement costs as an
// implicit directed graph, restricted to an axis-aligned moveset.
//
// What:
//
//   - GridGraph wraps a validated [][]int cost grid together with a Moveset.
//   - Position{X, Y} addresses a cell: X is the column, Y is the row.
//     Costs are always looked up as CellValues[Y][X].
//   - Neighbors(p) yields the in-bounds cells reachable in one move, in the
//     fixed order right, left, down, up.
//   - Reachable(origin) floods the grid under the moveset (BFS).
//
// Why:
//
//   - Terrain maps: every cell carries the price of entering it.
//   - Restricted movement: a Moveset such as "rd" models one-way scrolling
//     or conveyor-like terrain.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (deep copy).
//   - Neighbors:  O(1), at most 4 results.
//   - Reachable:  O(W×H×d), Memory: O(W×H)   (d = number of permitted moves, ≤ 4).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrBadMoveset: a moveset string contains an unknown direction letter.
package gridgraph
