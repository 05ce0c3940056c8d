// Package hexterrain is a small toolkit for least-cost routing across
// terrain grids whose cells carry a price of entry.
//
// What is inside?
//
//	hexgrid/   wire codec: hex-string grids ↔ integer cost grids, random terrain
//	gridgraph/ grid geometry: positions, movesets, neighbors, reachability
//	dijkstra/  least-cost path + 'u'/'d'/'l'/'r' direction tokens
//
// and a thin HTTP service, cmd/terraind, that exposes generation and
// routing as JSON endpoints.
//
// Quick ASCII example (costs, moves "udlr", (0,1) → (2,1)):
//
//	 1   1   1        ┌───────┐
//	 1  99   1        o   X   d
//	 9   9   9
//
// The straight line costs 1+99+1; the detour over the top costs 5.
//
//	go get github.com/katalvlaran/hexterrain
package hexterrain
