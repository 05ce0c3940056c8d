// Package dijkstra defines result types and configuration options
// for least-cost routing on terrain grids.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hexterrain/gridgraph"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates that a nil or zero-row grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that the origin or destination lies outside the grid.
	// It wraps gridgraph.ErrOutOfBounds so either sentinel matches.
	ErrOutOfBounds = fmt.Errorf("dijkstra: %w", gridgraph.ErrOutOfBounds)

	// ErrNonAdjacentStep indicates that path reconstruction produced a step
	// that is diagonal or zero-length. It signals broken neighbor generation,
	// never bad input.
	ErrNonAdjacentStep = errors.New("dijkstra: predecessor chain contains a non-adjacent step")

	// ErrUnreachable indicates the destination cannot be reached from the origin
	// under the moveset. Only returned with WithStrictReachability.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from origin")

	// ErrCostOverflow indicates the destination is reachable but every route
	// to it sums to more than math.MaxInt64.
	ErrCostOverflow = errors.New("dijkstra: route cost overflows int64")

	// ErrBadImpassable indicates that WithImpassableCost was given a threshold ≤ 0.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// Unreachable is the Cost reported for a destination that cannot be reached.
const Unreachable = math.MaxInt64

// Direction is a single step token on a route.
type Direction byte

const (
	DirUp    Direction = 'u'
	DirDown  Direction = 'd'
	DirLeft  Direction = 'l'
	DirRight Direction = 'r'
)

// String returns the one-letter token.
func (d Direction) String() string { return string(rune(d)) }

// MarshalText renders the token as a one-letter string, so JSON encodes
// []Direction as ["r","d",...].
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return []byte{byte(d)}, nil
	}
	return nil, fmt.Errorf("dijkstra: invalid direction %q", byte(d))
}

// Result is the outcome of a single LeastCostPath call.
//
// Path         – origin → destination inclusive; [destination] when unreachable.
// Directions   – one token per transition, len(Directions) == len(Path)-1.
// Cost         – sum of all cell costs on Path, origin included; Unreachable if none.
// Reachable    – false only when the destination could not be reached.
type Result struct {
	Path       []gridgraph.Position
	Directions []Direction
	Cost       int64
	Reachable  bool
}

// Options configures the planner.
//
// Origin          – starting cell; default (0,0).
// Destination     – target cell; default bottom-right (cols-1, rows-1).
// Moves           – permitted moves; default gridgraph.AllMoves.
// EarlyExit       – stop once the destination is settled.
// Strict          – report ErrUnreachable instead of the single-cell fallback.
// ImpassableCost  – cells with cost ≥ this value are never entered.
//
//	Must be > 0. Default is math.MaxInt64 (no walls).
type Options struct {
	Origin         gridgraph.Position
	Destination    *gridgraph.Position
	Moves          gridgraph.Moveset
	EarlyExit      bool
	Strict         bool
	ImpassableCost int64
}

// Option represents a functional option for configuring LeastCostPath.
type Option func(*Options)

// WithOrigin sets the starting cell.
func WithOrigin(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Origin = p
	}
}

// WithDestination sets the target cell. Without it the bottom-right
// corner of the grid is used.
func WithDestination(p gridgraph.Position) Option {
	return func(o *Options) {
		dst := p
		o.Destination = &dst
	}
}

// WithMoveset restricts which neighbors can be entered from any cell.
func WithMoveset(m gridgraph.Moveset) Option {
	return func(o *Options) {
		o.Moves = m
	}
}

// WithEarlyExit stops the search as soon as the destination is settled.
// The returned cost is identical to a full run.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithStrictReachability makes an unreachable destination an ErrUnreachable
// error rather than a single-cell route.
func WithStrictReachability() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithImpassableCost treats every cell whose cost is ≥ threshold as a wall.
// The origin is exempt: a route may start on a wall but never enter one.
// Must pass a positive value; zero or negative cause a panic with ErrBadImpassable.
func WithImpassableCost(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.ImpassableCost = threshold
	}
}

// DefaultOptions returns an Options struct with origin (0,0), all four moves,
// full relaxation, lenient reachability and no walls.
func DefaultOptions() Options {
	return Options{
		Origin:         gridgraph.Position{},
		Moves:          gridgraph.AllMoves,
		ImpassableCost: math.MaxInt64,
	}
}
