// Package gridgraph defines core types, movesets, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/hexterrain.
package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBadMoveset indicates an unknown direction letter in a moveset.
	ErrBadMoveset = errors.New("gridgraph: unknown direction in moveset")
)

// Position addresses a single cell. X indexes columns, Y indexes rows.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Moveset is a bit set over the four axis-aligned moves.
type Moveset uint8

const (
	// Up moves to the previous row (Y-1).
	Up Moveset = 1 << iota
	// Down moves to the next row (Y+1).
	Down
	// Left moves to the previous column (X-1).
	Left
	// Right moves to the next column (X+1).
	Right

	// AllMoves permits every axis-aligned move.
	AllMoves = Up | Down | Left | Right
)

// Has reports whether every move in m is permitted by ms.
func (ms Moveset) Has(m Moveset) bool { return ms&m == m }

// String renders the moveset as its direction letters in "udlr" order.
func (ms Moveset) String() string {
	var sb strings.Builder
	for _, s := range moveLetters {
		if ms.Has(s.move) {
			sb.WriteByte(s.letter)
		}
	}
	return sb.String()
}

// moveLetters pairs each move with its wire letter.
var moveLetters = [...]struct {
	move   Moveset
	letter byte
}{
	{Up, 'u'},
	{Down, 'd'},
	{Left, 'l'},
	{Right, 'r'},
}

// ParseMoveset converts a string of direction letters ("udlr", "rd", ...)
// into a Moveset. Letters are case-insensitive and may repeat.
// An empty string yields an empty Moveset, from which nothing but the
// origin is reachable. Any other letter returns ErrBadMoveset.
func ParseMoveset(s string) (Moveset, error) {
	var ms Moveset
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20 // ASCII lower-case
		found := false
		for _, ml := range moveLetters {
			if ml.letter == c {
				ms |= ml.move
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrBadMoveset, s[i], i)
		}
	}
	return ms, nil
}

// step is a precomputed move: the permission bit it requires and its offset.
type step struct {
	move   Moveset
	dx, dy int
}

// stepOrder fixes neighbor generation order: right, left, down, up.
var stepOrder = [...]step{
	{Right, 1, 0},
	{Left, -1, 0},
	{Down, 0, 1},
	{Up, 0, -1},
}

// GridGraph treats a 2D cost grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the cost of
// entering cell (x, y). Moves selects which neighbors are adjacent.
// offsets is precomputed from Moves for efficient adjacency lookups.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Moves         Moveset
	offsets       []step
}
