package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hexterrain/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or negative inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"NegativeCost", [][]int{{1, -2}}, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid, gridgraph.AllMoves)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy checks that later mutation of the input does not leak in.
func TestNew_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.New(grid, gridgraph.AllMoves)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	grid[0][0] = 99
	if got := gg.Cost(gridgraph.Position{X: 0, Y: 0}); got != 1 {
		t.Errorf("Cost(0,0) = %d after input mutation; want 1", got)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.New(grid, gridgraph.AllMoves)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []gridgraph.Position{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, p := range valid {
		if !gg.InBounds(p) {
			t.Errorf("InBounds%s=false; want true", p)
		}
	}
	invalid := []gridgraph.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if gg.InBounds(p) {
			t.Errorf("InBounds%s=true; want false", p)
		}
		if err := gg.CheckBounds(p); !errors.Is(err, gridgraph.ErrOutOfBounds) {
			t.Errorf("CheckBounds%s = %v; want ErrOutOfBounds", p, err)
		}
	}
}

// TestCost_ColumnRowConvention pins X to columns and Y to rows.
func TestCost_ColumnRowConvention(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	gg, _ := gridgraph.New(grid, gridgraph.AllMoves)
	if got := gg.Cost(gridgraph.Position{X: 2, Y: 0}); got != 3 {
		t.Errorf("Cost(2,0) = %d; want 3", got)
	}
	if got := gg.Cost(gridgraph.Position{X: 0, Y: 1}); got != 4 {
		t.Errorf("Cost(0,1) = %d; want 4", got)
	}
}

//----------------------------------------------------------------------------//
// Neighbors and Index Tests
//----------------------------------------------------------------------------//

// TestNeighbors covers moveset filtering, edge clipping and ordering.
func TestNeighbors(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	center := gridgraph.Position{X: 1, Y: 1}
	corner := gridgraph.Position{X: 0, Y: 0}
	cases := []struct {
		name  string
		moves gridgraph.Moveset
		at    gridgraph.Position
		want  []gridgraph.Position
	}{
		{"AllCenter", gridgraph.AllMoves, center, []gridgraph.Position{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}},
		{"AllCorner", gridgraph.AllMoves, corner, []gridgraph.Position{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		{"RightDown", gridgraph.Right | gridgraph.Down, center, []gridgraph.Position{{X: 2, Y: 1}, {X: 1, Y: 2}}},
		{"UpOnlyCorner", gridgraph.Up, corner, nil},
		{"Empty", 0, center, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.New(grid, tc.moves)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			got := gg.Neighbors(nil, tc.at)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors%s = %v; want %v", tc.at, got, tc.want)
			}
		})
	}
}

// TestIndexCoordinate checks that Index and Coordinate are inverse.
func TestIndexCoordinate(t *testing.T) {
	gg, _ := gridgraph.New([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, gridgraph.AllMoves)
	for idx := 0; idx < gg.Len(); idx++ {
		p := gg.Coordinate(idx)
		if !gg.InBounds(p) {
			t.Fatalf("Coordinate(%d) = %s out of bounds", idx, p)
		}
		if back := gg.Index(p); back != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, back)
		}
	}
	if got := gg.Index(gridgraph.Position{X: 3, Y: 1}); got != 7 {
		t.Errorf("Index(3,1) = %d; want 7", got)
	}
}

//----------------------------------------------------------------------------//
// Moveset Tests
//----------------------------------------------------------------------------//

// TestParseMoveset covers valid strings, case folding and rejection.
func TestParseMoveset(t *testing.T) {
	cases := []struct {
		in   string
		want gridgraph.Moveset
		err  error
	}{
		{"udlr", gridgraph.AllMoves, nil},
		{"rd", gridgraph.Right | gridgraph.Down, nil},
		{"RDrd", gridgraph.Right | gridgraph.Down, nil},
		{"", 0, nil},
		{"ux", 0, gridgraph.ErrBadMoveset},
		{"u d", 0, gridgraph.ErrBadMoveset},
	}
	for _, tc := range cases {
		got, err := gridgraph.ParseMoveset(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseMoveset(%q) error = %v; want %v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoveset(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

// TestMovesetString renders letters in udlr order regardless of input order.
func TestMovesetString(t *testing.T) {
	ms, _ := gridgraph.ParseMoveset("rlud")
	if got := ms.String(); got != "udlr" {
		t.Errorf("String() = %q; want %q", got, "udlr")
	}
	if got := (gridgraph.Right | gridgraph.Down).String(); got != "dr" {
		t.Errorf("String() = %q; want %q", got, "dr")
	}
	if !gridgraph.AllMoves.Has(gridgraph.Left | gridgraph.Up) {
		t.Error("AllMoves.Has(Left|Up) = false; want true")
	}
	if gridgraph.Right.Has(gridgraph.Right | gridgraph.Down) {
		t.Error("Right.Has(Right|Down) = true; want false")
	}
}
