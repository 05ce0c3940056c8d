package hexgrid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WireGrid is the boundary representation of a terrain grid: WireGrid[row][col].
type WireGrid [][]Cell

// FromStrings wraps a matrix of hex strings as a WireGrid. No validation is done.
func FromStrings(rows [][]string) WireGrid {
	if rows == nil {
		return nil
	}
	w := make(WireGrid, len(rows))
	for y, row := range rows {
		w[y] = make([]Cell, len(row))
		for x, s := range row {
			w[y][x] = Hex(s)
		}
	}
	return w
}

// ParseWire unmarshals a JSON array of arrays into a WireGrid.
// Input that is not an array of arrays returns ErrNotMatrix; cell values
// are not interpreted until Decode.
func ParseWire(data []byte) (WireGrid, error) {
	var w WireGrid
	if err := json.Unmarshal(data, &w); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, fmt.Errorf("hexgrid: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotMatrix, err)
	}
	if w == nil {
		return nil, ErrNilGrid
	}
	return w, nil
}

// Decode converts a wire grid into a cost grid of the same shape.
// Hex cells are parsed in base 16, Numeric cells pass through.
//
// Errors: ErrNilGrid, ErrEmptyRow, ErrRaggedGrid for shape problems;
// *DecodeError (matching ErrDecode) for the first cell, in row-major order,
// that is not a non-negative integer.
//
// Complexity: O(rows×cols).
func Decode(w WireGrid) ([][]int, error) {
	if err := checkShape(w); err != nil {
		return nil, err
	}
	out := make([][]int, len(w))
	for y, row := range w {
		out[y] = make([]int, len(row))
		for x, c := range row {
			v, err := c.Int()
			if err != nil {
				return nil, &DecodeError{Row: y, Col: x, Value: c.String(), Err: err}
			}
			out[y][x] = v
		}
	}
	return out, nil
}

// Encode converts a cost grid into its wire form: uppercase hex, no prefix,
// no leading zeros. Decode(Encode(g)) == g for every valid g.
//
// Errors: same shape errors as Decode; *DecodeError for a negative cell.
func Encode(costs [][]int) (WireGrid, error) {
	if err := checkShape(costs); err != nil {
		return nil, err
	}
	w := make(WireGrid, len(costs))
	for y, row := range costs {
		w[y] = make([]Cell, len(row))
		for x, v := range row {
			if v < 0 {
				return nil, &DecodeError{Row: y, Col: x, Value: strconv.Itoa(v), Err: errors.New("negative value")}
			}
			w[y][x] = Hex(formatHex(int64(v)))
		}
	}
	return w, nil
}

// formatHex renders v ≥ 0 as uppercase hex without prefix or padding.
func formatHex(v int64) string {
	return strings.ToUpper(strconv.FormatInt(v, 16))
}
