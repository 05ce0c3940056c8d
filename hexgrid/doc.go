// Package hexgrid converts terrain grids between their wire form, a matrix of
// uppercase hexadecimal strings, and the integer cost matrix consumed by
// package dijkstra. It also synthesizes random terrain for demos and tests.
//
// What:
//
//   - Cell is a tagged variant: Hex("1A") or Numeric(26). JSON strings decode
//     to Hex, JSON integers to Numeric; any other JSON value is kept as an
//     invalid cell so Decode can report exactly where it sits.
//   - Decode parses every Hex cell in base 16 and passes Numeric cells through.
//   - Encode is the inverse: non-negative ints to uppercase hex, no prefix,
//     no padding.
//   - GenerateRandom fills a rows×cols grid with values drawn uniformly from
//     [min, max] inclusive.
//
// Errors:
//
//   - ErrNilGrid:     grid is nil or has no rows.
//   - ErrEmptyRow:    a row has no cells.
//   - ErrRaggedGrid:  rows have differing lengths.
//   - ErrNotMatrix:   JSON input is not an array of arrays.
//   - ErrDecode:      a cell is not a non-negative integer; the concrete error
//     is a *DecodeError carrying the row, column and raw value.
//   - ErrBadParams:   GenerateRandom got a non-positive size or bad bounds.
package hexgrid
