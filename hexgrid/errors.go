package hexgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGrid indicates the grid is nil or has no rows.
	ErrNilGrid = errors.New("hexgrid: grid must have at least one row")
	// ErrEmptyRow indicates a row without cells.
	ErrEmptyRow = errors.New("hexgrid: rows must have at least one cell")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("hexgrid: all rows must have the same length")
	// ErrNotMatrix indicates JSON input that is not an array of arrays.
	ErrNotMatrix = errors.New("hexgrid: input is not a matrix")
	// ErrDecode indicates a cell that is not a non-negative integer.
	ErrDecode = errors.New("hexgrid: cannot decode cell")
	// ErrBadParams indicates invalid generation parameters.
	ErrBadParams = errors.New("hexgrid: invalid generation parameters")
)

// DecodeError reports the cell that failed to decode.
// errors.Is(err, ErrDecode) holds for every *DecodeError.
type DecodeError struct {
	Row, Col int
	Value    string // raw cell text as received
	Err      error  // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("hexgrid: cannot decode cell [%d][%d] %s", e.Row, e.Col, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrDecode) match.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Unwrap exposes the underlying cause (for example a *strconv.NumError).
func (e *DecodeError) Unwrap() error { return e.Err }

// checkShape validates row count, empty rows and raggedness for any matrix.
func checkShape[T any](rows [][]T) error {
	if len(rows) == 0 {
		return ErrNilGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) == 0 {
			return fmt.Errorf("%w: row %d", ErrEmptyRow, y)
		}
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), w)
		}
	}
	return nil
}
