package hexgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags which variant a Cell holds.
type Kind uint8

const (
	// KindInvalid marks a value that is neither a string nor an integer.
	KindInvalid Kind = iota
	// KindHex marks a hexadecimal string cell.
	KindHex
	// KindNumeric marks an already-numeric cell.
	KindNumeric
)

// Cell is one wire grid value: Hex(string) | Numeric(int).
// The zero Cell is KindInvalid.
type Cell struct {
	kind Kind
	hex  string
	num  int
	raw  string // original JSON text, kept for KindInvalid diagnostics
}

// Hex returns a hexadecimal string cell. The string is not validated here.
func Hex(s string) Cell { return Cell{kind: KindHex, hex: s} }

// Numeric returns an already-numeric cell.
func Numeric(n int) Cell { return Cell{kind: KindNumeric, num: n} }

// Kind reports the variant held by c.
func (c Cell) Kind() Kind { return c.kind }

// String renders the cell as it would be quoted in an error message.
func (c Cell) String() string {
	switch c.kind {
	case KindHex:
		return strconv.Quote(c.hex)
	case KindNumeric:
		return strconv.Itoa(c.num)
	}
	if c.raw == "" {
		return "<invalid>"
	}
	return c.raw
}

// Int decodes the cell into a non-negative int.
func (c Cell) Int() (int, error) {
	switch c.kind {
	case KindHex:
		// ParseUint with an explicit base rejects signs, "0x" and underscores.
		v, err := strconv.ParseUint(c.hex, 16, strconv.IntSize-1)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	case KindNumeric:
		if c.num < 0 {
			return 0, fmt.Errorf("negative value %d", c.num)
		}
		return c.num, nil
	}
	return 0, fmt.Errorf("unsupported value %s", c)
}

// MarshalJSON writes Hex cells as JSON strings and Numeric cells as numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindHex:
		return json.Marshal(c.hex)
	case KindNumeric:
		return json.Marshal(c.num)
	}
	return nil, fmt.Errorf("hexgrid: cannot marshal invalid cell %s", c)
}

// UnmarshalJSON accepts a JSON string or integer. Anything else (null,
// booleans, objects, fractional numbers) yields a KindInvalid cell rather
// than an error, so that Decode can point at the offending position.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Cell{kind: KindInvalid, raw: string(data)}
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Hex(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n, err := strconv.Atoi(string(data)); err == nil {
			*c = Numeric(n)
		}
	}
	return nil
}
