package hexgrid

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults used by callers that accept optional generation parameters.
const (
	DefaultCols = 6
	DefaultRows = 6
	DefaultMin  = 1
	DefaultMax  = 100
)

type genConfig struct {
	rng *rand.Rand
}

// Option customizes GenerateRandom.
type Option func(*genConfig)

// WithRand draws values from rng instead of the package-level source.
// Pass a seeded *rand.Rand for reproducible grids. A *rand.Rand is not safe
// for concurrent use, so do not share one across goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(c *genConfig) {
		c.rng = rng
	}
}

// GenerateRandom returns a rows×cols wire grid whose cells are drawn
// independently and uniformly from [minValue, maxValue] inclusive and
// rendered as uppercase hex.
//
// Contract:
//   - cols ≥ 1, rows ≥ 1.
//   - 0 ≤ minValue ≤ maxValue.
//
// Violations return ErrBadParams; nothing is clamped.
//
// Complexity: O(rows×cols).
func GenerateRandom(cols, rows, minValue, maxValue int, opts ...Option) (WireGrid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: size %dx%d, want at least 1x1", ErrBadParams, cols, rows)
	}
	if minValue < 0 {
		return nil, fmt.Errorf("%w: min=%d is negative", ErrBadParams, minValue)
	}
	if minValue > maxValue {
		return nil, fmt.Errorf("%w: min=%d > max=%d", ErrBadParams, minValue, maxValue)
	}

	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	int63, int63n := rand.Int63, rand.Int63n
	if cfg.rng != nil {
		int63, int63n = cfg.rng.Int63, cfg.rng.Int63n
	}

	lo, span := int64(minValue), int64(maxValue)-int64(minValue)
	grid := make(WireGrid, rows)
	for y := range grid {
		grid[y] = make([]Cell, cols)
		for x := range grid[y] {
			var v int64
			if span == math.MaxInt64 {
				// [0, MaxInt64] is exactly Int63's range.
				v = int63()
			} else {
				v = lo + int63n(span+1)
			}
			grid[y][x] = Hex(formatHex(v))
		}
	}
	return grid, nil
}
