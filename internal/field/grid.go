package field

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidGrid reports a GridConfig that cannot describe a lattice.
var ErrInvalidGrid = errors.New("invalid grid")

// GridConfig describes a regular rectangular lattice centred on the origin.
type GridConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Spacing float64 `yaml:"spacing"`
}

// Validate checks that every dimension is positive.
func (c GridConfig) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("%w: columns must be > 0, got %d", ErrInvalidGrid, c.Columns)
	}
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be > 0, got %d", ErrInvalidGrid, c.Rows)
	}
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		return fmt.Errorf("%w: spacing must be a positive finite value, got %v", ErrInvalidGrid, c.Spacing)
	}
	return nil
}

// Point is a single dot of the lattice. Base coordinates never change
// after construction.
type Point struct {
	BaseX float64
	BaseY float64
	Phase float64
}

// latticeCoord returns the centred coordinate of index i along an axis
// with n cells.
func latticeCoord(i, n int, spacing float64) float64 {
	return (float64(i) - float64(n)/2) * spacing
}

// buildPoints lays the lattice out column by column. A nil rng leaves
// every phase at zero.
func buildPoints(c GridConfig, rng *rand.Rand) []Point {
	points := make([]Point, 0, c.Columns*c.Rows)
	for i := 0; i < c.Columns; i++ {
		x := latticeCoord(i, c.Columns, c.Spacing)
		for j := 0; j < c.Rows; j++ {
			p := Point{
				BaseX: x,
				BaseY: latticeCoord(j, c.Rows, c.Spacing),
			}
			if rng != nil {
				p.Phase = rng.Float64() * 2 * math.Pi
			}
			points = append(points, p)
		}
	}
	return points
}

// Bounds returns the extrema of the lattice coordinates.
func (c GridConfig) Bounds() (minX, maxX, minY, maxY float64) {
	minX = latticeCoord(0, c.Columns, c.Spacing)
	maxX = latticeCoord(c.Columns-1, c.Columns, c.Spacing)
	minY = latticeCoord(0, c.Rows, c.Spacing)
	maxY = latticeCoord(c.Rows-1, c.Rows, c.Spacing)
	return minX, maxX, minY, maxY
}
