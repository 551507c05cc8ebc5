// Package grid rasterizes segments onto a square counter grid and counts
// the cells covered more than once.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"ventmap/internal/geom"
)

var (
	// ErrOutOfBounds is matched by every OutOfBoundsError.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrDimension is returned for a grid dimension outside the supported range.
	ErrDimension = errors.New("unsupported grid dimension")
)

const (
	// MaxDenseDimension caps a dense grid at 10^8 counters.
	MaxDenseDimension = 10000
	// MaxSparseDimension keeps coordinate arithmetic on sparse grids well
	// inside int range.
	MaxSparseDimension = 1 << 20
)

func checkDimension(dimension, limit int) error {
	if dimension <= 0 || dimension > limit {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrDimension, dimension, limit)
	}
	return nil
}

// OutOfBoundsError reports a segment that leaves the grid.
type OutOfBoundsError struct {
	Line      geom.Line
	Point     geom.Point
	Dimension int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: point %v outside [0,%d)", e.Line, e.Point, e.Dimension)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Accumulator counts how many segments pass through each cell.
type Accumulator interface {
	// Apply adds one to every cell the line visits. On error no cell changes.
	Apply(l geom.Line) error
	// At returns the count of a cell; cells outside the grid read as zero.
	At(p geom.Point) uint32
	// Overlaps counts cells with a count above one.
	Overlaps() int
	// Max is the highest count on the grid.
	Max() uint32
	// Cells yields the non-zero cells whose count is at least threshold,
	// in row-major order.
	Cells(threshold uint32) iter.Seq2[geom.Point, uint32]
	Dimension() int
}

// checkLine validates l against a grid of size dim. Both endpoints inside
// the grid imply every visited cell is inside.
func checkLine(l geom.Line, dim int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, p := range [2]geom.Point{l.Start, l.End} {
		if p.X < 0 || p.Y < 0 || p.X >= dim || p.Y >= dim {
			return &OutOfBoundsError{Line: l, Point: p, Dimension: dim}
		}
	}
	return nil
}

// Dense is a dimension×dimension grid stored row-major.
type Dense struct {
	dim   int
	cells []uint32
}

var _ Accumulator = (*Dense)(nil)

// NewDense returns a zeroed grid. dimension must be in [1, MaxDenseDimension].
func NewDense(dimension int) (*Dense, error) {
	if err := checkDimension(dimension, MaxDenseDimension); err != nil {
		return nil, err
	}
	return &Dense{dim: dimension, cells: make([]uint32, dimension*dimension)}, nil
}

func (g *Dense) Dimension() int { return g.dim }

func (g *Dense) Apply(l geom.Line) error {
	if err := checkLine(l, g.dim); err != nil {
		return err
	}
	for p := range l.Points() {
		g.cells[p.Y*g.dim+p.X]++
	}
	return nil
}

func (g *Dense) At(p geom.Point) uint32 {
	if p.X < 0 || p.Y < 0 || p.X >= g.dim || p.Y >= g.dim {
		return 0
	}
	return g.cells[p.Y*g.dim+p.X]
}

func (g *Dense) Overlaps() int {
	n := 0
	for _, c := range g.cells {
		if c > 1 {
			n++
		}
	}
	return n
}

func (g *Dense) Max() uint32 {
	var m uint32
	for _, c := range g.cells {
		m = max(m, c)
	}
	return m
}

// Merge adds every count of other into g.
func (g *Dense) Merge(other *Dense) error {
	if other.dim != g.dim {
		return fmt.Errorf("merge %d into %d: %w", other.dim, g.dim, ErrDimension)
	}
	for i, c := range other.cells {
		g.cells[i] += c
	}
	return nil
}
