package grid

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"ventmap/internal/geom"
)

// Sparse keeps only covered cells. It suits large dimensions with few
// segments.
type Sparse struct {
	dim   int
	cells map[geom.Point]uint32
}

var _ Accumulator = (*Sparse)(nil)

// NewSparse returns an empty grid. dimension must be in [1, MaxSparseDimension].
func NewSparse(dimension int) (*Sparse, error) {
	if err := checkDimension(dimension, MaxSparseDimension); err != nil {
		return nil, err
	}
	return &Sparse{dim: dimension, cells: make(map[geom.Point]uint32)}, nil
}

func (g *Sparse) Dimension() int { return g.dim }

func (g *Sparse) Apply(l geom.Line) error {
	if err := checkLine(l, g.dim); err != nil {
		return err
	}
	for p := range l.Points() {
		g.cells[p]++
	}
	return nil
}

func (g *Sparse) At(p geom.Point) uint32 { return g.cells[p] }

func (g *Sparse) Overlaps() int {
	n := 0
	for _, c := range g.cells {
		if c > 1 {
			n++
		}
	}
	return n
}

func (g *Sparse) Max() uint32 {
	var m uint32
	for _, c := range g.cells {
		m = max(m, c)
	}
	return m
}

// Cells yields every cell whose count is at least threshold, row by row.
func (g *Sparse) Cells(threshold uint32) iter.Seq2[geom.Point, uint32] {
	return func(yield func(geom.Point, uint32) bool) {
		keys := slices.SortedFunc(maps.Keys(g.cells), func(a, b geom.Point) int {
			return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
		})
		for _, p := range keys {
			if c := g.cells[p]; c >= threshold && !yield(p, c) {
				return
			}
		}
	}
}
