package grid

import (
	"iter"
	"strings"

	"ventmap/internal/geom"
)

// Glyph is the text form of a count: '.' for zero, the digit up to nine
// and '+' above.
func Glyph(c uint32) byte {
	switch {
	case c == 0:
		return '.'
	case c > 9:
		return '+'
	}
	return '0' + byte(c)
}

// String renders one text row per grid row.
func (g *Dense) String() string {
	var b strings.Builder
	b.Grow(g.dim * (g.dim + 1))
	for y := 0; y < g.dim; y++ {
		for _, c := range g.cells[y*g.dim : (y+1)*g.dim] {
			b.WriteByte(Glyph(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cells yields every cell whose count is at least threshold, row by row.
func (g *Dense) Cells(threshold uint32) iter.Seq2[geom.Point, uint32] {
	return func(yield func(geom.Point, uint32) bool) {
		for i, c := range g.cells {
			if c < threshold || c == 0 {
				continue
			}
			if !yield(geom.Point{X: i % g.dim, Y: i / g.dim}, c) {
				return
			}
		}
	}
}
