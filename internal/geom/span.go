package geom

import "iter"

// Span yields every integer from a to b inclusive, counting down when a > b.
// The sequence can be ranged over any number of times.
func Span(a, b int) iter.Seq[int] {
	step := 1
	if a > b {
		step = -1
	}
	return func(yield func(int) bool) {
		for v := a; ; v += step {
			if !yield(v) || v == b {
				return
			}
		}
	}
}

// Points yields the cells the line passes through, from Start to End.
// Diagonals must be exactly 45°; see Validate.
func (l Line) Points() iter.Seq[Point] {
	switch l.Orientation() {
	case Horizontal:
		return func(yield func(Point) bool) {
			for x := range Span(l.Start.X, l.End.X) {
				if !yield(Point{X: x, Y: l.Start.Y}) {
					return
				}
			}
		}
	case Vertical:
		return func(yield func(Point) bool) {
			for y := range Span(l.Start.Y, l.End.Y) {
				if !yield(Point{X: l.Start.X, Y: y}) {
					return
				}
			}
		}
	}
	return func(yield func(Point) bool) {
		nextY, stop := iter.Pull(Span(l.Start.Y, l.End.Y))
		defer stop()
		for x := range Span(l.Start.X, l.End.X) {
			y, ok := nextY()
			if !ok || !yield(Point{X: x, Y: y}) {
				return
			}
		}
	}
}
