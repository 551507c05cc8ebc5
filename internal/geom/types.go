package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrSlope is returned for a diagonal segment that is not exactly 45°.
	ErrSlope = errors.New("segment is not horizontal, vertical or 45° diagonal")
	// ErrNegative is returned for a segment with a negative coordinate.
	ErrNegative = errors.New("segment has a negative coordinate")
)

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Orientation classifies a segment.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return fmt.Sprintf("orientation(%d)", uint8(o))
}

// Line is a segment from Start to End, both inclusive.
type Line struct {
	Start Point
	End   Point
}

// Orientation reports Horizontal when both endpoints share y, Vertical when
// they share x and Diagonal otherwise. A single point is Horizontal.
func (l Line) Orientation() Orientation {
	switch {
	case l.Start.Y == l.End.Y:
		return Horizontal
	case l.Start.X == l.End.X:
		return Vertical
	}
	return Diagonal
}

// Straight reports whether the line is horizontal or vertical.
func (l Line) Straight() bool { return l.Orientation() != Diagonal }

// Validate checks the preconditions Points relies on.
func (l Line) Validate() error {
	if l.Start.X < 0 || l.Start.Y < 0 || l.End.X < 0 || l.End.Y < 0 {
		return fmt.Errorf("%v: %w", l, ErrNegative)
	}
	if l.Orientation() == Diagonal && abs(l.End.X-l.Start.X) != abs(l.End.Y-l.Start.Y) {
		return fmt.Errorf("%v: %w", l, ErrSlope)
	}
	return nil
}

// Len is the number of cells the line visits.
func (l Line) Len() int {
	return max(abs(l.End.X-l.Start.X), abs(l.End.Y-l.Start.Y)) + 1
}

// String renders the line in the same "x1,y1 -> x2,y2" form ParseSegment reads.
func (l Line) String() string {
	return fmt.Sprintf("%d,%d -> %d,%d", l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

// BBox is an inclusive integer bounding box.
type BBox struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Width and Height count cells, both edges included.
func (b BBox) Width() int  { return b.MaxX - b.MinX + 1 }
func (b BBox) Height() int { return b.MaxY - b.MinY + 1 }

// Bounds returns the bounding box of every endpoint, ok is false for an empty list.
func Bounds(lines []Line) (bbox BBox, ok bool) {
	for _, l := range lines {
		for _, p := range [2]Point{l.Start, l.End} {
			if !ok {
				bbox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				ok = true
				continue
			}
			bbox.MinX = min(bbox.MinX, p.X)
			bbox.MinY = min(bbox.MinY, p.Y)
			bbox.MaxX = max(bbox.MaxX, p.X)
			bbox.MaxY = max(bbox.MaxY, p.Y)
		}
	}
	return bbox, ok
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
