package grid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ventmap/internal/geom"
)

// StraightOnly returns the horizontal and vertical lines. The input is not
// modified.
func StraightOnly(lines []geom.Line) []geom.Line {
	out := make([]geom.Line, 0, len(lines))
	for _, l := range lines {
		if l.Straight() {
			out = append(out, l)
		}
	}
	return out
}

// ComputeOverlaps accumulates lines on a dimension×dimension grid and
// returns the number of cells covered more than once. With straightOnly
// set, diagonal lines are left out.
func ComputeOverlaps(lines []geom.Line, dimension int, straightOnly bool) (int, error) {
	res, err := Compute(context.Background(), lines, Options{Dimension: dimension, StraightOnly: straightOnly})
	if err != nil {
		return 0, err
	}
	return res.Overlaps, nil
}

// Options configures Compute.
type Options struct {
	Dimension    int
	StraightOnly bool
	// Sparse selects a map-backed grid. Ignored when Workers > 1.
	Sparse bool
	// Workers > 1 splits the lines across goroutines, each with its own
	// dense grid, and sums the grids at the end.
	Workers int
}

// Result of a Compute run.
type Result struct {
	Overlaps int
	Applied  int // lines accumulated
	Skipped  int // diagonals dropped by StraightOnly
	Grid     Accumulator
}

// Compute runs the filter, accumulate and count pipeline. Any failed line
// aborts the run; no partial result is returned.
func Compute(ctx context.Context, lines []geom.Line, opts Options) (Result, error) {
	if opts.StraightOnly {
		kept := StraightOnly(lines)
		return compute(ctx, kept, opts, len(lines)-len(kept))
	}
	return compute(ctx, lines, opts, 0)
}

func compute(ctx context.Context, lines []geom.Line, opts Options, skipped int) (Result, error) {
	var (
		acc Accumulator
		err error
	)
	switch {
	case opts.Workers > 1:
		acc, err = accumulateParallel(ctx, lines, opts.Dimension, opts.Workers)
	case opts.Sparse:
		var g *Sparse
		if g, err = NewSparse(opts.Dimension); err == nil {
			acc, err = g, accumulate(ctx, g, lines)
		}
	default:
		var g *Dense
		if g, err = NewDense(opts.Dimension); err == nil {
			acc, err = g, accumulate(ctx, g, lines)
		}
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Overlaps: acc.Overlaps(), Applied: len(lines), Skipped: skipped, Grid: acc}, nil
}

func accumulate(ctx context.Context, acc Accumulator, lines []geom.Line) error {
	for i, l := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := acc.Apply(l); err != nil {
			return fmt.Errorf("segment %d: %w", i+1, err)
		}
	}
	return nil
}

func accumulateParallel(ctx context.Context, lines []geom.Line, dim, workers int) (*Dense, error) {
	total, err := NewDense(dim)
	if err != nil {
		return nil, err
	}
	workers = min(workers, max(len(lines), 1))
	locals := make([]*Dense, workers)
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(lines) + workers - 1) / workers
	for w := range workers {
		lo := min(w*chunk, len(lines))
		hi := min(lo+chunk, len(lines))
		g.Go(func() error {
			local, err := NewDense(dim)
			if err != nil {
				return err
			}
			for i, l := range lines[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := local.Apply(l); err != nil {
					return fmt.Errorf("segment %d: %w", lo+i+1, err)
				}
			}
			locals[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, local := range locals {
		if err := total.Merge(local); err != nil {
			return nil, err
		}
	}
	return total, nil
}
