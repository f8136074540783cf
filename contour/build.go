// Package contour builds the parent/child contour tree of a binary pixel
// raster: the row-pair change merge stream, six-state feature automaton,
// point-list builder and union-find hierarchy builder described in spec.md
// are implementation details behind the single entry point Build.
package contour

import (
	"fmt"
	"math"

	"github.com/arl/go-contour/buildctx"
	"github.com/arl/go-contour/contour/internal/automaton"
	"github.com/arl/go-contour/contour/internal/raster"
)

// Build scans a W*H raster of bytes (foreground is nonzero, negated when
// inverted is true) and returns the complete set of contours, arranged as a
// parent/child tree. ctx may be nil; when non-nil and enabled, it records
// per-row progress messages and build-phase timers.
//
// Build validates its arguments and returns an *InputError before any
// scanning takes place; everything else that can go wrong during the scan
// is an internal invariant violation and panics (spec §7).
func Build(pixels []byte, width, height int, inverted bool, ctx *buildctx.Context) (*Collection, error) {
	if err := validateInput(pixels, width, height); err != nil {
		return nil, err
	}

	ctx.StartTimer(buildctx.TimerBuildTotal)
	defer ctx.StopTimer(buildctx.TimerBuildTotal)

	w, h := int32(width), int32(height)
	b := newCollectionBuilder(w, h)
	fa := automaton.New()

	// One padding row is prepended (the initial "bottom" here, swapped into
	// "top" on the first iteration) and one appended (the row == height
	// iteration below), so every foreground region is fully enclosed by
	// background transitions (spec §3 "Padding row").
	top := make([]int32, 0, width+2)
	bottom := make([]int32, 0, width+2)
	bottom = raster.FillPaddingRow(bottom)

	for row := 0; row <= height; row++ {
		top, bottom = bottom, top

		ctx.StartTimer(buildctx.TimerRowChanges)
		if row < height {
			bottom = raster.FillRowChanges(bottom, pixels[row*width:(row+1)*width], inverted)
		} else {
			bottom = raster.FillPaddingRow(bottom)
		}
		ctx.StopTimer(buildctx.TimerRowChanges)

		fa.Reset()
		merger := raster.NewMerger(top, bottom)

		ctx.StartTimer(buildctx.TimerAutomaton)
		for {
			evt, ok := merger.Next()
			if !ok {
				break
			}
			b.dispatch(int32(row), fa.Step(evt))
		}
		ctx.StopTimer(buildctx.TimerAutomaton)

		if !fa.AtRest() {
			panic(fmt.Sprintf("contour: automaton did not return to state 0 at end of row %d", row))
		}
		ctx.Log(buildctx.Progress, "row %d/%d scanned", row+1, height+1)
	}

	ctx.StartTimer(buildctx.TimerHierarchy)
	col := b.finish()
	ctx.StopTimer(buildctx.TimerHierarchy)

	return col, nil
}

func validateInput(pixels []byte, width, height int) error {
	if width < 0 || height < 0 ||
		int64(width) > math.MaxInt32-2 || int64(height) > math.MaxInt32-2 ||
		int64(width)*int64(height) > math.MaxInt32 {
		return &InputError{Kind: ErrInputOverflow, Width: width, Height: height}
	}
	want := width * height
	if len(pixels) != want {
		return &InputError{Kind: ErrInputSizeMismatch, Got: len(pixels), Want: want}
	}
	return nil
}
