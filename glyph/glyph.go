// Package glyph normalizes a contour (and its descendant holes) to a
// (0,0)-anchored bounding box, so that two occurrences of the same shape at
// different locations in a raster compare equal. Grounded on
// original_source/src/glyph.rs; consumed by package book for cross-page
// glyph deduplication.
package glyph

import (
	"image"
	"strconv"
	"strings"

	"github.com/arl/go-contour/contour"
	"github.com/arl/go-contour/geometry"
)

// Contour is one ring of a Glyph, translated so the glyph's bounding box
// starts at the origin.
type Contour struct {
	// IsOuter is true for the glyph's own outer contour, false for a hole.
	IsOuter bool
	// EvenVertices are the contour's even vertices (spec §3 "Even
	// vertex"), translated into glyph-local coordinates.
	EvenVertices []geometry.Point
}

// Glyph is a contour, possibly with holes, that does not remember its
// location: the upper-left corner of its bounding box is always (0,0).
//
// Two glyphs of the same shape produce the same Key, regardless of where
// in a raster they were found.
type Glyph struct {
	Width, Height int32
	Contours      []Contour
}

// FromContour takes an outer contour from a Collection and builds the
// glyph it represents (the contour plus its direct descendant holes,
// translated to a (0,0)-anchored bounding box), along with the location of
// that bounding box's upper-left corner in the original raster.
//
// The returned Glyph owns its own vertex slices and is independent of the
// Collection outer was taken from.
func FromContour(outer contour.Contour) (Glyph, image.Point) {
	even := outer.EvenVertices()

	xMin, yMin := even[0].X, even[0].Y
	xMax, yMax := even[0].X, even[0].Y
	for _, p := range even {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}

	rings := append([]contour.Contour{outer}, outer.Children()...)
	contours := make([]Contour, len(rings))
	for i, r := range rings {
		pts := r.EvenVertices()
		local := make([]geometry.Point, len(pts))
		for j, p := range pts {
			local[j] = geometry.Point{X: p.X - xMin, Y: p.Y - yMin}
		}
		contours[i] = Contour{IsOuter: i == 0, EvenVertices: local}
	}

	g := Glyph{Width: xMax - xMin, Height: yMax - yMin, Contours: contours}
	return g, image.Point{X: int(xMin), Y: int(yMin)}
}

// OuterContour returns the glyph's own outer contour.
func (g Glyph) OuterContour() Contour { return g.Contours[0] }

// InnerContours returns the glyph's hole contours, if any.
func (g Glyph) InnerContours() []Contour {
	if len(g.Contours) <= 1 {
		return nil
	}
	return g.Contours[1:]
}

// Key returns a string uniquely determined by the glyph's shape: equal
// glyphs (same bounding box, same contours, same vertices) always produce
// equal keys, and vice versa. Used as a map key for cross-page glyph
// deduplication in package book, standing in for glyph.rs's derived
// PartialEq/Hash on an owned Vec<Point2D>.
func (g Glyph) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(g.Width)))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(int(g.Height)))
	for _, c := range g.Contours {
		b.WriteByte('|')
		if c.IsOuter {
			b.WriteByte('O')
		} else {
			b.WriteByte('H')
		}
		for _, p := range c.EvenVertices {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(int(p.X)))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(p.Y)))
		}
	}
	return b.String()
}
