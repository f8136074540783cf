// Package geometry provides the integer-coordinate primitives shared by the
// contour package and its consumers: points, and the ray-cast
// point-in-polygon auxiliary of spec §4.8.
package geometry

// Point is an integer pixel-corner coordinate.
type Point struct {
	X, Y int32
}

// Position is the result of testing a point against an orthopolygon.
type Position uint8

const (
	Outside Position = iota
	Inside
	OnEdge
	OnVertex
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "Inside"
	case OnEdge:
		return "OnEdge"
	case OnVertex:
		return "OnVertex"
	default:
		return "Outside"
	}
}

// OrthoPolygon is a read-only view of an axis-aligned polygon's even
// vertices (spec §3 "Even vertex"): the odd vertices are synthesized by
// interleaving, exactly as a contour.Contour does.
type OrthoPolygon interface {
	// Len returns the number of even vertices.
	Len() int
	// EvenVertex returns the i'th even vertex, 0 <= i < Len().
	EvenVertex(i int) Point
}

// PointInPolygon classifies p against poly using an even-odd ray cast along
// the vertical edges of poly (spec §4.8). Edges are tested with half-open
// y-intervals so a ray passing exactly through a shared vertex is never
// double-counted.
func PointInPolygon(poly OrthoPolygon, p Point) Position {
	n := poly.Len()
	if n == 0 {
		return Outside
	}

	// Explicit incidence tests for ON-VERTEX / ON-EDGE, checked against
	// every edge of the full (even+odd) vertex sequence. Every vertex is
	// checked before any edge, since each vertex is also an edge endpoint.
	for i := 0; i < n; i++ {
		even := poly.EvenVertex(i)
		next := poly.EvenVertex((i + 1) % n)
		odd := Point{X: next.X, Y: even.Y}

		if p == even || p == odd {
			return OnVertex
		}
	}
	for i := 0; i < n; i++ {
		even := poly.EvenVertex(i)
		next := poly.EvenVertex((i + 1) % n)
		odd := Point{X: next.X, Y: even.Y}

		if onSegment(even, odd, p) || onSegment(odd, next, p) {
			return OnEdge
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		even := poly.EvenVertex(i)
		next := poly.EvenVertex((i + 1) % n)
		odd := Point{X: next.X, Y: even.Y}

		// The vertical edge runs from odd to next, at fixed x = next.X.
		y0, y1 := odd.Y, next.Y
		ylo, yhi := y0, y1
		if ylo > yhi {
			ylo, yhi = yhi, ylo
		}
		if p.Y >= ylo && p.Y < yhi && next.X > p.X {
			inside = !inside
		}
	}

	if inside {
		return Inside
	}
	return Outside
}

// onSegment reports whether p lies on the closed axis-aligned segment a-b
// (a and b share either their x or their y coordinate).
func onSegment(a, b, p Point) bool {
	if a.X == b.X {
		if p.X != a.X {
			return false
		}
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.Y >= lo && p.Y <= hi
	}
	if a.Y == b.Y {
		if p.Y != a.Y {
			return false
		}
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		return p.X >= lo && p.X <= hi
	}
	return false
}
