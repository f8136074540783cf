// Package pointlist implements the append-only point-list builder (§4.5):
// a flat, growable array of ring vertices, each linked to its successor
// along the ring it belongs to.
package pointlist

// None is the placeholder successor of a point not yet linked to anything.
// A finished point list (Invariant P1) must never contain it.
const None int32 = -1

// Point is one stored ("even") vertex of a contour ring.
type Point struct {
	X, Y int32
	Next int32
}

// Builder accumulates Points. The zero value is ready to use.
type Builder struct {
	points []Point
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// Add appends a point with no known successor yet, returning its index.
func (b *Builder) Add(x, y int32) int32 {
	i := int32(len(b.points))
	b.points = append(b.points, Point{X: x, Y: y, Next: None})
	return i
}

// AddWithNext appends a point whose successor is already known.
func (b *Builder) AddWithNext(x, y, next int32) int32 {
	i := int32(len(b.points))
	b.points = append(b.points, Point{X: x, Y: y, Next: next})
	return i
}

// AddWithPrevious appends a point and links prev's successor to it.
func (b *Builder) AddWithPrevious(x, y, prev int32) int32 {
	i := int32(len(b.points))
	b.points = append(b.points, Point{X: x, Y: y, Next: None})
	b.points[prev].Next = i
	return i
}

// AddWithNextAndPrevious appends a point, sets its own successor to next,
// and links prev's successor to it.
func (b *Builder) AddWithNextAndPrevious(x, y, next, prev int32) int32 {
	i := int32(len(b.points))
	b.points = append(b.points, Point{X: x, Y: y, Next: next})
	b.points[prev].Next = i
	return i
}

// Points returns the finished, append-only point array. The returned slice
// aliases the Builder's internal storage.
func (b *Builder) Points() []Point { return b.points }
