package contour

import (
	"github.com/arl/go-contour/contour/internal/hierarchy"
	"github.com/arl/go-contour/geometry"
)

// Contour is a lightweight handle into a Collection: a hierarchy index plus
// a back-reference, per spec §4.7. Handles are cheap to copy.
type Contour struct {
	col   *Collection
	index int32
}

// Index is this contour's position in the collection's hierarchy, stable
// for the lifetime of the Collection. Index 0 never appears: it is the
// synthetic root, which is not itself a contour.
func (c Contour) Index() int32 { return c.index }

// IsOuter reports whether this contour's immediate interior is foreground
// (Invariant H3: outer iff depth is even).
func (c Contour) IsOuter() bool { return c.col.depth[c.index]%2 == 0 }

// EvenVertices walks the point-list ring starting at this contour's head
// point, returning every stored ("even") vertex in scan order: the head
// vertex first, thereafter each successor along the ring (spec §6).
func (c Contour) EvenVertices() []geometry.Point {
	head := c.col.items[c.index].HeadPoint
	pts := c.col.points

	out := make([]geometry.Point, 0, 4)
	i := head
	for {
		p := pts[i]
		out = append(out, geometry.Point{X: p.X, Y: p.Y})
		i = p.Next
		if i == head {
			break
		}
	}
	return out
}

// Vertices interleaves each even vertex with its synthesized odd
// successor (spec §3 "Even vertex"), producing the full zig-zag corner
// sequence of the contour.
func (c Contour) Vertices() []geometry.Point {
	even := c.EvenVertices()
	n := len(even)
	out := make([]geometry.Point, 0, 2*n)
	for i, v := range even {
		next := even[(i+1)%n]
		out = append(out, v, geometry.Point{X: next.X, Y: v.Y})
	}
	return out
}

// evenVertexList adapts a materialized vertex slice to geometry.OrthoPolygon.
type evenVertexList []geometry.Point

func (v evenVertexList) Len() int                     { return len(v) }
func (v evenVertexList) EvenVertex(i int) geometry.Point { return v[i] }

// AsOrthoPolygon returns a view of this contour's even vertices suitable
// for geometry.PointInPolygon.
func (c Contour) AsOrthoPolygon() geometry.OrthoPolygon {
	return evenVertexList(c.EvenVertices())
}

// Children returns this contour's direct children, in scan order.
func (c Contour) Children() []Contour {
	var out []Contour
	for ch := c.col.items[c.index].FirstChild; ch != hierarchy.None; ch = c.col.items[ch].NextSibling {
		out = append(out, Contour{col: c.col, index: ch})
	}
	return out
}

// AllDescendants returns every contour nested inside this one, in
// depth-first preorder.
func (c Contour) AllDescendants() []Contour {
	var out []Contour
	var walk func(Contour)
	walk = func(n Contour) {
		for _, ch := range n.Children() {
			out = append(out, ch)
			walk(ch)
		}
	}
	walk(c)
	return out
}

// Parent returns this contour's enclosing contour, or ok == false if this
// is an outermost contour (its only enclosing "contour" is the synthetic
// root, which has no geometry).
func (c Contour) Parent() (parent Contour, ok bool) {
	p := c.col.items[c.index].Parent
	if p == 0 {
		return Contour{}, false
	}
	return Contour{col: c.col, index: p}, true
}
