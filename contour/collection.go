package contour

import (
	"github.com/arl/go-contour/contour/internal/hierarchy"
	"github.com/arl/go-contour/contour/internal/pointlist"
)

// Collection is the result of a Build: the complete set of contours of one
// raster, as a flat point list plus a parent/child/sibling hierarchy tree.
type Collection struct {
	width, height int32
	points        []pointlist.Point
	items         []hierarchy.Item
	depth         []int32 // depth[0] == -1 (the root); depth[i] for i>=1 counts from there
}

func newCollection(width, height int32, points []pointlist.Point, items []hierarchy.Item) *Collection {
	depth := make([]int32, len(items))
	depth[0] = -1 // the synthetic root has no geometry; its children are depth 0
	for i := 1; i < len(items); i++ {
		// items[i].Parent < i always holds: a contour's parent is always
		// born earlier in scan order (smaller hierarchy index) than the
		// contour itself, so a single forward pass suffices.
		depth[i] = depth[items[i].Parent] + 1
	}
	return &Collection{width: width, height: height, points: points, items: items, depth: depth}
}

// Dimensions returns the width and height of the raster the collection was
// built from.
func (c *Collection) Dimensions() (int32, int32) { return c.width, c.height }

// AllContours returns every contour in the collection, in hierarchy-build
// order (outer contours interleaved with their descendants as they were
// discovered, not depth-first).
func (c *Collection) AllContours() []Contour {
	out := make([]Contour, 0, len(c.items)-1)
	for i := 1; i < len(c.items); i++ {
		out = append(out, Contour{col: c, index: int32(i)})
	}
	return out
}

// OutermostContours returns the direct children of the root: the
// topmost-level outer contours, excluding any nested outer contours found
// inside holes.
func (c *Collection) OutermostContours() []Contour {
	var out []Contour
	for i := 1; i < len(c.items); i++ {
		if c.items[i].Parent == 0 {
			out = append(out, Contour{col: c, index: int32(i)})
		}
	}
	return out
}

// OuterContours returns every contour at even depth (spec Invariant H3):
// both the topmost outer contours and any outer contour nested inside a
// hole.
func (c *Collection) OuterContours() []Contour {
	var out []Contour
	for i := 1; i < len(c.items); i++ {
		if c.depth[i]%2 == 0 {
			out = append(out, Contour{col: c, index: int32(i)})
		}
	}
	return out
}
