package geometry

import "sort"

// Rasterize fills a w*h byte raster, set to 1 wherever the even-odd union
// of polys covers a pixel and 0 elsewhere. It is the inverse of a contour
// build (spec.md §8 property 5: rasterizing a collection's own contours
// reproduces the raster it was built from) and exists only to support that
// round-trip property in tests; nothing in the core or the CLI calls it.
//
// Rasterize takes OrthoPolygon views rather than contour.Contour directly:
// geometry is imported by contour (for Point and the point-in-polygon
// auxiliary), so taking a contour type here would create an import cycle.
// Callers pass contour.Contour.AsOrthoPolygon() results instead.
//
// Grounded on rasterization.rs's draw_orthopolygons: a sweep of active
// vertical edges, toggling fill parity as each edge's y-span is entered or
// left, adapted here to target a raw byte raster instead of an image
// canvas.
func Rasterize(polys []OrthoPolygon, w, h int) []byte {
	type vedge struct{ y0, x, y1 int32 }

	var edges []vedge
	for _, poly := range polys {
		n := poly.Len()
		for i := 0; i < n; i++ {
			u := poly.EvenVertex(i)
			v := poly.EvenVertex((i + 1) % n)
			if u.Y < v.Y {
				edges = append(edges, vedge{y0: u.Y, x: v.X, y1: v.Y})
			} else {
				edges = append(edges, vedge{y0: v.Y, x: v.X, y1: u.Y})
			}
		}
	}

	out := make([]byte, w*h)
	if len(edges) == 0 {
		return out
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].y0 < edges[j].y0 })

	type active struct{ x, y1 int32 }
	var actives []active
	idx := 0

	for y := edges[0].y0; idx < len(edges) || len(actives) > 0; y++ {
		for idx < len(edges) && edges[idx].y0 == y {
			actives = append(actives, active{x: edges[idx].x, y1: edges[idx].y1})
			idx++
		}
		sort.Slice(actives, func(i, j int) bool { return actives[i].x < actives[j].x })

		parity := false
		var prevX int32
		kept := actives[:0]
		for _, a := range actives {
			if a.y1 <= y {
				continue
			}
			if parity {
				fillRow(out, w, h, y, prevX, a.x)
			}
			parity = !parity
			prevX = a.x
			kept = append(kept, a)
		}
		actives = kept
	}
	return out
}

func fillRow(out []byte, w, h int, y, x0, x1 int32) {
	if y < 0 || int(y) >= h {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > int32(w) {
		x1 = int32(w)
	}
	base := int(y) * w
	for x := x0; x < x1; x++ {
		out[base+int(x)] = 1
	}
}
