// Package svg renders a contour collection as an SVG document: one path
// per outermost contour, with its descendant holes folded into the same
// path so the even-odd fill rule punches them out. Grounded on
// original_source/src/silly_svg.rs and main.rs's get_svg.
package svg

import (
	"fmt"
	"strings"

	"github.com/arl/go-contour/contour"
)

// Render returns an SVG document covering c's whole raster, with one
// <path> per outermost contour.
func Render(c *contour.Collection) string {
	w, h := c.Dimensions()

	var paths []string
	for _, outer := range c.OutermostContours() {
		paths = append(paths, path(outer))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%d\" height=\"%d\">\n", w, h)
	b.WriteString(" <g fill=\"blue\" fill-opacity=\"0.5\" stroke=\"blue\" stroke-width=\"0.1\">\n")
	for _, p := range paths {
		b.WriteString("  ")
		b.WriteString(p)
		b.WriteByte('\n')
	}
	b.WriteString(" </g>\n</svg>")
	return b.String()
}

// path builds one <path> element for outer and every contour nested
// inside it, each contributing its own M/H/V/Z subpath so the even-odd
// fill rule cuts holes (and islands inside holes) out correctly.
func path(outer contour.Contour) string {
	var data strings.Builder
	writeSubpath(&data, outer)
	for _, d := range outer.AllDescendants() {
		writeSubpath(&data, d)
	}
	return fmt.Sprintf(`<path d="%s"/>`, data.String())
}

func writeSubpath(data *strings.Builder, c contour.Contour) {
	even := c.EvenVertices()
	if len(even) == 0 {
		return
	}
	first := even[0].X
	fmt.Fprintf(data, "M%d,%d", even[0].X, even[0].Y)
	for _, p := range even[1:] {
		fmt.Fprintf(data, "H%dV%d", p.X, p.Y)
	}
	fmt.Fprintf(data, "H%dZ", first)
}
