package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-contour/contour"
	"github.com/arl/go-contour/geometry"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info IMAGE",
	Short: "print a full report of an image's contour hierarchy",
	Long: `Decode IMAGE, extract its contour hierarchy, then print one line
per contour: its index, polarity, parent, vertex count and bounding box.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	path := args[0]
	check(fileExists(path))
	opts := loadOptions()

	pixels, w, h, err := decodeBinary(path, opts)
	check(err)

	col, err := contour.Build(pixels, w, h, false, nil)
	check(err)

	fmt.Printf("%s: %dx%d\n", path, w, h)
	for _, c := range col.AllContours() {
		polarity := "hole"
		if c.IsOuter() {
			polarity = "outer"
		}
		parent := -1
		if p, ok := c.Parent(); ok {
			parent = int(p.Index())
		}
		even := c.EvenVertices()
		fmt.Printf("%5d: %-5s parent=%-4d vertices=%-3d bbox=%s\n",
			c.Index(), polarity, parent, len(even), bbox(even))
	}
}

// bbox formats the bounding box of a contour's even vertices as "x0,y0-x1,y1".
func bbox(pts []geometry.Point) string {
	if len(pts) == 0 {
		return "-"
	}
	xMin, yMin := pts[0].X, pts[0].Y
	xMax, yMax := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
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
	return fmt.Sprintf("%d,%d-%d,%d", xMin, yMin, xMax, yMax)
}
