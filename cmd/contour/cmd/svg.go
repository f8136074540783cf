package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/go-contour/contour"
	svgpkg "github.com/arl/go-contour/svg"
)

// svgCmd represents the svg command.
var svgCmd = &cobra.Command{
	Use:   "svg IMAGE OUT.svg",
	Short: "render an image's contours as an SVG document",
	Args:  cobra.ExactArgs(2),
	Run:   doSVG,
}

func init() {
	RootCmd.AddCommand(svgCmd)
}

func doSVG(cmd *cobra.Command, args []string) {
	path, out := args[0], args[1]
	check(fileExists(path))
	opts := loadOptions()

	pixels, w, h, err := decodeBinary(path, opts)
	check(err)

	col, err := contour.Build(pixels, w, h, false, nil)
	check(err)

	doc := svgpkg.Render(col)

	ok, err := confirmIfExists(out, fmt.Sprintf("file %s already exists, overwrite? [y/N]", out))
	if !ok {
		if err == nil {
			fmt.Println("aborted by user")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	check(os.WriteFile(out, []byte(doc), 0o644))
	fmt.Printf("svg written to '%s'\n", out)
}
