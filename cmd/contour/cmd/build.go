package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-contour/buildctx"
	"github.com/arl/go-contour/contour"
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build IMAGE",
	Short: "extract contours from an image and print a summary",
	Long: `Decode IMAGE, binarize it, extract its contour hierarchy and
print a one-line summary: how many contours were found and how many are
outer. With --verbose it also prints per-row progress messages and how
long each build phase took.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

var verboseVal bool

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&verboseVal, "verbose", false, "print per-row progress messages")
}

func doBuild(cmd *cobra.Command, args []string) {
	path := args[0]
	check(fileExists(path))
	opts := loadOptions()

	pixels, w, h, err := decodeBinary(path, opts)
	check(err)

	ctx := buildctx.New(verboseVal)
	col, err := contour.Build(pixels, w, h, false, ctx)
	check(err)

	all := col.AllContours()
	outer := col.OuterContours()
	fmt.Printf("%s: %dx%d, %d contour(s), %d outer\n", path, w, h, len(all), len(outer))

	for _, msg := range ctx.Messages() {
		fmt.Println(msg)
	}
	if verboseVal {
		fmt.Printf("total: %s, row changes: %s, automaton: %s, hierarchy: %s\n",
			ctx.ElapsedTime(buildctx.TimerBuildTotal),
			ctx.ElapsedTime(buildctx.TimerRowChanges),
			ctx.ElapsedTime(buildctx.TimerAutomaton),
			ctx.ElapsedTime(buildctx.TimerHierarchy))
	}
}
