package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	invertVal bool
	cfgVal    string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "contour",
	Short: "extract and report the contour hierarchy of a binary image",
	Long: `contour decodes an image, binarizes it by luma threshold, and
extracts the parent/child/sibling hierarchy of its foreground regions:
	- build: run the extraction and print a one-line summary
	- info: run the extraction and print a full per-contour report
	- svg: run the extraction and render it as an SVG document
	- config: write a settings file prefilled with default values`,
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&invertVal, "invert", false, "treat dark pixels as foreground instead of light ones")
	RootCmd.PersistentFlags().StringVar(&cfgVal, "config", "", "settings file (see 'contour config')")
}
