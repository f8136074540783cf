package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// OutputOptions is the settings file format read by --config and written
// by 'contour config'.
type OutputOptions struct {
	// Invert treats dark pixels as foreground instead of light ones.
	Invert bool `yaml:"invert"`
	// Format is the SVG or report format to favor when ambiguous (reserved
	// for future subcommands; "path" is the only value so far).
	Format string `yaml:"format"`
	// BackgroundIsWhite documents the assumed background polarity of the
	// source image, independent of Invert (which flips it).
	BackgroundIsWhite bool `yaml:"background_is_white"`
}

func defaultOutputOptions() OutputOptions {
	return OutputOptions{Invert: false, Format: "path", BackgroundIsWhite: true}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a settings file",
	Long: `Create a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'contour.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "contour.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(defaultOutputOptions())
		check(err)
		check(os.WriteFile(path, buf, 0o644))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
