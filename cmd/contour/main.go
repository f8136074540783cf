// Command contour decodes an image, extracts its contour hierarchy, and
// reports or renders it.
package main

import "github.com/arl/go-contour/cmd/contour/cmd"

func main() {
	cmd.Execute()
}
