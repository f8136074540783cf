package cmd

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	yaml "gopkg.in/yaml.v2"
)

func check(err error) {
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// fileExists returns nil if path exists, or an error describing why it
// doesn't (or couldn't be stat'ed).
func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file '%v'", path)
		}
		return err
	}
	return nil
}

// confirmIfExists checks that a file exists, and asks for confirmation to
// overwrite it. It returns true if the file doesn't exist, or the user
// answered yes.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if err := fileExists(path); err != nil {
		return true, nil
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from stdin; ENTER
// defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n', '\n':
			return false
		}
	}
}

// loadOptions reads the settings file named by --config, if given, falling
// back to defaults with --invert applied.
func loadOptions() OutputOptions {
	opts := defaultOutputOptions()
	if cfgVal != "" {
		buf, err := os.ReadFile(cfgVal)
		check(err)
		check(yaml.Unmarshal(buf, &opts))
	}
	if invertVal {
		opts.Invert = true
	}
	return opts
}

// decodeBinary opens the image at path, decodes it, and binarizes it by
// luma threshold: a pixel at or above the midpoint of the 16-bit gray
// range is foreground, unless opts.Invert flips that. Mirrors main.rs's
// `.into_luma8()` decode step, adapted to Go's standard image package
// rather than a third-party decoder, per the ambient-concerns note in
// SPEC_FULL.md.
func decodeBinary(path string, opts OutputOptions) (pixels []byte, w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, w*h)
	const threshold = 0x8000

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			fg := gray.Y >= threshold
			if opts.Invert {
				fg = !fg
			}
			if fg {
				pixels[y*w+x] = 1
			}
		}
	}
	return pixels, w, h, nil
}
