package svg

import (
	"strings"
	"testing"

	"github.com/arl/go-contour/contour"
)

func TestRenderSinglePixel(t *testing.T) {
	col, err := contour.Build([]byte{1}, 1, 1, false, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := Render(col)

	if !strings.Contains(got, `width="1" height="1"`) {
		t.Fatalf("missing dimensions in %q", got)
	}
	if !strings.Contains(got, `<path d="M0,0H1V1H0Z"/>`) {
		t.Fatalf("unexpected path data in %q", got)
	}
}

func TestRenderEmptyRaster(t *testing.T) {
	col, err := contour.Build([]byte{0}, 1, 1, false, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := Render(col)
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "</svg>") {
		t.Fatalf("malformed document: %q", got)
	}
	if strings.Contains(got, "<path") {
		t.Fatalf("unexpected path for an empty raster: %q", got)
	}
}

func TestRenderFoldsHoleIntoOutermostPath(t *testing.T) {
	pixels := []byte{
		1, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}
	col, err := contour.Build(pixels, 3, 3, false, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := Render(col)
	if strings.Count(got, "<path") != 1 {
		t.Fatalf("want exactly one <path> for one outermost contour, got %q", got)
	}
	// The path must carry two M commands: one for the outer ring, one
	// for the hole folded in as a second subpath.
	if strings.Count(got, "M") != 2 {
		t.Fatalf("want two subpaths (outer + hole), got %q", got)
	}
}
