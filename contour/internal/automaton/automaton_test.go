package automaton

import (
	"testing"

	"github.com/arl/go-contour/contour/internal/raster"
)

func TestAutomatonSinglePixelRing(t *testing.T) {
	// Row 0 (head row): a lone foreground pixel produces changes at x=0,1.
	// Against the leading padding row (all background), the merge yields
	// two Bottom events: (0, Bottom), (1, Bottom).
	a := New()
	if !a.AtRest() {
		t.Fatalf("new automaton must start at rest")
	}

	f := a.Step(raster.Event{X: 0, Side: raster.Bottom})
	if f.Kind != None {
		t.Fatalf("step 1: got %v, want None", f.Kind)
	}
	f = a.Step(raster.Event{X: 1, Side: raster.Bottom})
	if f.Kind != Head || f.X != 0 {
		t.Fatalf("step 2: got {%v %v}, want {Head 0}", f.Kind, f.X)
	}
	if !a.AtRest() {
		t.Fatalf("automaton must return to rest after a Head")
	}

	// Row 1 (foot row): against the trailing padding row, the merge yields
	// two Top events: (0, Top), (1, Top).
	a.Reset()
	f = a.Step(raster.Event{X: 0, Side: raster.Top})
	if f.Kind != None {
		t.Fatalf("step 3: got %v, want None", f.Kind)
	}
	f = a.Step(raster.Event{X: 1, Side: raster.Top})
	if f.Kind != OuterFoot || f.X != 1 {
		t.Fatalf("step 4: got {%v %v}, want {OuterFoot 1}", f.Kind, f.X)
	}
	if !a.AtRest() {
		t.Fatalf("automaton must return to rest after an OuterFoot")
	}
}

func TestAutomatonVerticalWall(t *testing.T) {
	// A Both event at state 0 is a Vertical: both walls unchanged, no new
	// vertex, the automaton re-enters state 3 (inside the ring, between its
	// two walls) then returns to 0 on the second Both.
	a := New()
	f := a.Step(raster.Event{X: 5, Side: raster.Both})
	if f.Kind != Vertical {
		t.Fatalf("left wall: got %v, want Vertical", f.Kind)
	}
	f = a.Step(raster.Event{X: 9, Side: raster.Both})
	if f.Kind != Vertical {
		t.Fatalf("right wall: got %v, want Vertical", f.Kind)
	}
	if !a.AtRest() {
		t.Fatalf("automaton must be at rest after a matched pair of verticals")
	}
}

func TestKindString(t *testing.T) {
	ttable := []struct {
		k    Kind
		want string
	}{
		{None, "None"},
		{Head, "Head"},
		{OuterFoot, "OuterFoot"},
		{InnerFoot, "InnerFoot"},
		{LeftShelf, "LeftShelf"},
		{RightShelf, "RightShelf"},
		{Vertical, "Vertical"},
	}
	for _, tt := range ttable {
		if got := tt.k.String(); got != tt.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
