package geometry

import "testing"

// evenVertices is a plain []Point implementing OrthoPolygon, for tests.
type evenVertices []Point

func (v evenVertices) Len() int            { return len(v) }
func (v evenVertices) EvenVertex(i int) Point { return v[i] }

// square is the 2×2 rectangle [0,2]×[0,2], stored as the two diagonal even
// vertices a contour.Contour would produce (spec §3 "Even vertex").
var square = evenVertices{{X: 0, Y: 0}, {X: 2, Y: 2}}

func TestPointInPolygonInsideOutside(t *testing.T) {
	ttable := []struct {
		p    Point
		want Position
	}{
		{Point{1, 1}, Inside},
		{Point{3, 3}, Outside},
		{Point{5, 1}, Outside},
		{Point{-1, -1}, Outside},
		{Point{0, 0}, OnVertex},
		{Point{2, 2}, OnVertex},
		{Point{1, 0}, OnEdge},
		{Point{2, 1}, OnEdge},
		{Point{1, 2}, OnEdge},
		{Point{0, 1}, OnEdge},
	}

	for _, tt := range ttable {
		got := PointInPolygon(square, tt.p)
		if got != tt.want {
			t.Fatalf("PointInPolygon(square, %v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

// ring is an L-shaped orthogonal polygon (three even vertices), to exercise
// the general ray-cast path beyond a single rectangle.
//
//	(0,0)------(4,0)
//	  |          |
//	  |  (2,2)--(4,2)
//	  |    |
//	(0,4)-(2,4)      (a 4x4 square with its bottom-right 2x2 notched away)
var lshape = evenVertices{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 2, Y: 4}}

func TestPointInPolygonNonRectangular(t *testing.T) {
	// lshape traces: (0,0)->(4,0)->(4,2)->(2,2)->(2,4)->(0,4)->(0,0),
	// an L-shaped region. (1,1) sits in the square part; (3,3) sits in the
	// notch that was cut away.
	if got := PointInPolygon(lshape, Point{1, 1}); got != Inside {
		t.Fatalf("(1,1) = %v, want Inside", got)
	}
	if got := PointInPolygon(lshape, Point{3, 3}); got != Outside {
		t.Fatalf("(3,3) = %v, want Outside (notched away)", got)
	}
	if got := PointInPolygon(lshape, Point{1, 3}); got != Inside {
		t.Fatalf("(1,3) = %v, want Inside", got)
	}
}

func TestPointInPolygonEmpty(t *testing.T) {
	if got := PointInPolygon(evenVertices{}, Point{0, 0}); got != Outside {
		t.Fatalf("empty polygon = %v, want Outside", got)
	}
}

func TestPositionString(t *testing.T) {
	ttable := []struct {
		p    Position
		want string
	}{
		{Outside, "Outside"},
		{Inside, "Inside"},
		{OnEdge, "OnEdge"},
		{OnVertex, "OnVertex"},
	}
	for _, tt := range ttable {
		if got := tt.p.String(); got != tt.want {
			t.Fatalf("Position(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
