package raster

import (
	"reflect"
	"testing"
)

func TestFillRowChanges(t *testing.T) {
	ttable := []struct {
		name     string
		row      []byte
		inverted bool
		want     []int32
	}{
		{"all background", []byte{0, 0, 0}, false, []int32{Sentinel}},
		{"all foreground", []byte{1, 1, 1}, false, []int32{0, 3, Sentinel}},
		{"single foreground pixel", []byte{1}, false, []int32{0, 1, Sentinel}},
		{"foreground island", []byte{0, 1, 1, 0, 0}, false, []int32{1, 3, Sentinel}},
		{"two islands", []byte{1, 0, 1}, false, []int32{0, 1, 2, 3, Sentinel}},
		{"trailing foreground", []byte{0, 0, 1}, false, []int32{2, 3, Sentinel}},
		{"inverted flips background/foreground", []byte{0, 0, 0}, true, []int32{0, 3, Sentinel}},
		{"inverted with a hole", []byte{1, 0, 1}, true, []int32{1, 2, Sentinel}},
		{"empty row", []byte{}, false, []int32{Sentinel}},
	}

	for _, tt := range ttable {
		got := FillRowChanges(nil, tt.row, tt.inverted)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: FillRowChanges(%v, inverted=%v) = %v, want %v", tt.name, tt.row, tt.inverted, got, tt.want)
		}
	}
}

func TestFillRowChangesReusesBuffer(t *testing.T) {
	buf := make([]int32, 0, 8)
	buf = FillRowChanges(buf, []byte{1, 1}, false)
	want := []int32{0, 2, Sentinel}
	if !reflect.DeepEqual(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
	buf = FillRowChanges(buf, []byte{0, 0}, false)
	want = []int32{Sentinel}
	if !reflect.DeepEqual(buf, want) {
		t.Fatalf("after reuse: got %v, want %v", buf, want)
	}
}

func TestFillPaddingRow(t *testing.T) {
	got := FillPaddingRow(nil)
	want := []int32{Sentinel}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FillPaddingRow() = %v, want %v", got, want)
	}
}

func drain(m *Merger) []Event {
	var out []Event
	for {
		e, ok := m.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestMerger(t *testing.T) {
	ttable := []struct {
		name        string
		top, bottom []int32
		want        []Event
	}{
		{"both empty", []int32{Sentinel}, []int32{Sentinel}, nil},
		{"top only", []int32{0, Sentinel}, []int32{Sentinel}, []Event{{X: 0, Side: Top}}},
		{"bottom only", []int32{Sentinel}, []int32{0, Sentinel}, []Event{{X: 0, Side: Bottom}}},
		{"coincident change merges to Both", []int32{0, Sentinel}, []int32{0, Sentinel}, []Event{{X: 0, Side: Both}}},
		{
			"interleaved",
			[]int32{1, 38, 39, 41, Sentinel},
			[]int32{1, 2, 39, 42, Sentinel},
			[]Event{
				{X: 1, Side: Both},
				{X: 2, Side: Bottom},
				{X: 38, Side: Top},
				{X: 39, Side: Both},
				{X: 41, Side: Top},
				{X: 42, Side: Bottom},
			},
		},
	}

	for _, tt := range ttable {
		got := drain(NewMerger(tt.top, tt.bottom))
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: merge(%v, %v) = %v, want %v", tt.name, tt.top, tt.bottom, got, tt.want)
		}
	}
}
