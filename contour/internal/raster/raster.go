// Package raster implements the two lowest stages of the contour pipeline:
// turning one pixel row into an ascending sequence of binarization changes
// (§4.1), and merging two adjacent rows' change sequences into one ordered
// stream of (x, side) events (§4.2).
package raster

import "github.com/aurelien-rainone/assertgo"

// Sentinel terminates every row-change sequence. It compares greater than
// any coordinate a real image can produce (images are validated to fit the
// positive half of the int32 range before a build starts).
const Sentinel = int32(1<<31 - 1)

// FillRowChanges scans one pixel row and appends to buf the ascending
// x-positions at which the binarized pixel value differs from its left
// neighbour (the virtual left-edge neighbour carries the background
// edge-value, inverted), terminated by Sentinel. buf is reset to length 0
// before scanning; callers reuse the same backing array across rows by
// passing buf[:0].
func FillRowChanges(buf []int32, row []byte, inverted bool) []int32 {
	buf = buf[:0]
	// The virtual left-edge neighbour is background. cur is already
	// normalized by the inverted XOR below, so "background" is always
	// false here regardless of inverted — inverted only reshapes which raw
	// byte values map to the foreground/background booleans that follow.
	prev := false
	for x, b := range row {
		cur := (b != 0) != inverted // XOR
		if cur != prev {
			buf = append(buf, int32(x))
			prev = cur
		}
	}
	if prev {
		buf = append(buf, int32(len(row)))
	}
	buf = append(buf, Sentinel)

	assert.True(isStrictlyAscending(buf), "raster: row changes must strictly ascend: %v", buf)
	assert.True((len(buf)-1)%2 == 0, "raster: row change count must be even (excluding sentinel): %v", buf)

	return buf
}

// FillPaddingRow resets buf to hold only the sentinel, representing a
// virtual row that is entirely background.
func FillPaddingRow(buf []int32) []int32 {
	buf = buf[:0]
	return append(buf, Sentinel)
}

func isStrictlyAscending(xs []int32) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] >= xs[i] {
			return false
		}
	}
	return true
}

// Side tells which row (or both) a merged change event came from.
type Side uint8

const (
	Top Side = iota
	Bottom
	Both
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Both:
		return "Both"
	default:
		return "Side(?)"
	}
}

// Event is one x-position at which the top row, the bottom row, or both
// change binarization within a row-pair.
type Event struct {
	X    int32
	Side Side
}

// Merger merges two pre-materialized, sentinel-terminated row-change slices
// into an ascending stream of Events, pairing equal x-values into Both.
type Merger struct {
	top, bottom []int32
	i, j        int
}

// NewMerger returns a Merger positioned at the start of top and bottom.
// Both slices must end with Sentinel.
func NewMerger(top, bottom []int32) *Merger {
	return &Merger{top: top, bottom: bottom}
}

// Next returns the next merged event in ascending x order, or false once
// both streams have reached their sentinel.
func (m *Merger) Next() (Event, bool) {
	t, b := m.top[m.i], m.bottom[m.j]
	if t == Sentinel && b == Sentinel {
		return Event{}, false
	}
	switch {
	case t < b:
		m.i++
		return Event{X: t, Side: Top}, true
	case t > b:
		m.j++
		return Event{X: b, Side: Bottom}, true
	default:
		m.i++
		m.j++
		return Event{X: t, Side: Both}, true
	}
}
