// Package automaton implements the six-state feature automaton (§4.3): it
// consumes the merged row-pair change stream produced by package raster and
// emits the contour features that drive the point-list and hierarchy
// builders.
package automaton

import (
	"github.com/aurelien-rainone/assertgo"
	"github.com/arl/go-contour/contour/internal/raster"
)

// Kind classifies one emitted feature.
type Kind uint8

const (
	None Kind = iota
	Head
	OuterFoot
	InnerFoot
	LeftShelf
	RightShelf
	Vertical
)

func (k Kind) String() string {
	switch k {
	case Head:
		return "Head"
	case OuterFoot:
		return "OuterFoot"
	case InnerFoot:
		return "InnerFoot"
	case LeftShelf:
		return "LeftShelf"
	case RightShelf:
		return "RightShelf"
	case Vertical:
		return "Vertical"
	default:
		return "None"
	}
}

// Feature is one automaton output: a classification plus the latched
// x-coordinate of its vertex (meaningless for Kind == None or Vertical).
type Feature struct {
	Kind Kind
	X    int32
}

type entry struct {
	next  uint8
	latch bool
	kind  Kind
}

// table[side][state] is the transition table from spec §4.3: three sides
// times six states, eighteen entries total.
var table = [3][6]entry{
	raster.Top: {
		0: {next: 1, latch: false, kind: None},
		1: {next: 0, latch: true, kind: OuterFoot},
		2: {next: 3, latch: false, kind: LeftShelf},
		3: {next: 4, latch: true, kind: None},
		4: {next: 3, latch: false, kind: InnerFoot},
		5: {next: 0, latch: true, kind: RightShelf},
	},
	raster.Bottom: {
		0: {next: 2, latch: true, kind: None},
		1: {next: 3, latch: true, kind: LeftShelf},
		2: {next: 0, latch: false, kind: Head},
		3: {next: 5, latch: false, kind: None},
		4: {next: 0, latch: false, kind: RightShelf},
		5: {next: 3, latch: true, kind: Head},
	},
	raster.Both: {
		0: {next: 3, latch: false, kind: Vertical},
		1: {next: 4, latch: true, kind: LeftShelf},
		2: {next: 5, latch: false, kind: LeftShelf},
		3: {next: 0, latch: false, kind: Vertical},
		4: {next: 5, latch: false, kind: InnerFoot},
		5: {next: 4, latch: true, kind: Head},
	},
}

// Automaton is the six-state transducer. The zero value starts in state 0
// ("outside a ring"), ready to use.
type Automaton struct {
	state uint8
	x     int32
}

// New returns an Automaton in its initial state.
func New() *Automaton { return &Automaton{} }

// Reset returns the automaton to state 0. The driver loop calls this at the
// start of every row-pair (Invariant A1: the automaton must both start and
// end each row-pair in state 0).
func (a *Automaton) Reset() { a.state = 0 }

// AtRest reports whether the automaton is in state 0, i.e. outside every
// ring. Used to check Invariant A1 at the end of a row-pair.
func (a *Automaton) AtRest() bool { return a.state == 0 }

// Step consumes one merged change event and returns the feature it
// produces.
func (a *Automaton) Step(evt raster.Event) Feature {
	e := table[evt.Side][a.state]
	if e.latch {
		a.x = evt.X
	}
	a.state = e.next

	assert.True(a.state < 6, "automaton: invalid state %d", a.state)

	return Feature{Kind: e.kind, X: a.x}
}
