// Package hierarchy implements the union-find-backed hierarchy builder
// (§4.6): it tracks, as the scan proceeds, which contour currently encloses
// the scan position, and resolves the full parent/child/sibling tree once
// every ring has closed.
package hierarchy

import (
	"fmt"

	"github.com/aurelien-rainone/assertgo"
)

// None marks the absence of a next-sibling or first-child link. Index 0 is
// the synthetic root, so no real contour can ever be "none" by colliding
// with a valid index.
const None int32 = 0

// NoPoint marks a hierarchy Item with no head point (only the root has
// none).
const NoPoint int32 = -1

// relation classifies a build-time head record.
type relation uint8

const (
	relRoot   relation = iota // only heads[0]
	relParent                 // relTo is the parent's (possibly aliased) identifier at birth
	relAlias                  // relTo is the surviving identifier this head was merged into
)

type head struct {
	point int32
	rel   relation
	relTo int32
}

// Item is one finalized node of the contour hierarchy tree.
type Item struct {
	HeadPoint   int32
	Parent      int32
	NextSibling int32 // None if this is the last child of Parent
	FirstChild  int32 // None if this node has no children
}

// Builder accumulates head records as Heads and Feet are scanned, then
// projects the surviving heads into a dense hierarchy tree on Finalize.
type Builder struct {
	heads         []head
	contourToLeft int32
}

// New returns a Builder positioned outside every ring (contourToLeft ==
// root).
func New() *Builder {
	return &Builder{heads: []head{{rel: relRoot}}}
}

// AddContour registers a new ring born at a Head, as the contour whose
// parent is whatever currently encloses the scan position. Both of the new
// ring's open ends are tagged with the single identifier this returns —
// CrossContour tells them apart later by which one the scan is already
// inside.
func (b *Builder) AddContour(headPoint int32) int32 {
	id := int32(len(b.heads))
	b.heads = append(b.heads, head{point: headPoint, rel: relParent, relTo: b.contourToLeft})
	return id
}

// CrossContour updates which contour now encloses the scan position, as
// the scan crosses a ring boundary at a Shelf or Vertical tagged with id.
// Entering and exiting the same ring call this with the same id; the two
// are told apart by comparing against the ring the scan is already inside:
// crossing a wall of the ring we're currently in means we're leaving it
// (revert to its parent), crossing any other ring's wall means entering it.
func (b *Builder) CrossContour(id int32) {
	target := b.unalias(id)
	if b.contourToLeft == target {
		b.contourToLeft = b.parentAtBirth(target)
		return
	}
	b.contourToLeft = target
}

// MergeContours is called on both Foot kinds, with the identifiers of the
// two ring ends the Foot joins (the queue entries it just popped, in
// whichever order — the operation is symmetric). If the two ends already
// unalias to the same ring, it just closed for good: the scan returns to
// whatever enclosed that ring at birth, regardless of whether an
// intervening merge (rather than an ordinary CrossContour) left the scan
// appearing to still be "inside" it. Otherwise the larger-indexed
// (younger) of the two ring identifiers is aliased onto the smaller
// (older), and contourToLeft follows the alias if it was pointing at the
// one just aliased away.
func (b *Builder) MergeContours(p, q int32) {
	from := b.unalias(p)
	to := b.unalias(q)
	if from == to {
		b.contourToLeft = b.parentAtBirth(from)
		return
	}
	if from < to {
		from, to = to, from
	}
	b.heads[from].rel = relAlias
	b.heads[from].relTo = to
	if b.contourToLeft == from {
		b.contourToLeft = to
	}
}

// parentAtBirth returns whatever enclosed id when it was first recorded by
// AddContour. id must already be unaliased.
func (b *Builder) parentAtBirth(id int32) int32 {
	if id == 0 {
		return 0
	}
	assert.True(b.heads[id].rel == relParent, "hierarchy: parentAtBirth on alias head %d", id)
	return b.unalias(b.heads[id].relTo)
}

// AtRoot reports whether the scan currently lies outside every contour,
// i.e. has re-exited the synthetic root. The driver checks this after the
// last row.
func (b *Builder) AtRoot() bool {
	return b.unalias(b.contourToLeft) == 0
}

func (b *Builder) unalias(id int32) int32 {
	for b.heads[id].rel == relAlias {
		id = b.heads[id].relTo
	}
	return id
}

// Finalize verifies the scan has fully exited the root, then materializes
// the dense parent/child/sibling tree. Index 0 of the result is always the
// synthetic root.
func (b *Builder) Finalize() []Item {
	if !b.AtRoot() {
		panic("hierarchy: scan did not re-exit the root contour; contours were left unclosed")
	}

	// First pass: assign a dense hierarchy index to every surviving
	// (non-alias) head, root included, in head-record order.
	index := make([]int32, len(b.heads))
	items := make([]Item, 1, len(b.heads))
	items[0] = Item{HeadPoint: NoPoint, Parent: NoPoint, NextSibling: None, FirstChild: None}
	for h := 1; h < len(b.heads); h++ {
		if b.heads[h].rel != relAlias {
			index[h] = int32(len(items))
			items = append(items, Item{})
		}
	}

	// Second pass, in reverse head-record order: emit each surviving head
	// and thread it into its parent's child list. Reverse order means the
	// earliest-born child of any node is linked last, landing at the head
	// of the sibling list — so first_child/next_sibling traversal visits
	// children in the same order they were scanned.
	for h := len(b.heads) - 1; h >= 1; h-- {
		hd := b.heads[h]
		if hd.rel == relAlias {
			continue
		}
		self := index[h]
		parent := index[b.unalias(hd.relTo)]

		items[self].HeadPoint = hd.point
		items[self].Parent = parent
		items[self].NextSibling = items[parent].FirstChild
		items[parent].FirstChild = self
	}

	assertNoDanglingAlias(b, index)

	return items
}

func assertNoDanglingAlias(b *Builder, index []int32) {
	for h := 1; h < len(b.heads); h++ {
		if b.heads[h].rel == relAlias {
			if b.heads[b.unalias(int32(h))].rel == relAlias {
				panic(fmt.Sprintf("hierarchy: alias chain did not resolve for head %d", h))
			}
		} else if index[h] <= 0 {
			panic(fmt.Sprintf("hierarchy: surviving head %d was not assigned a hierarchy index", h))
		}
	}
}
