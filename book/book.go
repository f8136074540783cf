// Package book builds a cross-page glyph dictionary over a set of
// contour collections: identical glyph shapes (package glyph), wherever
// they occur, are deduplicated and classified by how widely they're
// shared. Grounded on original_source/src/book.rs.
package book

import (
	"image"

	"github.com/arl/go-contour/contour"
	"github.com/arl/go-contour/glyph"
)

// Kind classifies how widely a glyph occurrence's shape is shared.
type Kind uint8

const (
	// Unique means this shape occurs exactly once in the whole book.
	Unique Kind = iota
	// PageShared means this shape occurs more than once, but only on a
	// single page.
	PageShared
	// BookShared means this shape occurs on more than one page.
	BookShared
)

func (k Kind) String() string {
	switch k {
	case PageShared:
		return "PageShared"
	case BookShared:
		return "BookShared"
	default:
		return "Unique"
	}
}

// Entry is one occurrence of a glyph on a page.
type Entry struct {
	Location image.Point
	Kind     Kind
	ID       int
	Glyph    *glyph.Glyph
}

// Shared describes a glyph shape and how often it recurs, either across a
// page (Page.SharedGlyphs) or across the whole book (Book.SharedGlyphs).
type Shared struct {
	ID              int
	OccurrenceCount int
	Glyph           *glyph.Glyph
}

// Page is one contour collection's worth of glyph occurrences, classified
// against both its own and the book's shared-glyph dictionaries.
type Page struct {
	size     image.Point
	entries  []pageEntry
	pageDict map[int]int // glyph index -> occurrence count, page-local
	bookDict map[int]int // glyph index -> occurrence count, book-wide
	glyphs   []*glyph.Glyph
}

type pageEntry struct {
	location image.Point
	index    int
}

// Size returns the page's width and height, taken from the collection it
// was built from.
func (p Page) Size() image.Point { return p.size }

// GlyphEntries returns every glyph occurrence on the page, in the order
// their outer contours were discovered.
func (p Page) GlyphEntries() []Entry {
	out := make([]Entry, len(p.entries))
	for i, e := range p.entries {
		kind := Unique
		if _, ok := p.bookDict[e.index]; ok {
			kind = BookShared
		} else if _, ok := p.pageDict[e.index]; ok {
			kind = PageShared
		}
		out[i] = Entry{Location: e.location, Kind: kind, ID: e.index, Glyph: p.glyphs[e.index]}
	}
	return out
}

// SharedGlyphs returns the glyphs that appear only on this page, and more
// than once on it.
func (p Page) SharedGlyphs() []Shared {
	out := make([]Shared, 0, len(p.pageDict))
	for index, count := range p.pageDict {
		out = append(out, Shared{ID: index, OccurrenceCount: count, Glyph: p.glyphs[index]})
	}
	return out
}

// Book indexes every distinct glyph shape found across a set of pages,
// classifying each by how widely it recurs.
type Book struct {
	pages  []Page
	dict   map[int]int // glyph index -> occurrence count, book-wide
	glyphs []*glyph.Glyph
}

type distribution struct {
	count int
	pages map[int]struct{}
}

// New builds a Book from a sequence of contour collections, one per page,
// in order. Each page's outermost contours (the direct children of the
// root) are turned into glyphs (package glyph) and deduplicated by shape
// across the whole book; outer contours nested inside holes are not.
func New(collections ...*contour.Collection) *Book {
	glyphIndex := make(map[string]int)
	var glyphs []*glyph.Glyph
	var dist []distribution

	type rawPage struct {
		size     image.Point
		entries  []pageEntry
		pageDict map[int]int
	}
	var raw []rawPage

	for pageIdx, col := range collections {
		w, h := col.Dimensions()
		entries := make([]pageEntry, 0, len(col.OutermostContours()))

		for _, outer := range col.OutermostContours() {
			g, loc := glyph.FromContour(outer)
			key := g.Key()
			idx, ok := glyphIndex[key]
			if !ok {
				idx = len(glyphs)
				glyphIndex[key] = idx
				gcopy := g
				glyphs = append(glyphs, &gcopy)
				dist = append(dist, distribution{pages: make(map[int]struct{})})
			}
			dist[idx].count++
			dist[idx].pages[pageIdx] = struct{}{}
			entries = append(entries, pageEntry{location: loc, index: idx})
		}

		raw = append(raw, rawPage{
			size:     image.Point{X: int(w), Y: int(h)},
			entries:  entries,
			pageDict: make(map[int]int),
		})
	}

	bookDict := make(map[int]int)
	for idx, d := range dist {
		switch {
		case len(d.pages) > 1:
			bookDict[idx] = d.count
		case d.count > 1:
			for pageIdx := range d.pages {
				raw[pageIdx].pageDict[idx] = d.count
			}
		}
	}

	pages := make([]Page, len(raw))
	for i, rp := range raw {
		pages[i] = Page{
			size:     rp.size,
			entries:  rp.entries,
			pageDict: rp.pageDict,
			bookDict: bookDict,
			glyphs:   glyphs,
		}
	}

	return &Book{pages: pages, dict: bookDict, glyphs: glyphs}
}

// Pages returns every page of the book, in the order they were passed to
// New.
func (b *Book) Pages() []Page { return b.pages }

// SharedGlyphs returns the glyphs that appear on more than one page of the
// book.
func (b *Book) SharedGlyphs() []Shared {
	out := make([]Shared, 0, len(b.dict))
	for index, count := range b.dict {
		out = append(out, Shared{ID: index, OccurrenceCount: count, Glyph: b.glyphs[index]})
	}
	return out
}
