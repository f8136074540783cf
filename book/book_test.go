package book

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/go-contour/contour"
)

func build(t *testing.T, pixels []byte, w, h int) *contour.Collection {
	t.Helper()
	col, err := contour.Build(pixels, w, h, false, nil)
	assert.NoError(t, err)
	return col
}

func TestNewSinglePageUniqueGlyphs(t *testing.T) {
	// A single pixel and a 2x1 blob: two distinct shapes, so every glyph
	// stays Unique.
	pixels := []byte{
		1, 0, 0, 0,
		0, 0, 1, 1,
	}
	b := New(build(t, pixels, 4, 2))
	pages := b.Pages()
	assert.Len(t, pages, 1)

	entries := pages[0].GlyphEntries()
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, Unique, e.Kind, "entry %+v", e)
	}
	assert.Empty(t, b.SharedGlyphs())
}

func TestNewPageSharedGlyph(t *testing.T) {
	// Three single pixels, same shape, all on one page: page-shared, not
	// book-shared (there's only one page).
	pixels := []byte{
		1, 0, 1, 0, 1,
	}
	b := New(build(t, pixels, 5, 1))
	pages := b.Pages()
	entries := pages[0].GlyphEntries()
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, PageShared, e.Kind, "entry %+v", e)
	}

	shared := pages[0].SharedGlyphs()
	if assert.Len(t, shared, 1) {
		assert.Equal(t, 3, shared[0].OccurrenceCount)
	}
	assert.Empty(t, b.SharedGlyphs(), "shape confined to one page must not be book-shared")
}

func TestNewBookSharedGlyph(t *testing.T) {
	// Same single-pixel shape appears once on each of two pages: book-shared.
	p1 := build(t, []byte{1, 0}, 2, 1)
	p2 := build(t, []byte{0, 1}, 2, 1)
	b := New(p1, p2)

	assert.Len(t, b.Pages(), 2)
	for _, page := range b.Pages() {
		for _, e := range page.GlyphEntries() {
			assert.Equal(t, BookShared, e.Kind, "entry %+v", e)
		}
	}

	shared := b.SharedGlyphs()
	if assert.Len(t, shared, 1) {
		assert.Equal(t, 2, shared[0].OccurrenceCount)
	}
}

func TestNewEmpty(t *testing.T) {
	b := New()
	assert.Empty(t, b.Pages())
	assert.Empty(t, b.SharedGlyphs())
}
