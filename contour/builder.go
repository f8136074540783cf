package contour

import (
	"github.com/arl/go-contour/contour/internal/automaton"
	"github.com/arl/go-contour/contour/internal/hierarchy"
	"github.com/arl/go-contour/contour/internal/pointlist"
)

// collectionBuilder wires the feature automaton's output to the point-list
// and hierarchy builders, exactly as the teacher's ContourCollectionBuilder
// wires Recast's contour-feature stream to Contour/Region construction in
// recast/contour.go and recast/region.go.
type collectionBuilder struct {
	width, height int32

	points *pointlist.Builder
	hier   *hierarchy.Builder
	queue  fifo
}

func newCollectionBuilder(width, height int32) *collectionBuilder {
	return &collectionBuilder{
		width:  width,
		height: height,
		points: pointlist.New(),
		hier:   hierarchy.New(),
	}
}

// dispatch applies one feature emitted by the automaton at row y, per the
// table in spec §4.5.
func (b *collectionBuilder) dispatch(y int32, f automaton.Feature) {
	switch f.Kind {
	case automaton.Head:
		p := b.points.Add(f.X, y)
		id := b.hier.AddContour(p)
		// Both open ends of the new ring carry the same identifier;
		// CrossContour tells entry from exit by comparing against
		// whichever ring the scan is already inside (spec §4.6).
		b.queue.push(queueEntry{point: p, contour: id})
		b.queue.push(queueEntry{point: p, contour: id})

	case automaton.Vertical:
		requireQueueLen(b.queue.len(), 1, f.Kind)
		e := b.queue.pop()
		b.hier.CrossContour(e.contour)
		b.queue.push(e)

	case automaton.LeftShelf:
		requireQueueLen(b.queue.len(), 1, f.Kind)
		e := b.queue.pop()
		p := b.points.AddWithNext(f.X, y, e.point)
		b.hier.CrossContour(e.contour)
		b.queue.push(queueEntry{point: p, contour: e.contour})

	case automaton.RightShelf:
		requireQueueLen(b.queue.len(), 1, f.Kind)
		e := b.queue.pop()
		p := b.points.AddWithPrevious(f.X, y, e.point)
		b.hier.CrossContour(e.contour)
		b.queue.push(queueEntry{point: p, contour: e.contour})

	case automaton.InnerFoot:
		requireQueueLen(b.queue.len(), 2, f.Kind)
		from := b.queue.pop()
		to := b.queue.pop()
		b.points.AddWithNextAndPrevious(f.X, y, to.point, from.point)
		b.hier.MergeContours(from.contour, to.contour)

	case automaton.OuterFoot:
		requireQueueLen(b.queue.len(), 2, f.Kind)
		to := b.queue.pop()
		from := b.queue.pop()
		b.points.AddWithNextAndPrevious(f.X, y, to.point, from.point)
		b.hier.MergeContours(to.contour, from.contour)

	case automaton.None:
		// Internal automaton transition; no vertex, no queue activity.
	}
}

func requireQueueLen(got, want int, kind automaton.Kind) {
	if got < want {
		panic("contour: work queue underflow processing " + kind.String())
	}
}

// finish asserts the queue has drained and the scan re-exited the root
// contour, then materializes the finished Collection.
func (b *collectionBuilder) finish() *Collection {
	if !b.queue.empty() {
		panic("contour: work queue left non-empty at end of scan")
	}
	items := b.hier.Finalize()
	return newCollection(b.width, b.height, b.points.Points(), items)
}
