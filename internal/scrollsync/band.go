// Package scrollsync keeps the highlighted menu category in step with the
// scroll position of the menu body.
//
// Distances are measured in rows. Section tops are document rows; the
// observer converts them to viewport rows using the current scroll offset.
package scrollsync

import "math"

// Options configure the activation band and jump offset
type Options struct {
	// HeaderOffset is the number of rows at the top of the viewport that
	// do not count towards activation. Jumps place a section heading this
	// many rows below the top edge.
	HeaderOffset int
	// BottomExclusion is the fraction of the viewport height, measured from
	// the bottom, that does not count towards activation.
	BottomExclusion float64
}

// DefaultOptions returns a one row header offset with the bottom 60% of
// the viewport excluded
func DefaultOptions() Options {
	return Options{
		HeaderOffset:    1,
		BottomExclusion: 0.6,
	}
}

// Band is the half-open row range [Top, Bottom) of the viewport in which a
// section counts as being viewed
type Band struct {
	Top    int
	Bottom int
}

// Band returns the activation band of a viewport with the given height
func (o Options) Band(viewportHeight int) Band {
	excluded := int(math.Floor(float64(viewportHeight) * o.BottomExclusion))
	b := Band{
		Top:    o.HeaderOffset,
		Bottom: viewportHeight - excluded,
	}
	if b.Top < 0 {
		b.Top = 0
	}
	if b.Bottom < b.Top {
		b.Bottom = b.Top
	}
	return b
}

// Empty reports whether the band covers no rows
func (b Band) Empty() bool {
	return b.Bottom <= b.Top
}

// Intersects reports whether rows [top, top+height) overlap the band
func (b Band) Intersects(top, height int) bool {
	if height <= 0 || b.Empty() {
		return false
	}
	return top < b.Bottom && top+height > b.Top
}

// Section is the layout of one category section in document rows
type Section struct {
	ID     string
	Top    int
	Height int
}
