package scrollsync

// NavStrip models the horizontally scrollable row of category buttons.
// Reveal keeps a button in view by centering it when the row is wider
// than the strip.
type NavStrip struct {
	widths []int
	gap    int
	width  int
	offset int
}

// NewNavStrip creates a strip for buttons of the given widths
func NewNavStrip(widths []int, gap int) *NavStrip {
	return &NavStrip{
		widths: append([]int(nil), widths...),
		gap:    gap,
	}
}

// SetWidth sets the visible width and clamps the offset
func (n *NavStrip) SetWidth(width int) {
	n.width = width
	n.offset = n.clamp(n.offset)
}

// Width returns the visible width
func (n *NavStrip) Width() int {
	return n.width
}

// Offset returns the horizontal scroll offset
func (n *NavStrip) Offset() int {
	return n.offset
}

// ContentWidth returns the width of all buttons and gaps
func (n *NavStrip) ContentWidth() int {
	if len(n.widths) == 0 {
		return 0
	}
	total := n.gap * (len(n.widths) - 1)
	for _, w := range n.widths {
		total += w
	}
	return total
}

// Bounds returns the [start, end) columns of button i in strip coordinates
func (n *NavStrip) Bounds(i int) (int, int) {
	start := 0
	for j := 0; j < i; j++ {
		start += n.widths[j] + n.gap
	}
	return start, start + n.widths[i]
}

// Reveal scrolls the strip so button i is centered, as far as the strip
// can scroll
func (n *NavStrip) Reveal(i int) {
	if i < 0 || i >= len(n.widths) {
		return
	}
	start, end := n.Bounds(i)
	center := (start + end) / 2
	n.offset = n.clamp(center - n.width/2)
}

// Visible reports whether button i is entirely within the visible width
func (n *NavStrip) Visible(i int) bool {
	if i < 0 || i >= len(n.widths) {
		return false
	}
	start, end := n.Bounds(i)
	return start >= n.offset && end <= n.offset+n.width
}

func (n *NavStrip) clamp(offset int) int {
	limit := n.ContentWidth() - n.width
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
