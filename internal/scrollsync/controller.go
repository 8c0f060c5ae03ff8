package scrollsync

// Scroller performs programmatic scrolling of the menu body
type Scroller interface {
	ScrollTo(offset int, smooth bool)
}

// ChangeFunc is called with the previous and new active category
type ChangeFunc func(prev, next string)

// Controller owns the active category.
//
// The active category changes only through HandleIntersections. JumpTo
// issues a scroll command and relies on the observer reporting the target
// section once the scroll settles. When several sections enter the band in
// one batch the topmost one wins, ties going to the earlier category.
type Controller struct {
	opts     Options
	scroller Scroller

	order    map[string]int
	sections map[string]Section

	contentHeight  int
	viewportHeight int

	active    string
	listeners []ChangeFunc
}

// NewController creates a controller for the categories in display order.
// The first category starts out active.
func NewController(categoryIDs []string, scroller Scroller, opts Options) *Controller {
	c := &Controller{
		opts:     opts,
		scroller: scroller,
		order:    make(map[string]int, len(categoryIDs)),
		sections: make(map[string]Section, len(categoryIDs)),
	}
	for i, id := range categoryIDs {
		c.order[id] = i
	}
	if len(categoryIDs) > 0 {
		c.active = categoryIDs[0]
	}
	return c
}

// Active returns the active category id
func (c *Controller) Active() string {
	return c.active
}

// OnChange registers a listener for active category changes
func (c *Controller) OnChange(fn ChangeFunc) {
	c.listeners = append(c.listeners, fn)
}

// SetLayout records section positions and the scrollable extent
func (c *Controller) SetLayout(sections []Section, contentHeight, viewportHeight int) {
	c.sections = make(map[string]Section, len(sections))
	for _, s := range sections {
		c.sections[s.ID] = s
	}
	c.contentHeight = contentHeight
	c.viewportHeight = viewportHeight
}

// HandleIntersections applies a batch of observer entries
func (c *Controller) HandleIntersections(entries []IntersectionEntry) {
	var (
		winner IntersectionEntry
		found  bool
	)
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		if _, known := c.order[e.ID]; !known {
			continue
		}
		if !found || e.Top < winner.Top || (e.Top == winner.Top && c.order[e.ID] < c.order[winner.ID]) {
			winner = e
			found = true
		}
	}

	if found {
		c.setActive(winner.ID)
	}
}

func (c *Controller) setActive(id string) {
	if id == c.active {
		return
	}
	prev := c.active
	c.active = id
	for _, fn := range c.listeners {
		fn(prev, id)
	}
}

// MaxScroll returns the largest valid scroll offset
func (c *Controller) MaxScroll() int {
	if m := c.contentHeight - c.viewportHeight; m > 0 {
		return m
	}
	return 0
}

// ScrollTarget returns the scroll offset that puts the section heading
// HeaderOffset rows below the top of the viewport
func (c *Controller) ScrollTarget(id string) (int, bool) {
	s, ok := c.sections[id]
	if !ok {
		return 0, false
	}

	target := s.Top - c.opts.HeaderOffset
	if target < 0 {
		target = 0
	}
	if limit := c.MaxScroll(); target > limit {
		target = limit
	}
	return target, true
}

// JumpTo scrolls to the category's section. It reports false when the
// category has no known layout.
func (c *Controller) JumpTo(id string, smooth bool) bool {
	target, ok := c.ScrollTarget(id)
	if !ok || c.scroller == nil {
		return false
	}
	c.scroller.ScrollTo(target, smooth)
	return true
}

// Index returns the display position of a category, or -1
func (c *Controller) Index(id string) int {
	if i, ok := c.order[id]; ok {
		return i
	}
	return -1
}
