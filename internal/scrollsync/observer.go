package scrollsync

// IntersectionEntry reports that a section entered or left the band
type IntersectionEntry struct {
	ID string
	// Top is the section's top row relative to the viewport
	Top            int
	IsIntersecting bool
}

// Callback receives one batch of intersection changes
type Callback func(entries []IntersectionEntry)

// Observer is a layout driven stand-in for a viewport intersection
// observer. The display calls Check whenever the scroll offset or the
// viewport size changes; the observer delivers the sections whose
// intersecting state changed since the previous check.
type Observer struct {
	opts     Options
	callback Callback

	sections     []Section
	state        map[string]bool
	disconnected bool
}

// NewObserver creates an observer delivering batches to callback
func NewObserver(opts Options, callback Callback) *Observer {
	return &Observer{
		opts:     opts,
		callback: callback,
		state:    make(map[string]bool),
	}
}

// Observe sets the observed sections. Sections not seen before are
// reported on the next check whatever their state; sections that are no
// longer present are forgotten.
func (o *Observer) Observe(sections []Section) {
	o.sections = append(o.sections[:0:0], sections...)

	present := make(map[string]bool, len(sections))
	for _, s := range sections {
		present[s.ID] = true
	}
	for id := range o.state {
		if !present[id] {
			delete(o.state, id)
		}
	}
}

// Check recomputes intersections for the given scroll offset and viewport
// height and delivers changes, in section order, as a single batch
func (o *Observer) Check(scrollY, viewportHeight int) {
	if o.disconnected {
		return
	}

	band := o.opts.Band(viewportHeight)

	var batch []IntersectionEntry
	for _, s := range o.sections {
		top := s.Top - scrollY
		in := band.Intersects(top, s.Height)

		prev, seen := o.state[s.ID]
		if seen && prev == in {
			continue
		}
		o.state[s.ID] = in
		batch = append(batch, IntersectionEntry{ID: s.ID, Top: top, IsIntersecting: in})
	}

	if len(batch) > 0 && o.callback != nil {
		o.callback(batch)
	}
}

// Intersecting reports the last known state of a section
func (o *Observer) Intersecting(id string) bool {
	return o.state[id]
}

// Disconnect stops all further deliveries
func (o *Observer) Disconnect() {
	o.disconnected = true
	o.sections = nil
	o.state = make(map[string]bool)
}

// Disconnected reports whether Disconnect has been called
func (o *Observer) Disconnected() bool {
	return o.disconnected
}
