package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if !m.anim.Running() {
			m.animating = false
			return m, nil
		}
		offset, done := m.anim.Step()
		m.setOffset(offset)
		if done {
			m.animating = false
			return m, nil
		}
		return m, m.frame()

	case tea.MouseMsg:
		if m.cartOpen || !m.ready {
			return m, nil
		}
		m.anim.Stop()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.observe()
		m.syncCursorToView()
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.ready {
			return m, nil
		}
		if m.cartOpen {
			return m.updateCart(msg)
		}
		return m.updateMenu(msg)
	}

	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollBy(-m.viewport.YOffset)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollBy(m.ctrl.MaxScroll() - m.viewport.YOffset)

	case key.Matches(msg, m.keys.NextCategory):
		return m, m.jump(m.ctrl.Index(m.ctrl.Active()) + 1)
	case key.Matches(msg, m.keys.PrevCategory):
		return m, m.jump(m.ctrl.Index(m.ctrl.Active()) - 1)
	case key.Matches(msg, m.keys.JumpCategory):
		return m, m.jump(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Add):
		if item, ok := m.cursorItem(); ok {
			m.cart.Add(item)
			m.log.Debug("item added", "item_id", item.ID, "quantity", m.cart.Quantity(item.ID), "total_price", m.cart.TotalPrice())
			m.refresh()
		}
	case key.Matches(msg, m.keys.Remove):
		if id := m.cursorItemID(); id != "" {
			m.cart.Remove(id)
			m.log.Debug("item removed", "item_id", id, "quantity", m.cart.Quantity(id), "total_price", m.cart.TotalPrice())
			m.refresh()
		}

	case key.Matches(msg, m.keys.OpenCart):
		m.cartOpen = true
		m.cartCursor = 0
		m.anim.Stop()
		m.refresh()
	}

	return m, nil
}

func (m *Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.cart.Entries()

	switch {
	case key.Matches(msg, m.keys.CloseCart):
		m.cartOpen = false
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(entries)-1 {
			m.cartCursor++
		}

	case key.Matches(msg, m.keys.Add):
		if m.cartCursor < len(entries) {
			m.cart.Add(entries[m.cartCursor].Item)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cartCursor < len(entries) {
			m.cart.Remove(entries[m.cartCursor].Item.ID)
			if n := m.cart.Len(); m.cartCursor >= n && n > 0 {
				m.cartCursor = n - 1
			}
			m.refresh()
		}

	case key.Matches(msg, m.keys.Checkout):
		// Checkout has no destination.
		m.log.Info("checkout selected", "total_count", m.cart.TotalCount(), "total_price", m.cart.TotalPrice())
	}

	return m, nil
}

// jump scrolls to the category at index i and puts the cursor on its
// first item. The highlight follows once the section settles in view.
func (m *Model) jump(i int) tea.Cmd {
	if i < 0 || i >= len(m.catalog.Categories) {
		return nil
	}
	category := m.catalog.Categories[i]

	for idx, ref := range m.items {
		if ref.category == i {
			m.cursor = idx
			break
		}
	}
	m.refresh()

	m.log.Debug("category selected", "category", category.ID)
	if !m.ctrl.JumpTo(category.ID, true) {
		return nil
	}
	return m.startFrames()
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.items) {
		return
	}
	m.cursor = next
	m.refresh()
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the least amount that shows the cursor item.
// The first item of a category brings its heading along.
func (m *Model) ensureCursorVisible() {
	id := m.cursorItemID()
	top, ok := m.layout.itemTop[id]
	if !ok {
		return
	}
	m.anim.Stop()

	upper := top
	for _, s := range m.layout.sections {
		if s.Top+2 == top {
			upper = s.Top
		}
	}
	upper -= m.opts.Scroll.HeaderOffset
	last := top + cardTextRows - 1

	y := m.viewport.YOffset
	if upper < y {
		y = upper
	}
	if last >= y+m.viewport.Height {
		y = last - m.viewport.Height + 1
	}
	if y != m.viewport.YOffset {
		m.setOffset(y)
	}
}

func (m *Model) scrollBy(delta int) {
	m.anim.Stop()
	m.setOffset(m.viewport.YOffset + delta)
	m.syncCursorToView()
}

// syncCursorToView moves the cursor onto the first fully visible item when
// scrolling has left it off screen
func (m *Model) syncCursorToView() {
	y, h := m.viewport.YOffset, m.viewport.Height
	visible := func(top int) bool {
		return top >= y && top+cardTextRows-1 < y+h
	}

	if top, ok := m.layout.itemTop[m.cursorItemID()]; ok && visible(top) {
		return
	}

	for idx, ref := range m.items {
		if visible(m.layout.itemTop[ref.itemID]) {
			m.cursor = idx
			m.refresh()
			return
		}
	}
}
