package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return "Loading menu…"
	}

	body := m.viewport.View()
	if m.cartOpen {
		body = m.overlay(body, m.cartPanelView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.footerView())
}

func (m *Model) headerView() string {
	title := m.centered(m.styles.Title.Render(m.catalog.Name))
	tagline := m.centered(m.styles.Tagline.Render(m.catalog.Tagline))
	rule := m.styles.Rule.Render(strings.Repeat("─", m.width))

	return strings.Join([]string{title, tagline, m.navView(), rule}, "\n")
}

// navView renders the category strip scrolled to the nav offset
func (m *Model) navView() string {
	active := m.ctrl.Active()
	buttons := make([]string, len(m.catalog.Categories))
	for i, category := range m.catalog.Categories {
		style := m.styles.NavButton
		if category.ID == active {
			style = m.styles.NavActive
		}
		buttons[i] = style.Render(category.Name)
	}

	row := strings.Join(buttons, strings.Repeat(" ", navGap))
	offset := m.nav.Offset()
	return ansi.Cut(row, offset, offset+m.nav.Width())
}

func (m *Model) footerView() string {
	var bar string
	if !m.cart.IsEmpty() && !m.cartOpen {
		summary := fmt.Sprintf(" %s | %s", itemCount(m.cart.TotalCount()), m.money.Format(m.cart.TotalPrice()))
		bar = m.styles.CartBar.Render(spread(summary, "c view cart ", m.width))
	}

	note := m.centered(m.styles.Footnote.Render(m.catalog.Footer))

	keys := m.help.View(m.keys)
	if m.cartOpen {
		keys = m.help.View(cartKeys{m.keys})
	}

	return strings.Join([]string{bar, note, keys}, "\n")
}

// cartPanelView renders the slide-up cart panel
func (m *Model) cartPanelView() string {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}

	var lines []string
	lines = append(lines, spread(m.styles.CartTitle.Render("Your Cart"), itemCount(m.cart.TotalCount()), inner), "")

	entries := m.cart.Entries()
	if len(entries) == 0 {
		lines = append(lines, m.styles.EmptyNotice.Render("Your cart is empty"))
	}
	for i, e := range entries {
		marker := "  "
		if i == m.cartCursor {
			marker = m.styles.Cursor.Render("▸ ")
		}
		right := m.styles.Stepper.Render(fmt.Sprintf("- %d +", e.Quantity)) + "  " +
			m.styles.Price.Render(fmt.Sprintf("%8s", m.money.Format(e.Subtotal())))
		name := ansi.Truncate(e.Item.Name, inner-lipgloss.Width(right)-4, "…")
		if i == m.cartCursor {
			name = m.styles.Selected.Render(name)
		}
		lines = append(lines, spread(marker+name, right, inner))
	}

	lines = append(lines, "",
		spread(m.styles.CartTitle.Render("Total"), m.styles.Price.Render(m.money.Format(m.cart.TotalPrice())), inner),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.styles.Checkout.Render("Proceed to Checkout")),
	)

	return m.styles.CartPanel.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// centered fits a single row line to the screen width, cutting it short
// on narrow terminals so it never wraps
func (m *Model) centered(line string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ansi.Truncate(line, m.width, "…"))
}

// overlay draws panel over the bottom rows of body
func (m *Model) overlay(body, panel string) string {
	rows := strings.Split(body, "\n")
	panelRows := strings.Split(panel, "\n")
	if len(panelRows) > len(rows) {
		panelRows = panelRows[len(panelRows)-len(rows):]
	}
	return strings.Join(append(rows[:len(rows)-len(panelRows)], panelRows...), "\n")
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
