package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Lixing-Zhang/saffron-menu/internal/scrollsync"
)

const (
	maxContentWidth = 80
	cardTextRows    = 2 // name row and description row, followed by a spacer
)

// bodyLayout is the rendered menu body with the row positions the scroll
// sync needs
type bodyLayout struct {
	content  string
	lines    int
	sections []scrollsync.Section
	itemTop  map[string]int
}

// renderBody renders every section and records where sections and items
// start. The body is padded at the bottom so that any section can be
// scrolled up to its jump position.
func (m *Model) renderBody(width, viewportHeight int) bodyLayout {
	if width > maxContentWidth {
		width = maxContentWidth
	}

	layout := bodyLayout{itemTop: make(map[string]int)}
	var lines []string

	for _, category := range m.catalog.Categories {
		top := len(lines)

		lines = append(lines, m.renderSectionHeading(category.Name, category.Len(), width), "")
		for _, item := range category.Items {
			layout.itemTop[item.ID] = len(lines)
			lines = append(lines, m.renderItem(item.ID, width)...)
		}
		lines = append(lines, "")

		layout.sections = append(layout.sections, scrollsync.Section{
			ID:     category.ID,
			Top:    top,
			Height: len(lines) - top,
		})
	}

	if n := len(layout.sections); n > 0 {
		last := layout.sections[n-1]
		need := last.Top - m.opts.Scroll.HeaderOffset + viewportHeight
		for len(lines) < need {
			lines = append(lines, "")
		}
	}

	layout.content = strings.Join(lines, "\n")
	layout.lines = len(lines)
	return layout
}

func (m *Model) renderSectionHeading(name string, count, width int) string {
	title := m.styles.SectionTitle.Render(name)
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	counter := m.styles.SectionCount.Render(fmt.Sprintf("%d %s", count, noun))

	fill := width - lipgloss.Width(title) - lipgloss.Width(counter) - 2
	if fill < 1 {
		fill = 1
	}
	return title + " " + m.styles.Rule.Render(strings.Repeat("─", fill)) + " " + counter
}

// renderItem returns the lines of an item card
func (m *Model) renderItem(itemID string, width int) []string {
	item, _ := m.catalog.Item(itemID)

	marker := "  "
	if !m.cartOpen && m.cursorItemID() == itemID {
		marker = m.styles.Cursor.Render("▸ ")
	}

	indicator := m.styles.Veg.Render("●")
	if !item.IsVeg {
		indicator = m.styles.NonVeg.Render("▲")
	}

	price := m.styles.Price.Render(m.money.Format(item.Price))
	name := m.styles.ItemName.Render(item.Name)
	first := spread(marker+indicator+" "+name, price, width)

	var control string
	if qty := m.cart.Quantity(item.ID); qty > 0 {
		control = m.styles.Stepper.Render(fmt.Sprintf("[ - %d + ]", qty))
	} else {
		control = m.styles.AddButton.Render("[ Add ]")
	}
	descWidth := width - lipgloss.Width(control) - 5
	if descWidth < 0 {
		descWidth = 0
	}
	desc := m.styles.ItemDesc.Render(ansi.Truncate(item.Description, descWidth, "…"))
	second := spread("    "+desc, control, width)

	return []string{first, second, ""}
}

// spread places left and right at the two ends of a line of the given width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
