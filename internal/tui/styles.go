// Package tui renders the menu browser in the terminal.
//
// The model is a function of the catalog, the cart and the active
// category. Input events drive the cart and the scroll sync controller;
// the scroll sync observer is checked after every change of scroll offset
// or viewport size.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette taken from the restaurant's brand colors
var (
	Saffron   = lipgloss.Color("#E07A1F")
	Cream     = lipgloss.Color("#FBF6EE")
	Ink       = lipgloss.Color("#2B2118")
	Muted     = lipgloss.Color("#8A7B6B")
	Secondary = lipgloss.Color("#F1E6D6")
	Border    = lipgloss.Color("#E4D8C6")
	VegGreen  = lipgloss.Color("#2E7D32")
	NonVegRed = lipgloss.Color("#C62828")
)

// Styles holds every style used by the views
type Styles struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Rule    lipgloss.Style

	NavButton lipgloss.Style
	NavActive lipgloss.Style

	SectionTitle lipgloss.Style
	SectionCount lipgloss.Style

	Cursor      lipgloss.Style
	ItemName    lipgloss.Style
	ItemDesc    lipgloss.Style
	Price       lipgloss.Style
	Veg         lipgloss.Style
	NonVeg      lipgloss.Style
	AddButton   lipgloss.Style
	Stepper     lipgloss.Style
	Selected    lipgloss.Style
	CartBar     lipgloss.Style
	CartPanel   lipgloss.Style
	CartTitle   lipgloss.Style
	Checkout    lipgloss.Style
	Footnote    lipgloss.Style
	EmptyNotice lipgloss.Style
}

// DefaultStyles returns the saffron theme
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Ink),
		Tagline: lipgloss.NewStyle().Foreground(Muted),
		Rule:    lipgloss.NewStyle().Foreground(Border),

		NavButton: lipgloss.NewStyle().Padding(0, 1).Foreground(Ink).Background(Secondary),
		NavActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Cream).Background(Saffron),

		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(Ink),
		SectionCount: lipgloss.NewStyle().Foreground(Muted),

		Cursor:      lipgloss.NewStyle().Foreground(Saffron).Bold(true),
		ItemName:    lipgloss.NewStyle().Bold(true).Foreground(Ink),
		ItemDesc:    lipgloss.NewStyle().Foreground(Muted),
		Price:       lipgloss.NewStyle().Bold(true).Foreground(Saffron),
		Veg:         lipgloss.NewStyle().Foreground(VegGreen),
		NonVeg:      lipgloss.NewStyle().Foreground(NonVegRed),
		AddButton:   lipgloss.NewStyle().Foreground(Saffron),
		Stepper:     lipgloss.NewStyle().Bold(true).Foreground(Saffron),
		Selected:    lipgloss.NewStyle().Foreground(Saffron),
		CartBar:     lipgloss.NewStyle().Bold(true).Foreground(Cream).Background(Saffron),
		CartPanel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Saffron).Padding(0, 1),
		CartTitle:   lipgloss.NewStyle().Bold(true).Foreground(Ink),
		Checkout:    lipgloss.NewStyle().Bold(true).Foreground(Cream).Background(Saffron).Padding(0, 2),
		Footnote:    lipgloss.NewStyle().Foreground(Muted),
		EmptyNotice: lipgloss.NewStyle().Italic(true).Foreground(Muted),
	}
}
