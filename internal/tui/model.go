package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lixing-Zhang/saffron-menu/internal/cart"
	"github.com/Lixing-Zhang/saffron-menu/internal/currency"
	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"github.com/Lixing-Zhang/saffron-menu/internal/scrollsync"
)

const navGap = 1

// Options configure the browser
type Options struct {
	Scroll       scrollsync.Options
	SmoothScroll bool
	FPS          int
	Currency     *currency.Formatter
	Logger       *slog.Logger
}

// DefaultOptions returns smooth scrolling at 60 frames per second
func DefaultOptions() Options {
	return Options{
		Scroll:       scrollsync.DefaultOptions(),
		SmoothScroll: true,
		FPS:          60,
	}
}

// frameMsg advances the scroll animation by one frame
type frameMsg struct{}

// itemRef locates an item in display order
type itemRef struct {
	category int
	itemID   string
}

// Model is the bubbletea model of the menu browser
type Model struct {
	catalog *models.Catalog
	cart    *cart.Cart
	ctrl    *scrollsync.Controller
	obs     *scrollsync.Observer
	nav     *scrollsync.NavStrip
	anim    *scrollsync.Animator

	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   Styles
	money    *currency.Formatter
	opts     Options
	log      *slog.Logger

	items      []itemRef
	cursor     int
	cartCursor int
	cartOpen   bool
	animating  bool

	layout bodyLayout
	width  int
	height int
	ready  bool
}

// New creates a browser over the catalog with an empty cart
func New(catalog *models.Catalog, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Currency == nil {
		opts.Currency = currency.NewFormatter("")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Model{
		catalog: catalog,
		cart:    cart.New(),
		anim:    scrollsync.NewAnimator(opts.FPS),
		help:    help.New(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		money:   opts.Currency,
		opts:    opts,
		log:     opts.Logger,
	}

	m.ctrl = scrollsync.NewController(catalog.CategoryIDs(), m, opts.Scroll)
	m.obs = scrollsync.NewObserver(opts.Scroll, m.ctrl.HandleIntersections)
	m.ctrl.OnChange(m.activeChanged)

	widths := make([]int, len(catalog.Categories))
	for i, category := range catalog.Categories {
		widths[i] = lipgloss.Width(m.styles.NavButton.Render(category.Name))
	}
	m.nav = scrollsync.NewNavStrip(widths, navGap)

	for i, category := range catalog.Categories {
		for _, item := range category.Items {
			m.items = append(m.items, itemRef{category: i, itemID: item.ID})
		}
	}

	m.viewport = viewport.New(0, 0)

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.catalog.Name)
}

// Close releases the viewport observation. The model must not be used
// afterwards.
func (m *Model) Close() {
	m.obs.Disconnect()
	m.anim.Stop()
	m.log.Debug("menu browser closed", "cart_items", m.cart.TotalCount())
}

// Cart returns the visitor's cart
func (m *Model) Cart() *cart.Cart {
	return m.cart
}

// ActiveCategory returns the highlighted category id
func (m *Model) ActiveCategory() string {
	return m.ctrl.Active()
}

// CartOpen reports whether the cart panel is shown
func (m *Model) CartOpen() bool {
	return m.cartOpen
}

// ScrollOffset returns the body scroll offset in rows
func (m *Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// ScrollTo implements scrollsync.Scroller
func (m *Model) ScrollTo(offset int, smooth bool) {
	if smooth && m.opts.SmoothScroll {
		m.anim.Start(m.viewport.YOffset, offset)
		return
	}
	m.anim.Stop()
	m.setOffset(offset)
}

func (m *Model) setOffset(offset int) {
	m.viewport.SetYOffset(offset)
	m.observe()
}

// observe reports the current scroll position to the observer
func (m *Model) observe() {
	m.obs.Check(m.viewport.YOffset, m.viewport.Height)
}

func (m *Model) activeChanged(prev, next string) {
	m.nav.Reveal(m.ctrl.Index(next))
	m.log.Debug("active category changed", "from", prev, "to", next, "scroll_offset", m.viewport.YOffset)
}

func (m *Model) cursorItemID() string {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return ""
	}
	return m.items[m.cursor].itemID
}

func (m *Model) cursorItem() (models.MenuItem, bool) {
	return m.catalog.Item(m.cursorItemID())
}

// resize lays the screen out for a new terminal size
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.nav.SetWidth(width)

	bodyHeight := height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = bodyHeight
	m.nav.Reveal(m.ctrl.Index(m.ctrl.Active()))
	m.ready = true

	m.refresh()
}

// refresh re-renders the body and republishes the layout
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.layout = m.renderBody(m.viewport.Width, m.viewport.Height)
	m.viewport.SetContent(m.layout.content)
	m.ctrl.SetLayout(m.layout.sections, m.layout.lines, m.viewport.Height)
	m.obs.Observe(m.layout.sections)
	m.observe()
}

// startFrames schedules animation frames unless they are already running
func (m *Model) startFrames() tea.Cmd {
	if !m.anim.Running() || m.animating {
		return nil
	}
	m.animating = true
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
