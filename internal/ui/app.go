// Package ui provides the Bubble Tea TUI for pex.
package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pexcat/pex/internal/browse"
	"github.com/pexcat/pex/internal/catalog"
	"github.com/pexcat/pex/internal/config"
	"github.com/pexcat/pex/internal/debounce"
	"github.com/pexcat/pex/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewFavorites
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      catalog.Fetcher
	Coordinator *browse.Coordinator
	Prefs       *prefs.Prefs
	Config      config.Config
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx    context.Context
	client catalog.Fetcher
	coord  *browse.Coordinator
	prefs  *prefs.Prefs
	cfg    config.Config

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Filter and listing state
	filters    browse.Filters
	lastQuery  catalog.Query
	hasFetched bool
	listing    browse.Listing
	categories []catalog.Category

	// Search state
	searchInput textinput.Model
	searchMode  bool
	deb         *debounce.Input

	// Selection
	selectedRow int

	// Issued in New so token bookkeeping survives Init's value receiver.
	initCmd tea.Cmd
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	coord := opts.Coordinator
	if coord == nil {
		coord = &browse.Coordinator{}
	}

	userPrefs := opts.Prefs
	if userPrefs == nil {
		userPrefs = prefs.Load(ctx, nil)
	}

	ti := textinput.New()
	ti.Placeholder = "Search products by name..."
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		ctx:         ctx,
		client:      opts.Client,
		coord:       coord,
		prefs:       userPrefs,
		cfg:         opts.Config,
		theme:       ThemeFor(userPrefs.Dark()),
		currentView: ViewBrowse,
		filters:     browse.NewFilters(opts.Config.PageSize),
		searchInput: ti,
		deb:         debounce.New(opts.Config.Debounce),
	}
	m.initCmd = tea.Batch(
		tea.EnterAltScreen,
		m.fetchCategories(),
		m.fetchListing(),
	)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case listingMsg:
		if m.coord.ResolveListing(msg.token, msg.page, msg.err) {
			m.listing = m.coord.Listing()
			m.clampSelection()
		}
		return m, nil

	case categoriesMsg:
		if msg.err != nil {
			log.Printf("categories fetch failed: %v", msg.err)
		}
		if m.coord.ResolveCategories(msg.token, msg.categories, msg.err) {
			m.categories = m.coord.Categories()
		}
		return m, nil

	case debounceMsg:
		if v, ok := m.deb.Expire(msg.seq); ok {
			m.filters = m.filters.WithSearch(v)
			return m, m.fetchListing()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.searchMode = true
		m.currentView = ViewBrowse
		m.searchInput.SetValue(m.deb.Buffer())
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case "x":
		// Clear search immediately, bypassing the debounce.
		if v, ok := m.deb.Clear(); ok {
			m.searchInput.SetValue("")
			m.filters = m.filters.WithSearch(v)
			return m, m.fetchListing()
		}
		return m, nil

	case "c":
		return m.cycleCategory(1)

	case "C":
		return m.cycleCategory(-1)

	case "l", "right":
		m.filters = m.filters.Advance(m.listing.Total)
		m.selectedRow = 0
		return m, m.fetchListing()

	case "h", "left":
		m.filters = m.filters.Retreat()
		m.selectedRow = 0
		return m, m.fetchListing()

	case "r":
		// Re-trigger the current query, the manual retry path after an error.
		m.hasFetched = false
		return m, m.fetchListing()

	case "f":
		if p := m.selectedProduct(); p != nil {
			m.prefs.Favorites().Toggle(m.ctx, *p)
			m.clampSelection()
		}
		return m, nil

	case "v":
		if m.currentView == ViewFavorites {
			m.currentView = ViewBrowse
		} else {
			m.currentView = ViewFavorites
		}
		m.selectedRow = 0
		return m, nil

	case "T":
		dark := !m.prefs.Dark()
		m.prefs.SetDark(m.ctx, dark)
		m.theme = ThemeFor(dark)
		return m, nil

	case "esc":
		m.currentView = ViewBrowse
		return m, nil

	case "j", "down":
		m.moveSelection(1)
		return m, nil

	case "k", "up":
		m.moveSelection(-1)
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if n := len(m.visibleProducts()); n > 0 {
			m.selectedRow = n - 1
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Leave search mode; the buffer stays, any pending debounce still fires.
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		// Commit immediately instead of waiting out the quiet period.
		m.searchMode = false
		m.searchInput.Blur()
		seq, _ := m.deb.Edit(m.searchInput.Value())
		if v, ok := m.deb.Expire(seq); ok {
			m.filters = m.filters.WithSearch(v)
			return m, m.fetchListing()
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if after == before {
		return m, cmd
	}

	seq, wait := m.deb.Edit(after)
	return m, tea.Batch(cmd, debounceTick(seq, wait))
}

// cycleCategory moves the category selection by delta through
// "all" + the loaded slugs, wrapping around.
func (m Model) cycleCategory(delta int) (tea.Model, tea.Cmd) {
	options := []string{catalog.AllCategories}
	for _, c := range m.categories {
		options = append(options, c.Slug)
	}

	idx := 0
	for i, slug := range options {
		if slug == m.filters.Category {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)

	m.filters = m.filters.WithCategory(options[idx], m.cfg.CategoryClearsSearch)
	if m.cfg.CategoryClearsSearch {
		// The component that owns the buffer must reflect the external
		// reset without re-emitting.
		m.deb.Reset("")
		m.searchInput.SetValue("")
	}
	m.selectedRow = 0
	return m, m.fetchListing()
}

// moveSelection moves the cursor within the visible product list.
func (m *Model) moveSelection(delta int) {
	n := len(m.visibleProducts())
	if n == 0 {
		m.selectedRow = 0
		return
	}
	m.selectedRow += delta
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	if m.selectedRow > n-1 {
		m.selectedRow = n - 1
	}
}

func (m *Model) clampSelection() {
	n := len(m.visibleProducts())
	if n == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow > n-1 {
		m.selectedRow = n - 1
	}
}

// visibleProducts returns the product list for the current view.
func (m Model) visibleProducts() []catalog.Product {
	if m.currentView == ViewFavorites {
		return m.prefs.Favorites().Items()
	}
	return m.listing.Products
}

// selectedProduct returns the product under the cursor, or nil.
func (m Model) selectedProduct() *catalog.Product {
	items := m.visibleProducts()
	if m.selectedRow < 0 || m.selectedRow >= len(items) {
		return nil
	}
	p := items[m.selectedRow]
	return &p
}

// fetchListing issues a listing fetch for the current filters. Recomputing
// an identical descriptor is a no-op, so filter churn that lands on the
// same query causes no redundant network call.
func (m *Model) fetchListing() tea.Cmd {
	q := m.filters.Query()
	if m.hasFetched && q == m.lastQuery {
		return nil
	}
	m.lastQuery = q
	m.hasFetched = true

	token, ctx := m.coord.IssueListing(m.ctx)
	m.listing = m.coord.Listing()

	client := m.client
	return func() tea.Msg {
		page, err := client.FetchPage(ctx, q)
		return listingMsg{token: token, page: page, err: err}
	}
}

// fetchCategories issues the one-shot categories fetch.
func (m *Model) fetchCategories() tea.Cmd {
	token, ctx := m.coord.IssueCategories(m.ctx)
	client := m.client
	return func() tea.Msg {
		cats, err := client.FetchCategories(ctx)
		return categoriesMsg{token: token, categories: cats, err: err}
	}
}

// Messages

type listingMsg struct {
	token uint64
	page  catalog.ResultPage
	err   error
}

type categoriesMsg struct {
	token      uint64
	categories []catalog.Category
	err        error
}

type debounceMsg struct {
	seq int
}

// Commands

func debounceTick(seq int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. Outstanding fetches are cancelled on the way out.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	m.coord.Teardown()
	if err == tea.ErrProgramKilled {
		// Context cancellation (ctrl+c at the signal level) is a normal exit.
		return nil
	}
	return err
}
