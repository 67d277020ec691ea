package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pexcat/pex/internal/browse"
	"github.com/pexcat/pex/internal/catalog"
	"github.com/pexcat/pex/internal/config"
)

// fakeFetcher returns canned pages keyed by query kind. It ignores context
// cancellation so tests can deliver superseded responses on purpose.
type fakeFetcher struct {
	pages      map[catalog.Kind]catalog.ResultPage
	pageErr    error
	categories []catalog.Category
}

func (f *fakeFetcher) FetchPage(_ context.Context, q catalog.Query) (catalog.ResultPage, error) {
	if f.pageErr != nil {
		return catalog.ResultPage{}, f.pageErr
	}
	return f.pages[q.Kind], nil
}

func (f *fakeFetcher) FetchCategories(_ context.Context) ([]catalog.Category, error) {
	return f.categories, nil
}

// newTestModel builds a model and settles its startup fetches so each test
// begins with the first page and the category list applied.
func newTestModel(t *testing.T, fetcher *fakeFetcher) Model {
	t.Helper()
	m := New(Options{
		Client: fetcher,
		Config: config.Config{
			PageSize:             12,
			Debounce:             time.Millisecond,
			CategoryClearsSearch: true,
		},
	})
	m.ready = true
	m.width = 100
	m.height = 30
	return deliver(t, m, m.initCmd)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// deliver executes a command and feeds the resulting fetch messages back
// into Update, recursing through batches.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = deliver(t, m, c)
		}
	case listingMsg, categoriesMsg:
		m, _ = update(t, m, msg)
	}
	return m
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func listingPage(total int, ids ...int64) catalog.ResultPage {
	items := make([]catalog.Product, len(ids))
	for i, id := range ids {
		items[i] = catalog.Product{ID: id, Title: "P"}
	}
	return catalog.ResultPage{Products: items, Total: total}
}

func TestStartupFetchPopulatesListingAndCategories(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[catalog.Kind]catalog.ResultPage{
			catalog.KindListing: listingPage(34, 1, 2, 3),
		},
		categories: []catalog.Category{{Slug: "beauty", Name: "Beauty"}},
	}
	m := newTestModel(t, fetcher)

	if m.listing.Loading || m.listing.Err != "" {
		t.Fatalf("listing = %+v, want settled success", m.listing)
	}
	if m.listing.Total != 34 || len(m.listing.Products) != 3 {
		t.Fatalf("listing = %+v, want 3 products total 34", m.listing)
	}
	if len(m.categories) != 1 || m.categories[0].Slug != "beauty" {
		t.Fatalf("categories = %+v", m.categories)
	}
}

func TestStaleResponseNeverOverwritesNewerState(t *testing.T) {
	// The user commits a search, then switches category while the search
	// request is still in flight. The search response arrives last and
	// must be dropped.
	fetcher := &fakeFetcher{
		pages: map[catalog.Kind]catalog.ResultPage{
			catalog.KindSearch:   listingPage(34, 1, 2, 3),
			catalog.KindCategory: listingPage(5, 7),
		},
		categories: []catalog.Category{{Slug: "beauty", Name: "Beauty"}},
	}
	m := newTestModel(t, fetcher)

	// Commit the search via enter (immediate, no timer involved).
	m, _ = press(t, m, "/")
	m = typeText(t, m, "phone")
	m, searchCmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if searchCmd == nil {
		t.Fatal("enter should commit the search and issue a fetch")
	}
	if m.filters.Search != "phone" {
		t.Fatalf("Search = %q, want phone", m.filters.Search)
	}

	// Category change supersedes the in-flight search and clears it.
	m, catCmd := press(t, m, "c")
	if catCmd == nil {
		t.Fatal("category change should issue a fetch")
	}
	if m.filters.Search != "" || m.filters.Category != "beauty" {
		t.Fatalf("filters = %+v, want cleared search and beauty category", m.filters)
	}

	// Category response lands first and is applied.
	m, _ = update(t, m, catCmd())
	if m.listing.Total != 5 || len(m.listing.Products) != 1 || m.listing.Products[0].ID != 7 {
		t.Fatalf("listing = %+v, want the beauty page", m.listing)
	}

	// The stale search response arrives afterwards: discarded.
	m, _ = update(t, m, searchCmd())
	if m.listing.Total != 5 || len(m.listing.Products) != 1 {
		t.Fatalf("listing = %+v, stale search response must not apply", m.listing)
	}
}

func TestDebounceCommitsOnlyLatestSeq(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[catalog.Kind]catalog.ResultPage{}}
	m := newTestModel(t, fetcher)

	m, _ = press(t, m, "/")
	m = typeText(t, m, "pho")

	// A stale timer fires: nothing committed, no fetch.
	m, cmd := update(t, m, debounceMsg{seq: 1})
	if cmd != nil || m.filters.Search != "" {
		t.Fatalf("stale debounce committed: search=%q cmd=%v", m.filters.Search, cmd)
	}

	// The latest timer fires: committed, fetch issued.
	m, cmd = update(t, m, debounceMsg{seq: 3})
	if cmd == nil || m.filters.Search != "pho" {
		t.Fatalf("latest debounce should commit: search=%q", m.filters.Search)
	}
}

func TestClearSearchIsImmediateAndIdempotent(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[catalog.Kind]catalog.ResultPage{}}
	m := newTestModel(t, fetcher)

	m, _ = press(t, m, "/")
	m = typeText(t, m, "phone")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := press(t, m, "x")
	if cmd == nil {
		t.Fatal("clearing a non-empty search should issue a fetch")
	}
	if m.filters.Search != "" {
		t.Fatalf("Search = %q, want empty", m.filters.Search)
	}

	// Second clear is a no-op: no redundant fetch.
	m, cmd = press(t, m, "x")
	if cmd != nil {
		t.Fatal("clearing an empty search should not fetch")
	}
}

func TestPaginationKeysClampAndDedupe(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[catalog.Kind]catalog.ResultPage{
		catalog.KindListing: listingPage(34, 1),
	}}
	m := newTestModel(t, fetcher)

	m, cmd := press(t, m, "l")
	if m.filters.Offset != 12 || cmd == nil {
		t.Fatalf("Offset = %d cmd=%v, want 12 with fetch", m.filters.Offset, cmd)
	}
	m, _ = update(t, m, cmd())

	m, cmd = press(t, m, "l")
	if m.filters.Offset != 24 || cmd == nil {
		t.Fatalf("Offset = %d, want 24", m.filters.Offset)
	}
	m, _ = update(t, m, cmd())

	// Last page: advance is a no-op and no fetch goes out.
	m, cmd = press(t, m, "l")
	if m.filters.Offset != 24 || cmd != nil {
		t.Fatalf("Offset = %d cmd=%v, want clamped no-op", m.filters.Offset, cmd)
	}

	// Retreat never goes below zero.
	for i := 0; i < 5; i++ {
		m, _ = press(t, m, "h")
	}
	if m.filters.Offset != 0 {
		t.Fatalf("Offset = %d, want 0", m.filters.Offset)
	}
}

func TestListingErrorSurfacesRetryableMessage(t *testing.T) {
	fetcher := &fakeFetcher{pageErr: errors.New("transport")}
	m := newTestModel(t, fetcher)

	if m.listing.Err != browse.ErrFetchFailed {
		t.Fatalf("Err = %q, want %q", m.listing.Err, browse.ErrFetchFailed)
	}
	if len(m.listing.Products) != 0 || m.listing.Total != 0 {
		t.Fatalf("listing = %+v, want cleared", m.listing)
	}

	// "r" re-triggers the same query even though the descriptor is unchanged.
	m, cmd := press(t, m, "r")
	if cmd == nil {
		t.Fatal("r should re-issue the fetch")
	}
	fetcher.pageErr = nil
	fetcher.pages = map[catalog.Kind]catalog.ResultPage{
		catalog.KindListing: listingPage(1, 1),
	}
	m, _ = update(t, m, cmd())
	if m.listing.Err != "" || m.listing.Total != 1 {
		t.Fatalf("listing = %+v, want recovered", m.listing)
	}
}

func TestFavoriteToggleAndThemePersist(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[catalog.Kind]catalog.ResultPage{
		catalog.KindListing: listingPage(1, 7),
	}}
	m := newTestModel(t, fetcher)

	m, _ = press(t, m, "f")
	if !m.prefs.Favorites().Contains(7) {
		t.Fatal("f should favorite the selected product")
	}
	m, _ = press(t, m, "f")
	if m.prefs.Favorites().Contains(7) {
		t.Fatal("second f should unfavorite it")
	}

	m, _ = press(t, m, "T")
	if m.theme.Name != "Dark" || !m.prefs.Dark() {
		t.Fatalf("theme = %q dark=%v, want Dark/true", m.theme.Name, m.prefs.Dark())
	}
	m, _ = press(t, m, "T")
	if m.theme.Name != "Light" || m.prefs.Dark() {
		t.Fatalf("theme = %q dark=%v, want Light/false", m.theme.Name, m.prefs.Dark())
	}
}

func TestFavoritesViewShowsOnlyFavorites(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[catalog.Kind]catalog.ResultPage{
		catalog.KindListing: listingPage(2, 7, 8),
	}}
	m := newTestModel(t, fetcher)

	m, _ = press(t, m, "f") // favorite #7

	m, _ = press(t, m, "v")
	if m.currentView != ViewFavorites {
		t.Fatalf("view = %v, want favorites", m.currentView)
	}
	items := m.visibleProducts()
	if len(items) != 1 || items[0].ID != 7 {
		t.Fatalf("favorites view items = %+v", items)
	}

	m, _ = press(t, m, "v")
	if m.currentView != ViewBrowse {
		t.Fatalf("view = %v, want browse", m.currentView)
	}
}

func TestViewRendersAcrossStates(t *testing.T) {
	fetcher := &fakeFetcher{pageErr: errors.New("boom")}
	m := newTestModel(t, fetcher)

	if out := m.View(); out == "" {
		t.Fatal("empty render with error state")
	}

	m, _ = press(t, m, "?")
	if out := m.View(); out == "" {
		t.Fatal("empty help render")
	}

	m, _ = press(t, m, "q") // any key closes help
	m, _ = press(t, m, "v")
	if out := m.View(); out == "" {
		t.Fatal("empty favorites render")
	}
}
