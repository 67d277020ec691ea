package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pexcat/pex/internal/catalog"
)

// renderMain renders the full UI: header, command bar, content, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("PEX"),
		styles.Text.Render("Product Explorer"),
	}

	category := m.filters.Category
	if category != catalog.AllCategories {
		parts = append(parts, styles.AccentText.Render("category: "+m.categoryName(category)))
	}
	if search := m.deb.Committed(); search != "" {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf("search: %q", search)))
	}
	parts = append(parts,
		styles.Favorite.Render(fmt.Sprintf("♥ %d", m.prefs.Favorites().Len())),
		styles.MutedText.Render(m.theme.Name),
	)

	line := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if m.searchMode {
		return styles.Header.Width(m.width).Render("Search: " + m.searchInput.View())
	}

	hints := []string{
		"/ search", "x clear", "c category", "h/l page",
		"f favorite", "v favorites", "T theme", "? help", "q quit",
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderStatus shows loading, the error, or the result counts. Exactly one
// of the three is visible at a time, mirroring the coordinator's atomic
// listing state.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	if m.currentView == ViewFavorites {
		return styles.MutedText.Render(fmt.Sprintf("  %d favorited products", m.prefs.Favorites().Len()))
	}
	if m.listing.Loading {
		return styles.WarningText.Render("  Loading products...")
	}
	if m.listing.Err != "" {
		return styles.DangerText.Render("  " + m.listing.Err + " (press r)")
	}
	return styles.MutedText.Render(fmt.Sprintf("  Showing %d of %d results",
		len(m.listing.Products), m.listing.Total))
}

func (m Model) renderContent() string {
	items := m.visibleProducts()
	contentHeight := m.height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}

	if len(items) == 0 {
		styles := m.theme.Styles()
		empty := "No products"
		if m.currentView == ViewFavorites {
			empty = "No favorites yet — press f on a product"
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(empty))
	}

	var lines []string
	for i, p := range items {
		if i >= contentHeight {
			break
		}
		lines = append(lines, m.renderProductRow(p, i == m.selectedRow))
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderProductRow formats one product line:
// "#ID Title · Brand · $price · ★rating ♥"
func (m Model) renderProductRow(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	var b strings.Builder
	fmt.Fprintf(&b, " #%d %s", p.ID, p.Title)
	if p.Brand != "" {
		b.WriteString(" · " + p.Brand)
	}
	fmt.Fprintf(&b, " · $%.2f · ★%.1f", p.Price, p.Rating)
	if m.prefs.Favorites().Contains(p.ID) {
		b.WriteString(" ♥")
	}

	content := truncate(b.String(), m.width)
	if selected {
		return styles.Selected.Width(m.width).Render(content)
	}
	return styles.Text.Render(content)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.currentView == ViewFavorites {
		return styles.Footer.Width(m.width).Render("Favorites  ·  v back to browse")
	}

	page := m.filters.PageFor(m.listing.Total)
	prev := "←"
	if !page.CanPrev() {
		prev = " "
	}
	next := "→"
	if !page.CanNext() {
		next = " "
	}
	line := fmt.Sprintf("%s Page %d / %d %s", prev, page.Number(), page.Count(), next)
	return styles.Footer.Width(m.width).Render(line)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	rows := []struct{ key, desc string }{
		{"/", "Search (enter commits, esc keeps typing buffer)"},
		{"x", "Clear search immediately"},
		{"c / C", "Next / previous category"},
		{"h l ← →", "Previous / next page"},
		{"j k g G", "Move selection"},
		{"f", "Toggle favorite for selected product"},
		{"v", "Toggle favorites view"},
		{"r", "Re-fetch current query"},
		{"T", "Toggle dark/light theme"},
		{"?", "Toggle this help"},
		{"q / ctrl+c", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.AccentText.Render(fmt.Sprintf("%-10s", row.key)),
			styles.Text.Render(row.desc)))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// categoryName resolves a slug to its display name, falling back to the slug.
func (m Model) categoryName(slug string) string {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return slug
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
