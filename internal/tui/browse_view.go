package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle = "Job listings"
	helpText    = "/ search • tab category • n/p page • ↑/↓ scroll • t theme • q quit"
	emptyText   = "No jobs match."
)

// View renders the current view (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return m.palette.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			m.palette.Subtle.Render("Press q to quit") + "\n"
	case ViewStateLoading:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.loadingState.View())
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m BrowseModel) renderHeader() string {
	return m.palette.Header.Render(headerTitle) + " " +
		m.palette.Subtle.Render("("+m.palette.Theme.String()+" theme)")
}

func (m BrowseModel) renderListView() string {
	body := m.container.View()
	if m.page.ResultCount == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, m.palette.Subtle.Render(emptyText), body)
	}

	sections := []string{
		m.renderHeader(),
		m.renderSearch(),
		m.renderCategories(),
		body,
		"",
		m.renderControls(),
		m.palette.Subtle.Render(helpText),
	}
	if m.status != "" {
		sections = append(sections, m.palette.Error.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowseModel) renderSearch() string {
	label := m.palette.Label.Render("Search:")
	if m.searching {
		label = m.palette.ActiveOption.Render("Search:")
	}
	return label + " " + m.searchInput.View()
}

// renderCategories draws the selector with the active category highlighted.
func (m BrowseModel) renderCategories() string {
	parts := make([]string, len(m.categories))
	for i, c := range m.categories {
		if i == m.category {
			parts[i] = m.palette.ActiveOption.Render("[" + c + "]")
		} else {
			parts[i] = m.palette.Subtle.Render(c)
		}
	}
	return m.palette.Label.Render("Category:") + " " + strings.Join(parts, " ")
}

// renderControls draws the previous/next controls that are currently visible
// and the page position.
func (m BrowseModel) renderControls() string {
	var parts []string
	if m.page.ShowPrev {
		parts = append(parts, m.palette.Control.Render("‹ prev (p)"))
	}
	parts = append(parts, m.palette.Subtle.Render(fmt.Sprintf("page %d • %d of %d jobs",
		m.page.Page, m.page.ResultCount, m.page.DatasetSize)))
	if m.page.ShowNext {
		parts = append(parts, m.palette.Control.Render("next (n) ›"))
	}
	return strings.Join(parts, "  ")
}
