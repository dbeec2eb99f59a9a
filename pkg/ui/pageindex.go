package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// PageIndexModel lists every page of the navigation tree for quick jumps.
type PageIndexModel struct {
	list    list.Model
	visible bool
	theme   Theme
}

// NewPageIndexModel builds the overlay from the navigation tree.
func NewPageIndexModel(tree []navigation.Item, theme Theme) PageIndexModel {
	entries := pageItems(tree, 0)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}

	l := list.New(items, PageDelegate{Theme: theme}, 60, 20)
	l.Title = "Pages"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.Styles.Title = theme.Renderer.NewStyle().Bold(true).Foreground(theme.Primary)

	return PageIndexModel{list: l, theme: theme}
}

// Show opens the overlay with current marked and selected.
func (m *PageIndexModel) Show(current string) {
	m.visible = true
	m.list.SetDelegate(PageDelegate{Theme: m.theme, Current: current})
	for i, it := range m.list.Items() {
		if p, ok := it.(PageItem); ok && p.Entry.Href == current {
			m.list.Select(i)
			break
		}
	}
}

// Hide closes the overlay.
func (m *PageIndexModel) Hide() {
	m.visible = false
	m.list.ResetFilter()
}

// IsVisible returns true if overlay is showing
func (m PageIndexModel) IsVisible() bool { return m.visible }

// Len returns the number of listed pages.
func (m PageIndexModel) Len() int { return len(m.list.Items()) }

// SetSize sets dimensions
func (m *PageIndexModel) SetSize(width, height int) {
	w := min(max(width-8, MinBoxWidth), 90)
	h := max(height-6, MinContentHeight)
	m.list.SetSize(w, h)
}

// Update handles input. Enter navigates to the selected page; Esc closes
// unless a filter is being edited.
func (m PageIndexModel) Update(msg tea.Msg) (PageIndexModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch key.String() {
		case "esc", "q", "P":
			m.Hide()
			return m, nil
		case "enter":
			if it, ok := m.list.SelectedItem().(PageItem); ok {
				m.Hide()
				return m, navigateCmd(it.Entry.Href)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the overlay
func (m PageIndexModel) View() string {
	if !m.visible {
		return ""
	}
	return m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render(m.list.View())
}
