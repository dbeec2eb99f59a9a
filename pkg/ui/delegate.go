package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PageDelegate renders one page index row: indent, name, route, category.
type PageDelegate struct {
	Theme   Theme
	Current string // route of the open page, marked with a dot
}

func (d PageDelegate) Height() int {
	return 1
}

func (d PageDelegate) Spacing() int {
	return 0
}

func (d PageDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d PageDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(PageItem)
	if !ok {
		return
	}
	r := d.Theme.Renderer

	selected := index == m.Index()
	marker := "  "
	if selected {
		marker = r.NewStyle().Foreground(d.Theme.Primary).Render("▸ ")
	}
	indent := strings.Repeat("  ", i.Depth)

	nameStyle := r.NewStyle()
	if selected {
		nameStyle = nameStyle.Foreground(d.Theme.Primary).Bold(true)
	}
	current := " "
	if i.Entry.Href == d.Current {
		current = r.NewStyle().Foreground(d.Theme.Success).Render("●")
	}

	badge := RenderCategoryBadge(d.Theme, string(i.Entry.Category))
	route := r.NewStyle().Foreground(d.Theme.Secondary).Render(i.Entry.Href)

	// Fixed widths: marker(2) + current(1) + gaps(3) + route + badge
	fixed := 2 + 1 + 3 + lipgloss.Width(route) + lipgloss.Width(badge) + len(indent)
	available := m.Width() - fixed
	if available < 10 {
		available = 10
	}
	name := nameStyle.Render(runewidth.Truncate(i.Entry.Name, available, "…"))

	row := lipgloss.JoinHorizontal(lipgloss.Left,
		marker, current, " ", indent, name, " ", route, " ", badge,
	)
	fmt.Fprint(w, row)
}
