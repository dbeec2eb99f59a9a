package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
)

// Brand is the product name in the top bar.
const Brand = "BlazeMetrics"

// activeTop returns the top-level entry that contains path.
func activeTop(tree []navigation.Item, path string) string {
	for _, it := range tree {
		if it.Href == path {
			return it.Href
		}
		if it.Href != "/" && strings.HasPrefix(path, it.Href+"/") {
			return it.Href
		}
	}
	return ""
}

// RenderNavbar draws the top bar. Tablets and desktops get horizontal links
// with the active entry highlighted; mobile collapses them behind a Menu
// toggle that expands into a vertical list when menuOpen is set.
func RenderNavbar(t Theme, tree []navigation.Item, current string, state responsive.State, menuOpen bool, width int) string {
	r := t.Renderer
	brand := r.NewStyle().Bold(true).Foreground(t.Primary).Render("⚡ " + Brand)
	active := activeTop(tree, current)

	linkStyle := r.NewStyle().Foreground(t.Subtext)
	activeStyle := r.NewStyle().Bold(true).Foreground(t.Primary).Underline(true)

	if state.IsMobile() {
		toggle := "☰ Menu"
		if menuOpen {
			toggle = "✕ Close"
		}
		gap := width - lipgloss.Width(brand) - lipgloss.Width(toggle)
		bar := brand + strings.Repeat(" ", max(gap, 1)) + linkStyle.Render(toggle)
		if !menuOpen {
			return bar
		}
		lines := []string{bar}
		for _, it := range tree {
			st := linkStyle
			if it.Href == active {
				st = activeStyle
			}
			lines = append(lines, "  "+st.Render(it.Name))
		}
		return strings.Join(lines, "\n")
	}

	links := make([]string, 0, len(tree))
	for _, it := range tree {
		st := linkStyle
		if it.Href == active {
			st = activeStyle
		}
		links = append(links, st.Render(it.Name))
	}
	row := brand + "  " + strings.Join(links, "  ")
	if lipgloss.Width(row) > width && width > 0 {
		row = r.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

// RenderBreadcrumbs draws the trail with the last crumb emphasized.
func RenderBreadcrumbs(t Theme, crumbs []navigation.Breadcrumb) string {
	if len(crumbs) == 0 {
		return ""
	}
	r := t.Renderer
	sep := r.NewStyle().Foreground(t.Secondary).Render(" › ")
	parts := make([]string, len(crumbs))
	for i, c := range crumbs {
		if i == len(crumbs)-1 {
			parts[i] = r.NewStyle().Bold(true).Render(c.Name)
		} else {
			parts[i] = r.NewStyle().Foreground(t.Subtext).Render(c.Name)
		}
	}
	return strings.Join(parts, sep)
}

// RenderPageHeader draws breadcrumbs, title, badge and subtitle.
func RenderPageHeader(t Theme, title, subtitle, badge string, crumbs []navigation.Breadcrumb, width int) string {
	r := t.Renderer
	var b strings.Builder
	if bc := RenderBreadcrumbs(t, crumbs); bc != "" {
		b.WriteString(bc + "\n\n")
	}
	head := r.NewStyle().Bold(true).Foreground(t.Primary).Render(title)
	if badge != "" {
		head += " " + RenderBadge(t, badge, t.Accent)
	}
	b.WriteString(head)
	if subtitle != "" {
		b.WriteString("\n" + r.NewStyle().Foreground(t.Subtext).Width(max(width, MinBoxWidth)).Render(subtitle))
	}
	b.WriteString("\n" + RenderDivider(t, max(width, 1)))
	return b.String()
}
