package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
)

// DefaultGridColumns lays cards out one per row on small terminals, two on
// medium and three from lg up.
var DefaultGridColumns = responsive.Values[int]{
	responsive.SM: 1,
	responsive.MD: 2,
	responsive.LG: 3,
}

// RelatedGridColumns is used for the related-content strip.
var RelatedGridColumns = responsive.Values[int]{
	responsive.MD: 2,
	responsive.XL: 3,
}

const gridGap = 1

// RenderCard renders one feature card at the given outer width.
func RenderCard(t Theme, styles CardStyles, c content.Card, width int, selected bool) string {
	r := t.Renderer
	variant := CardVariant(c.Variant)
	size := CardSize(c.Size)
	spec := styles.Spec(variant, size)

	box := styles.Box(variant, size, width)
	if selected {
		box = box.BorderForeground(t.Primary)
	}

	var b strings.Builder
	title := r.NewStyle().Bold(true).Foreground(spec.TitleColor).Render(c.Title)
	if c.Badge != "" {
		title += " " + RenderBadge(t, c.Badge, t.Warning)
	}
	b.WriteString(title)
	if badge := RenderCategoryBadge(t, c.Category); badge != "" {
		b.WriteString("\n" + badge)
	}
	if c.Description != "" {
		b.WriteString("\n" + r.NewStyle().Foreground(t.Subtext).Render(c.Description))
	}
	for _, f := range c.Features {
		b.WriteString("\n" + r.NewStyle().Foreground(t.Success).Render("✓ ") + f)
	}
	if link := cardLink(c); link != "" {
		b.WriteString("\n" + r.NewStyle().Foreground(t.Primary).Render(link))
	}
	return box.Render(b.String())
}

func cardLink(c content.Card) string {
	if c.Href == "" {
		return ""
	}
	action := c.Action
	if action == "" {
		action = "Learn more"
	}
	arrow := "→"
	if c.External {
		arrow = "↗"
	}
	return action + " " + arrow + " " + c.Href
}

// CardFromItem presents a navigation entry as a card.
func CardFromItem(it navigation.Item) content.Card {
	return content.Card{
		Title:       it.Name,
		Description: it.Description,
		Category:    string(it.Category),
		Href:        it.Href,
		Variant:     string(VariantInteractive),
		Size:        string(SizeSM),
	}
}

// GridColumnWidth returns the card width for cols columns in width.
func GridColumnWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - gridGap*(cols-1)) / cols
	if w < MinBoxWidth {
		w = MinBoxWidth
	}
	return w
}

// RenderGrid joins rendered cards into rows of cols.
func RenderGrid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	gap := strings.Repeat(" ", gridGap)
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// CardGrid renders cards in a responsive grid of the given total width.
// selected is the index of the highlighted card, or -1.
func CardGrid(t Theme, styles CardStyles, cards []content.Card, cols, width, selected int) string {
	colWidth := GridColumnWidth(width, cols)
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = RenderCard(t, styles, c, colWidth, i == selected)
	}
	return RenderGrid(rendered, cols)
}
