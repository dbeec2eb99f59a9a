package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Glamour styles selectable through the theme setting.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StylePlain = "notty"
)

// markdownRenderer renders markdown with glamour, rebuilding the renderer
// only when the wrap width changes.
type markdownRenderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = StyleAuto
	}
	return &markdownRenderer{style: style}
}

func (md *markdownRenderer) ensure(width int) bool {
	if md.term != nil && md.width == width {
		return true
	}
	styleOpt := glamour.WithStandardStyle(md.style)
	if md.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}
	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		log.Printf("Warning: markdown renderer: %v", err)
		md.term = nil
		return false
	}
	md.term = term
	md.width = width
	return true
}

// Render returns src rendered for width, or src itself if glamour fails.
func (md *markdownRenderer) Render(src string, width int) string {
	if width < MinBoxWidth {
		width = MinBoxWidth
	}
	if !md.ensure(width) {
		return src
	}
	out, err := md.term.Render(src)
	if err != nil {
		log.Printf("Warning: markdown render: %v", err)
		return src
	}
	return strings.Trim(out, "\n")
}
