package ui

import (
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/content"
)

// CopiedFlash is how long the "Copied!" confirmation stays visible.
const CopiedFlash = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// copyExpiredMsg clears the flash of the copy identified by seq.
type copyExpiredMsg struct {
	seq int
}

// copyCode puts text on the clipboard. A failure is logged and reported as
// false so the caller shows no confirmation.
func copyCode(text string) bool {
	if err := writeClipboard(text); err != nil {
		log.Printf("Warning: copy to clipboard failed: %v", err)
		return false
	}
	return true
}

func copyExpireCmd(seq int) tea.Cmd {
	return tea.Tick(CopiedFlash, func(time.Time) tea.Msg { return copyExpiredMsg{seq: seq} })
}

// RenderCodeBlock draws a fenced block with a header naming its language
// and file. The selected block shows the copy hint, or the confirmation
// while copied is set.
func RenderCodeBlock(t Theme, md *markdownRenderer, blk content.Block, width int, selected, copied bool) string {
	r := t.Renderer
	inner := max(width-4, MinBoxWidth)

	var badges []string
	if blk.Lang != "" {
		badges = append(badges, RenderBadge(t, blk.Lang, t.Accent))
	}
	if blk.Filename != "" {
		badges = append(badges, r.NewStyle().Foreground(t.Subtext).Render(blk.Filename))
	}
	left := strings.Join(badges, " ")

	hint := ""
	switch {
	case copied:
		hint = r.NewStyle().Foreground(t.Success).Bold(true).Render("✓ Copied!")
	case selected:
		hint = r.NewStyle().Foreground(t.Secondary).Render("[y] copy")
	}
	gap := inner - lipgloss.Width(left) - lipgloss.Width(hint)
	header := left + strings.Repeat(" ", max(gap, 1)) + hint

	body := md.Render(blk.Markdown(), inner)

	border := t.Border
	if selected {
		border = t.Primary
	}
	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(header + "\n" + body)
}
