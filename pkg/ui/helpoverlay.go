package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpTwoColumnWidth is the terminal width from which help uses two columns.
const helpTwoColumnWidth = 90

// shortcut is one key/description pair of the help overlay.
type shortcut struct{ key, desc string }

var helpSections = []struct {
	title string
	keys  []shortcut
}{
	{"NAVIGATION", []shortcut{
		{"j/↓ k/↑", "Scroll"},
		{"PgDn/PgUp", "Page down / up"},
		{"g / G", "Top / bottom"},
		{"t", "Back to top"},
		{"n / p", "Next / previous section"},
		{"b/Bksp", "Go back"},
		{"m", "Toggle menu (mobile)"},
	}},
	{"SEARCH", []shortcut{
		{"/", "Focus search"},
		{"↑/↓ Enter", "Pick a result"},
		{"Ctrl+U", "Clear query"},
		{"Esc", "Close and reset"},
		{"Tab", "Leave search, keep text"},
	}},
	{"CONTENT", []shortcut{
		{"[ / ]", "Previous / next code block"},
		{"y", "Copy selected code block"},
		{"← / →", "Select card"},
		{"Enter", "Open selected card"},
		{"P", "Page index"},
	}},
	{"VIEW", []shortcut{
		{"?", "Toggle this help"},
		{"q/Ctrl+C", "Quit"},
	}},
}

// HelpOverlayModel shows keyboard shortcuts help
type HelpOverlayModel struct {
	visible bool
	width   int
	height  int
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		theme: theme,
	}
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Hide makes the help overlay invisible
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(Brand + " Docs Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	blocks := make([]string, len(helpSections))
	for i, sec := range helpSections {
		var sb strings.Builder
		sb.WriteString(sectionStyle.Render(sec.title))
		for _, s := range sec.keys {
			sb.WriteString("\n  " + keyStyle.Render(s.key) + descStyle.Render(s.desc))
		}
		blocks[i] = sb.String()
	}

	// Two columns when there is room, one otherwise.
	if m.width >= helpTwoColumnWidth {
		half := (len(blocks) + 1) / 2
		left := strings.Join(blocks[:half], "\n\n")
		right := strings.Join(blocks[half:], "\n\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	} else {
		b.WriteString(strings.Join(blocks, "\n\n"))
	}
	b.WriteString("\n\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	// Wrap in box
	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
