package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/search"
)

// SearchPlaceholder is shown in the empty search input.
const SearchPlaceholder = "Search docs, examples, and guides..."

// maxKeywordChips bounds the keywords shown per result row.
const maxKeywordChips = 3

// searchSettleMsg fires when a debounce window elapses.
type searchSettleMsg struct {
	ticket search.Ticket
}

// NavigateMsg asks the root model to open a route.
type NavigateMsg struct {
	Href string
}

func navigateCmd(href string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Href: href} }
}

// SearchBarModel is the search input with its result panel.
type SearchBarModel struct {
	input   textinput.Model
	session *search.Session
	opts    []search.Option
	focused bool
	cursor  int
	width   int
	theme   Theme

	// Screen position of the input line, for click-outside detection.
	originX, originY int
}

// NewSearchBarModel creates a search bar over searcher.
func NewSearchBarModel(searcher navigation.Searcher, theme Theme, opts ...search.Option) SearchBarModel {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 120

	return SearchBarModel{
		input:   ti,
		session: search.NewSession(searcher, opts...),
		opts:    opts,
		theme:   theme,
		width:   SearchPanelWidth,
	}
}

// SetSearcher swaps the lookup backend, e.g. after content reload. The
// query text survives. When the panel was showing, the returned command
// re-runs the query against the new backend without waiting for the debounce.
func (m *SearchBarModel) SetSearcher(searcher navigation.Searcher) tea.Cmd {
	query, open := m.session.Query(), m.session.Open()
	m.session = search.NewSession(searcher, m.opts...)
	m.cursor = 0
	ticket, schedule := m.session.SetQuery(query)
	if !schedule || (!open && !m.focused) {
		return nil
	}
	return func() tea.Msg { return searchSettleMsg{ticket: ticket} }
}

// SetWidth sets the rendered width.
func (m *SearchBarModel) SetWidth(w int) {
	if w < MinBoxWidth {
		w = MinBoxWidth
	}
	m.width = w
	m.input.Width = max(w-4, 1)
}

// SetOrigin records where the input line is drawn.
func (m *SearchBarModel) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Focus gives the input keyboard focus and reopens a settled result panel.
func (m *SearchBarModel) Focus() tea.Cmd {
	m.focused = true
	m.session.Focus()
	return m.input.Focus()
}

// Blur moves focus away. The panel closes; the text stays.
func (m *SearchBarModel) Blur() {
	m.focused = false
	m.input.Blur()
	m.session.Dismiss()
}

// Focused reports whether the input has focus.
func (m SearchBarModel) Focused() bool { return m.focused }

// Value returns the query text.
func (m SearchBarModel) Value() string { return m.session.Query() }

// PanelOpen reports whether the result panel is showing.
func (m SearchBarModel) PanelOpen() bool { return m.session.Open() }

// Results returns the displayed results.
func (m SearchBarModel) Results() []navigation.Item { return m.session.Results() }

// Cursor returns the highlighted result index.
func (m SearchBarModel) Cursor() int { return m.cursor }

// Session exposes the underlying state machine.
func (m SearchBarModel) Session() *search.Session { return m.session }

// Update handles input
func (m SearchBarModel) Update(msg tea.Msg) (SearchBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchSettleMsg:
		if m.session.Settle(msg.ticket) {
			m.cursor = 0
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m SearchBarModel) handleKey(msg tea.KeyMsg) (SearchBarModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Escape()
		m.input.Reset()
		m.cursor = 0
		m.focused = false
		m.input.Blur()
		return m, nil
	case "ctrl+u":
		m.session.Clear()
		m.input.Reset()
		m.cursor = 0
		return m, nil
	case "enter":
		return m.selectResult(m.cursor)
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.session.Results())-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.edit(m.input.Value()))
}

// edit records a new query and schedules its settle message.
func (m *SearchBarModel) edit(q string) tea.Cmd {
	ticket, schedule := m.session.SetQuery(q)
	m.cursor = 0
	if !schedule {
		return nil
	}
	d := m.session.Debounce()
	if d <= 0 {
		return func() tea.Msg { return searchSettleMsg{ticket: ticket} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return searchSettleMsg{ticket: ticket} })
}

func (m SearchBarModel) selectResult(i int) (SearchBarModel, tea.Cmd) {
	href, ok := m.session.Select(i)
	if !ok {
		return m, nil
	}
	m.input.Reset()
	m.cursor = 0
	m.focused = false
	m.input.Blur()
	return m, navigateCmd(href)
}

func (m SearchBarModel) handleMouse(msg tea.MouseMsg) (SearchBarModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.contains(msg.X, msg.Y) {
		if m.focused || m.session.Open() {
			m.Blur()
		}
		return m, nil
	}
	if row := msg.Y - m.originY - 2; m.session.Open() && row >= 0 && row < len(m.session.Results()) {
		return m.selectResult(row)
	}
	cmd := m.Focus()
	return m, cmd
}

// contains reports whether the cell (x, y) belongs to the input or panel.
func (m SearchBarModel) contains(x, y int) bool {
	return x >= m.originX && x < m.originX+m.width &&
		y >= m.originY && y < m.originY+m.Height()
}

// Height returns the number of lines View produces.
func (m SearchBarModel) Height() int {
	return lipgloss.Height(m.View())
}

// View renders the input and, when open, the result panel below it.
func (m SearchBarModel) View() string {
	r := m.theme.Renderer
	inputStyle := r.NewStyle().Foreground(m.theme.Subtext)
	if m.focused {
		inputStyle = inputStyle.Foreground(m.theme.Primary)
	}
	line := inputStyle.Render(m.input.View())
	if !m.session.Open() {
		return line
	}
	return line + "\n" + m.panelView()
}

func (m SearchBarModel) panelView() string {
	r := m.theme.Renderer
	inner := max(m.width-2, 1)
	results := m.session.Results()

	var b strings.Builder
	if len(results) == 0 {
		hint := fmt.Sprintf("No results found for %q", m.session.SettledQuery())
		b.WriteString(r.NewStyle().Faint(true).Italic(true).Render(runewidth.Truncate(hint, inner, "…")))
	}
	for i, it := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		badge := RenderCategoryBadge(m.theme, string(it.Category))
		nameWidth := inner - lipgloss.Width(badge) - 3
		name := runewidth.Truncate(it.Name, max(nameWidth/2, 8), "…")
		avail := max(nameWidth-runewidth.StringWidth(name)-2, 0)
		chips := m.keywordChips(it.Keywords, avail-min(runewidth.StringWidth(it.Description), 12)-2)
		descWidth := avail
		if chips != "" {
			descWidth -= lipgloss.Width(chips) + 2
		}
		desc := runewidth.Truncate(it.Description, max(descWidth, 0), "…")

		nameStyle := r.NewStyle().Bold(true)
		prefix := "  "
		if i == m.cursor {
			nameStyle = nameStyle.Foreground(m.theme.Primary)
			prefix = r.NewStyle().Foreground(m.theme.Primary).Render("▸ ")
		}
		row := prefix + nameStyle.Render(name)
		if desc != "" {
			row += "  " + r.NewStyle().Foreground(m.theme.Subtext).Render(desc)
		}
		if chips != "" {
			row += "  " + chips
		}
		if badge != "" {
			gap := inner - lipgloss.Width(row) - lipgloss.Width(badge)
			row += strings.Repeat(" ", max(gap, 1)) + badge
		}
		b.WriteString(row)
	}

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(inner).
		Render(b.String())
}

// keywordChips renders the leading keywords that fit in width, at most
// maxKeywordChips of them.
func (m SearchBarModel) keywordChips(keywords []string, width int) string {
	style := m.theme.Renderer.NewStyle().Foreground(m.theme.Secondary)
	var chips []string
	used := 0
	for _, kw := range keywords {
		if len(chips) == maxKeywordChips {
			break
		}
		w := runewidth.StringWidth(kw) + 1
		if len(chips) > 0 {
			w++
		}
		if used+w > width {
			break
		}
		used += w
		chips = append(chips, style.Render("#"+kw))
	}
	return strings.Join(chips, " ")
}
