package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/chart"
	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/history"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
	"github.com/blazemetrics/bmdocs/pkg/search"
)

// Config bundles the dependencies of the page browser.
type Config struct {
	Library  *content.Library
	Index    *navigation.Index
	Searcher navigation.Searcher
	History  *history.Store // nil disables recently viewed

	Table         responsive.Table // zero value selects responsive.TerminalTable
	Size          responsive.Size  // terminal size before the first resize
	StartPage     string
	Style         string // glamour style: auto, dark, light or notty
	Renderer      *lipgloss.Renderer
	HistoryLimit  int
	SearchOptions []search.Option
	Chart         *chart.Dataset
}

// LibraryReloadedMsg delivers pages reloaded from disk. Searcher, when set,
// replaces the search backend built over the old pages.
type LibraryReloadedMsg struct {
	Library  *content.Library
	Searcher navigation.Searcher
}

// Model is the documentation browser.
type Model struct {
	library  *content.Library
	index    *navigation.Index
	router   *navigation.Router
	history  *history.Store
	histMax  int
	chart    chart.Dataset
	screen   *responsive.Broadcaster
	resolver *responsive.Resolver
	classes  *classWatch

	theme      Theme
	cardStyles CardStyles
	md         *markdownRenderer
	keys       keyMap

	viewport  viewport.Model
	search    SearchBarModel
	help      HelpOverlayModel
	pageIndex PageIndexModel
	tracker   SectionTracker

	page    *content.Page
	doc     document
	recent  []history.Visit
	codeSel int
	copied  int
	copySeq int
	cardSel int

	menuOpen bool
	status   string
	width    int
	height   int
	ready    bool
	now      func() time.Time
}

// NewModel creates the browser positioned on cfg.StartPage.
func NewModel(cfg Config) Model {
	r := cfg.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	table := cfg.Table
	if table.Len() == 0 {
		table = responsive.TerminalTable
	}
	data := chart.Default()
	if cfg.Chart != nil {
		data = *cfg.Chart
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	searcher := cfg.Searcher
	if searcher == nil {
		searcher = cfg.Index
	}

	theme := DefaultTheme(r)
	screen := responsive.NewBroadcaster(cfg.Size)
	resolver := responsive.NewResolver(table)
	resolver.Activate(screen)
	classes := &classWatch{last: resolver.Class()}
	resolver.OnChange(classes.observe)

	m := Model{
		library:    cfg.Library,
		index:      cfg.Index,
		router:     navigation.NewRouter(cfg.Index, cfg.StartPage),
		history:    cfg.History,
		histMax:    limit,
		chart:      data,
		screen:     screen,
		resolver:   resolver,
		classes:    classes,
		theme:      theme,
		cardStyles: DefaultCardStyles(theme),
		md:         newMarkdownRenderer(cfg.Style),
		keys:       defaultKeyMap(),
		viewport:   viewport.New(80, 20),
		search:     NewSearchBarModel(searcher, theme, cfg.SearchOptions...),
		help:       NewHelpOverlayModel(theme),
		pageIndex:  NewPageIndexModel(cfg.Index.Tree(), theme),
		now:        time.Now,
		width:      cfg.Size.Width,
		height:     cfg.Size.Height,
		ready:      cfg.Size.Width > 0 && cfg.Size.Height > 0,
	}
	m.loadPage(true)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Resolver exposes the breakpoint state.
func (m Model) Resolver() *responsive.Resolver { return m.resolver }

// CurrentPath returns the open route.
func (m Model) CurrentPath() string { return m.router.Current() }

// Page returns the open page.
func (m Model) Page() *content.Page { return m.page }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Publish(responsive.Size{Width: msg.Width, Height: msg.Height})
		if m.classes.take() {
			m.menuOpen = false
		}
		m.ready = true
		m.layout()
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Href)
		return m, nil

	case searchSettleMsg:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.layout()
		return m, cmd

	case copyExpiredMsg:
		if msg.seq == m.copySeq && m.copied >= 0 {
			m.copied = -1
			m.rebuild()
		}
		return m, nil

	case LibraryReloadedMsg:
		if msg.Library != nil {
			m.library = msg.Library
		}
		var cmd tea.Cmd
		if msg.Searcher != nil {
			cmd = m.search.SetSearcher(msg.Searcher)
		}
		m.status = "Content reloaded"
		m.loadPage(false)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wasOpen := m.search.PanelOpen()
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	if wasOpen != m.search.PanelOpen() {
		m.layout()
	}
	if !m.search.Focused() {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		m.syncScroll()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return m, nil
	}
	if m.pageIndex.IsVisible() {
		var cmd tea.Cmd
		m.pageIndex, cmd = m.pageIndex.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		if msg.String() == "tab" {
			m.search.Blur()
			m.layout()
			return m, nil
		}
		wasOpen := m.search.PanelOpen()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if wasOpen != m.search.PanelOpen() {
			m.layout()
		}
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.layout()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
	case key.Matches(msg, m.keys.Index):
		m.pageIndex.Show(m.router.Current())
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.Top), key.Matches(msg, m.keys.ScrollTop):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.NextSection):
		if off, ok := m.tracker.Next(); ok {
			m.viewport.SetYOffset(off)
		}
	case key.Matches(msg, m.keys.PrevSection):
		if off, ok := m.tracker.Prev(); ok {
			m.viewport.SetYOffset(off)
		}
	case key.Matches(msg, m.keys.NextCode):
		m.selectCode(m.codeSel + 1)
	case key.Matches(msg, m.keys.PrevCode):
		m.selectCode(m.codeSel - 1)
	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	case key.Matches(msg, m.keys.NextCard):
		m.selectCard(m.cardSel + 1)
	case key.Matches(msg, m.keys.PrevCard):
		m.selectCard(m.cardSel - 1)
	case key.Matches(msg, m.keys.Open):
		return m.openCard()
	case key.Matches(msg, m.keys.Back):
		if m.router.Back() {
			m.loadPage(true)
		}
	case key.Matches(msg, m.keys.Menu):
		if m.resolver.IsMobile() {
			m.menuOpen = !m.menuOpen
			m.layout()
		}
	}
	m.syncScroll()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.resolver.Deactivate()
	return m, tea.Quit
}

// navigate opens href; unknown routes land on the not-found page.
func (m *Model) navigate(href string) {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		if copyCode(href) {
			m.status = "Link copied: " + href
		}
		return
	}
	if err := m.router.Navigate(href); err != nil {
		log.Printf("Warning: %v", err)
	}
	m.loadPage(true)
}

// loadPage shows the router's current page. reset scrolls to the top.
func (m *Model) loadPage(reset bool) {
	path := m.router.Current()
	page, ok := m.library.Page(path)
	if !ok {
		page, ok = m.library.Page(navigation.NotFoundPath)
	}
	if !ok {
		page = &content.Page{Path: path, Title: "Page not found"}
	}
	if reset || m.page == nil || m.page.Path != page.Path {
		m.codeSel, m.copied, m.cardSel = -1, -1, -1
		m.menuOpen = false
	}
	m.page = page

	if reset && path != navigation.NotFoundPath {
		m.recordVisit(path, page.Title)
	}
	m.refreshRecent()

	m.layout()
	if reset {
		m.viewport.GotoTop()
		m.syncScroll()
	}
}

func (m *Model) recordVisit(path, title string) {
	if m.history == nil {
		return
	}
	if err := m.history.Record(path, title); err != nil {
		log.Printf("Warning: could not record visit: %v", err)
	}
}

func (m *Model) refreshRecent() {
	m.recent = nil
	if m.history == nil || !m.page.HasWidget(content.WidgetRecent) {
		return
	}
	visits, err := m.history.Recent(m.histMax + 1)
	if err != nil {
		log.Printf("Warning: could not read history: %v", err)
		return
	}
	// The page being viewed is not "recent".
	for _, v := range visits {
		if v.Path != m.page.Path && len(m.recent) < m.histMax {
			m.recent = append(m.recent, v)
		}
	}
}

// showTOC reports whether the section sidebar is drawn.
func (m Model) showTOC() bool {
	if !m.resolver.IsDesktop() || m.page == nil {
		return false
	}
	for _, s := range m.page.Sections {
		if s.Title != "" {
			return true
		}
	}
	return false
}

func (m Model) contentWidth() int {
	w := m.width
	if m.showTOC() {
		w -= TOCWidth + 1
	}
	return max(w, MinBoxWidth)
}

func (m Model) navbarView() string {
	return RenderNavbar(m.theme, m.index.Tree(), m.router.Current(), m.resolver.State(), m.menuOpen, m.width)
}

// layout sizes every component for the current window and re-renders.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	top := lipgloss.Height(m.navbarView())
	m.search.SetOrigin(0, top)
	m.search.SetWidth(min(m.width, SearchPanelWidth))

	// navbar + search line + status line
	h := m.height - top - m.search.Height() - 1
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = max(h, MinContentHeight)
	m.help.SetSize(m.width, m.height)
	m.pageIndex.SetSize(m.width, m.height)
	m.rebuild()
}

// rebuild renders the page for the current width and selection.
func (m *Model) rebuild() {
	if !m.ready {
		return
	}
	in := docInput{
		page:     m.page,
		crumbs:   m.router.Breadcrumbs(),
		related:  m.router.Related(),
		recent:   m.recent,
		chart:    m.chart,
		width:    min(m.contentWidth(), MaxContentWidth),
		cardCols: responsive.Columns(m.resolver, DefaultGridColumns),
		relCols:  responsive.ColumnsOr(m.resolver, RelatedGridColumns, 1),
		codeSel:  m.codeSel,
		copied:   m.copied,
		cardSel:  m.cardSel,
		now:      m.now(),
	}
	if m.page.Path == navigation.NotFoundPath {
		in.related = nil
	}
	m.doc = renderDocument(m.theme, m.cardStyles, m.md, in)

	y := m.viewport.YOffset
	m.viewport.SetContent(m.doc.body)
	m.viewport.SetYOffset(y)
	m.tracker = NewSectionTracker(m.doc.marks)
	m.syncScroll()
}

func (m *Model) syncScroll() {
	m.tracker.SetScroll(m.viewport.YOffset)
}

// ensureVisible scrolls so line is inside the viewport.
func (m *Model) ensureVisible(line int) {
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line)
	}
}

func (m *Model) selectCode(i int) {
	n := len(m.doc.codeLines)
	if n == 0 {
		return
	}
	i = max(0, min(i, n-1))
	m.codeSel = i
	m.rebuild()
	m.ensureVisible(m.doc.codeLines[i])
}

// firstVisibleCode returns the first code block at or below the top line.
func (m Model) firstVisibleCode() int {
	for i, line := range m.doc.codeLines {
		if line >= m.viewport.YOffset {
			return i
		}
	}
	return len(m.doc.codeLines) - 1
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if len(m.doc.codeBlocks) == 0 {
		return m, nil
	}
	if m.codeSel < 0 {
		m.codeSel = m.firstVisibleCode()
	}
	if !copyCode(m.doc.codeBlocks[m.codeSel].Text) {
		m.rebuild()
		return m, nil
	}
	m.copySeq++
	m.copied = m.codeSel
	m.rebuild()
	return m, copyExpireCmd(m.copySeq)
}

func (m *Model) selectCard(i int) {
	n := len(m.doc.cards)
	if n == 0 {
		return
	}
	m.cardSel = max(0, min(i, n-1))
	m.rebuild()
	if m.cardSel < len(m.page.Cards) && m.doc.cardsLine >= 0 {
		m.ensureVisible(m.doc.cardsLine)
	}
}

func (m Model) openCard() (tea.Model, tea.Cmd) {
	if m.cardSel < 0 || m.cardSel >= len(m.doc.cards) {
		return m, nil
	}
	c := m.doc.cards[m.cardSel]
	if c.Href == "" {
		return m, nil
	}
	return m, navigateCmd(c.Href)
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}
	if m.pageIndex.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.pageIndex.View())
	}

	body := m.viewport.View()
	if m.showTOC() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.tocView(m.viewport.Height))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbarView(),
		m.search.View(),
		body,
		m.statusView(),
	)
}

// tocView lists the page sections with the active one highlighted.
func (m Model) tocView(height int) string {
	r := m.theme.Renderer
	active := m.tracker.ActiveIndex()
	lines := []string{r.NewStyle().Bold(true).Foreground(m.theme.Secondary).Render("ON THIS PAGE")}
	for i, mark := range m.tracker.Marks() {
		indent := strings.Repeat(" ", max(mark.Level-2, 0)*2)
		st := r.NewStyle().Foreground(m.theme.Subtext)
		prefix := "  "
		if i == active {
			st = r.NewStyle().Foreground(m.theme.Primary).Bold(true)
			prefix = "▎ "
		}
		lines = append(lines, st.MaxWidth(TOCWidth-1).Render(prefix+indent+mark.Title))
	}
	return r.NewStyle().
		Width(TOCWidth).
		Height(height).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Border).
		Render(strings.Join(lines, "\n"))
}

// SectionIndicator returns the one-line "current section" label shown on
// narrow layouts once the page is scrolled far enough.
func (m Model) SectionIndicator() string {
	if !m.tracker.Visible() {
		return ""
	}
	mark, ok := m.tracker.Active()
	if !ok {
		return ""
	}
	return fmt.Sprintf("§ %s (%d/%d)", mark.Title, m.tracker.ActiveIndex()+1, len(m.tracker.Marks()))
}

func (m Model) statusView() string {
	r := m.theme.Renderer
	state := m.resolver.State()
	left := r.NewStyle().Foreground(m.theme.Secondary).Render(fmt.Sprintf("%s · %s", state.Breakpoint, state.Class))

	middle := m.status
	if middle == "" && !m.showTOC() {
		middle = m.SectionIndicator()
	}
	middle = r.NewStyle().Foreground(m.theme.Primary).Render(middle)

	hints := "? help"
	if m.router.CanGoBack() {
		hints = "b back  " + hints
	}
	right := r.NewStyle().Faint(true).Render(fmt.Sprintf("%3.f%%  %s", m.viewport.ScrollPercent()*100, hints))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		return r.NewStyle().MaxWidth(m.width).Render(left + " " + middle + " " + right)
	}
	lgap := gap / 2
	return left + strings.Repeat(" ", lgap) + middle + strings.Repeat(" ", gap-lgap) + right
}

// classWatch records device-class transitions reported by the resolver.
type classWatch struct {
	last    responsive.DeviceClass
	changed bool
}

func (w *classWatch) observe(s responsive.State) {
	if s.Class != w.last {
		w.last = s.Class
		w.changed = true
	}
}

// take reports whether the class changed since the last call.
func (w *classWatch) take() bool {
	changed := w.changed
	w.changed = false
	return changed
}
