package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the page view bindings. Search and overlays handle their own
// keys while they have focus.
type keyMap struct {
	Quit        key.Binding
	Search      key.Binding
	Down        key.Binding
	Up          key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	Top         key.Binding
	Bottom      key.Binding
	ScrollTop   key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	NextCode    key.Binding
	PrevCode    key.Binding
	Copy        key.Binding
	NextCard    key.Binding
	PrevCard    key.Binding
	Open        key.Binding
	Back        key.Binding
	Menu        key.Binding
	Index       key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Search:      key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "search")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", " ", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		ScrollTop:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "back to top")),
		NextSection: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous section")),
		NextCode:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next code block")),
		PrevCode:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous code block")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy code")),
		NextCard:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next card")),
		PrevCard:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous card")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open card")),
		Back:        key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Menu:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Index:       key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "page index")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}
