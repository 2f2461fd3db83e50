package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Inbox    key.Binding
	Catalog  key.Binding
	Projects key.Binding
	Next     key.Binding
	Prev     key.Binding
	Search   key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Inbox: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "входящие"),
		),
		Catalog: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "каталог"),
		),
		Projects: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "проекты"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "след. раздел"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "пред. раздел"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "сброс поиска"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "вниз"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "открыть"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "обновить"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "справка"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "выход"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Search, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Inbox, k.Catalog, k.Projects, k.Next, k.Prev},
		{k.Up, k.Down, k.Open},
		{k.Search, k.Clear, k.Refresh},
		{k.Help, k.Quit},
	}
}
