package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/n0roo/workshop/internal/catalog"
	"github.com/n0roo/workshop/internal/idea"
	"github.com/n0roo/workshop/internal/source"
)

const (
	sidebarWidth = 26
	loadTimeout  = 10 * time.Second
)

// Options configures the browser
type Options struct {
	Section         catalog.Section
	TechniqueBadges int
	AltScreen       bool
	// LogPath, if set, receives log output while the program runs
	LogPath string
}

// DefaultOptions mirrors config.Default()
func DefaultOptions() Options {
	return Options{
		Section:         catalog.SectionCatalog,
		TechniqueBadges: 2,
		AltScreen:       true,
	}
}

// Model is the main TUI model
type Model struct {
	src  source.Source
	opts Options
	vm   *catalog.ViewModel

	// State
	cursor    int
	searching bool
	width     int
	height    int
	ready     bool
	loading   bool
	err       error
	loadedAt  time.Time

	// Components
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
}

// ideasMsg carries the result of a source load
type ideasMsg struct {
	ideas []idea.Idea
	err   error
}

// NewModel creates a new TUI model
func NewModel(src source.Source, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	ti := textinput.New()
	ti.Placeholder = "Поиск по описанию или тегам..."
	ti.Prompt = "⌕ "

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(primaryColor)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(primaryColor)

	vm := catalog.New(nil)
	vm.SetActiveSection(opts.Section)

	return Model{
		src:     src,
		opts:    opts,
		vm:      vm,
		loading: true,
		search:  ti,
		spinner: s,
		help:    h,
		keys:    defaultKeyMap(),
	}
}

// ViewModel exposes the underlying catalog state
func (m Model) ViewModel() *catalog.ViewModel {
	return m.vm
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadIdeas,
	)
}

// loadIdeas fetches the collection from the source
func (m Model) loadIdeas() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	ideas, err := m.src.Load(ctx)
	return ideasMsg{ideas: ideas, err: err}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = m.mainWidth() - 8
		m.help.Width = msg.Width

	case ideasMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			log.Printf("session %s: load failed: %v", m.vm.ID(), msg.err)
			return m, nil
		}
		m.vm.SetIdeas(msg.ideas)
		m.loadedAt = time.Now()
		m.clampCursor()
		log.Printf("session %s: loaded %d ideas", m.vm.ID(), len(msg.ideas))

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if _, ok := m.vm.Selected(); ok {
			return m.updateDetail(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.vm.ClearSelection()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "down", "tab":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.vm.SearchQuery() {
		m.vm.SetSearchQuery(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Inbox):
		m.setSection(catalog.SectionInbox)
	case key.Matches(msg, m.keys.Catalog):
		m.setSection(catalog.SectionCatalog)
	case key.Matches(msg, m.keys.Projects):
		m.setSection(catalog.SectionProjects)
	case key.Matches(msg, m.keys.Next):
		m.setSection(catalog.Section((int(m.vm.ActiveSection()) + 1) % len(catalog.Sections)))
	case key.Matches(msg, m.keys.Prev):
		n := len(catalog.Sections)
		m.setSection(catalog.Section((int(m.vm.ActiveSection()) + n - 1) % n))
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.vm.SetSearchQuery("")
		m.cursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Open):
		visible := m.vm.Visible()
		if m.cursor < len(visible) {
			m.vm.Select(visible[m.cursor])
		}
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.loadIdeas)
	}
	return m, nil
}

func (m *Model) setSection(s catalog.Section) {
	if s == m.vm.ActiveSection() {
		return
	}
	m.vm.SetActiveSection(s)
	m.cursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.vm.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) mainWidth() int {
	w := m.width - sidebarWidth - 1
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Загрузка..."
	}

	if it, ok := m.vm.Selected(); ok {
		return m.renderDetail(it)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderMain())
	return body + "\n" + m.renderFooter()
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⚒ Мастерская"))
	b.WriteString("\n\n")

	inner := sidebarWidth - sidebarStyle.GetHorizontalFrameSize()
	for i, s := range catalog.Sections {
		label := fmt.Sprintf("[%d] %s", i+1, s.Label())
		if s == catalog.SectionInbox {
			badge := badgeStyle.Render(fmt.Sprintf("%d", m.vm.InboxCount()))
			gap := inner - lipgloss.Width(label) - lipgloss.Width(badge) - 1
			if gap < 1 {
				gap = 1
			}
			label += strings.Repeat(" ", gap) + badge
		}

		style := navItemStyle
		if s == m.vm.ActiveSection() {
			style = navActiveStyle
		}
		b.WriteString(style.Width(inner).Render(label))
		b.WriteString("\n")
	}

	height := m.height - 2
	if height < 0 {
		height = 0
	}
	return sidebarStyle.Width(sidebarWidth - 1).Height(height).Render(b.String())
}

func (m Model) renderMain() string {
	width := m.mainWidth()
	inner := width - mainStyle.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(headingStyle.Render(m.vm.ActiveSection().Title()))
	b.WriteString("\n")

	searchBox := searchStyle
	if m.searching {
		searchBox = searchFocusedStyle
	}
	b.WriteString(searchBox.Width(inner - 2).Render(m.search.View()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Загрузка идей...")
	case m.vm.ActiveSection() == catalog.SectionProjects:
		b.WriteString(emptyStyle.Render("Проектов пока нет"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("Создайте первый проект из идей каталога"))
	default:
		b.WriteString(m.renderCards(inner))
	}

	return mainStyle.Width(width).Render(b.String())
}

func (m Model) renderCards(width int) string {
	visible := m.vm.Visible()
	if len(visible) == 0 {
		return emptyStyle.Render("Ничего не найдено")
	}

	cards := make([]string, 0, len(visible))
	for i, it := range visible {
		cards = append(cards, renderCard(it, width, m.opts.TechniqueBadges, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderDetail(it idea.Idea) string {
	width := m.width - 4
	if width > 100 {
		width = 100
	}
	contentWidth := width - dialogStyle.GetHorizontalFrameSize()

	content := RenderMarkdown(IdeaMarkdown(it), contentWidth, true)
	dialog := dialogStyle.Width(width).Render(content)

	hint := helpStyle.Render("  [Esc] Закрыть  [Ctrl+C] Выход")
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, dialog) + "\n" + hint
}

func (m Model) renderFooter() string {
	if m.err != nil {
		return errorStyle.Render("  Ошибка: " + m.err.Error())
	}
	if m.searching {
		return helpStyle.Render("  [Enter/Esc] Готово")
	}
	out := "  " + m.help.View(m.keys)
	if !m.loadedAt.IsZero() {
		out += statusStyle.Render(fmt.Sprintf("  · %d идей", len(m.vm.Ideas())))
	}
	return out
}

// Run starts the TUI
func Run(src source.Source, opts Options) error {
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "workshop")
		if err != nil {
			return fmt.Errorf("не удалось открыть журнал: %w", err)
		}
		defer f.Close()
	} else {
		// 로그가 화면을 깨뜨리지 않도록
		log.SetOutput(io.Discard)
	}

	applyColorProfile()

	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(src, opts), progOpts...)
	_, err := p.Run()
	return err
}
