// Package tui implements the interactive terminal dashboard for campusdash.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/kemilad/campusdash/internal/content"
	"github.com/kemilad/campusdash/internal/logging"
	"github.com/kemilad/campusdash/internal/nav"
)

// Config holds the runtime configuration passed from the CLI to the TUI.
type Config struct {
	Content content.Dashboard
	// Start, when set, is selected right after the selector is created.
	Start *nav.Destination
}

// Model is the root BubbleTea model; it owns the sidebar selector.
type Model struct {
	data     content.Dashboard
	selector *nav.Selector
	pending  []nav.Change
	last     *nav.Change

	card     int // focused quick-action card on the home screen
	search   textinput.Model
	progress progress.Model
	help     help.Model
	keys     keyMap
	log      *logrus.Entry

	width  int
	height int
}

// NewModel constructs the root model with Home active.
func NewModel(cfg Config) *Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Content.Header.SearchPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = 24

	m := &Model{
		data:     cfg.Content,
		selector: nav.NewSelector(),
		search:   ti,
		progress: progress.New(progress.WithSolidFill(string(colAccent)), progress.WithoutPercentage()),
		help:     help.New(),
		keys:     defaultKeyMap,
		log:      logging.NewLogger("tui"),
	}
	m.selector.Subscribe(m.onChange)
	if cfg.Start != nil {
		m.selector.Select(*cfg.Start)
	}
	return m
}

// Active returns the destination highlighted in the sidebar.
func (m *Model) Active() nav.Destination {
	return m.selector.Active()
}

func (m *Model) onChange(c nav.Change) {
	m.log.WithFields(logrus.Fields{"from": c.From, "to": c.To}).Debug("navigation selected")
	m.pending = append(m.pending, c)
}

// flush turns changes recorded by the observer into NavigatedMsg commands.
func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(m.pending))
	for i, c := range m.pending {
		cmds[i] = func() tea.Msg { return NavigatedMsg(c) }
	}
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) Init() tea.Cmd {
	return m.flush()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(40, m.contentWidth()-12)
		return m, nil

	case NavigatedMsg:
		c := nav.Change(msg)
		m.last = &c
		if c.To != nav.Home {
			m.card = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Search):
			return m, m.search.Focus()
		}
		m.handleKey(msg)
		return m, m.flush()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	active := m.selector.Active()
	switch {
	case key.Matches(msg, m.keys.Up, m.keys.Prev):
		m.selector.Select(active.Prev())
	case key.Matches(msg, m.keys.Down, m.keys.Next):
		m.selector.Select(active.Next())
	case key.Matches(msg, m.keys.Jump):
		m.selector.Select(nav.Destinations()[msg.Runes[0]-'1'])
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case active == nav.Home && key.Matches(msg, m.keys.Left):
		if m.card > 0 {
			m.card--
		}
	case active == nav.Home && key.Matches(msg, m.keys.Right):
		if m.card < len(m.data.QuickActions)-1 {
			m.card++
		}
	case active == nav.Home && key.Matches(msg, m.keys.Open):
		if m.card < len(m.data.QuickActions) {
			m.selector.Select(m.data.QuickActions[m.card].Target)
		}
	}
}

// updateSearch feeds keys to the search box. Typing does not filter
// anything; the box is display-only.
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel, m.keys.Open):
		m.search.Blur()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}
