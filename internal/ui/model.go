package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"counterdeck/internal/config"
	"counterdeck/internal/domain"
	"counterdeck/internal/store"
	"counterdeck/internal/ui/views"
)

// Model is the Bubble Tea model for the counter list. It is a passive
// renderer and dispatcher: every domain change goes through the store's
// reducer, and the model only holds presentation state (cursor, sizes,
// status line).
type Model struct {
	store   store.Store
	cfg     *config.Config
	state   domain.AppState
	keys    keyMap
	help    help.Model
	view    *views.ViewRenderer
	program *tea.Program

	cursor        int
	created       int // counters created this session, drives the palette cycle
	width, height int
	statusMessage string
}

// NewModel creates the UI model wired to the given store and config.
func NewModel(s store.Store, cfg *config.Config) *Model {
	styles := views.NewStyles()
	counters := views.NewCounterRenderer(styles, cfg.UISettings.ShowNumbers)

	state := s.GetState()
	return &Model{
		store:   s,
		cfg:     cfg,
		state:   state,
		keys:    defaultKeyMap(),
		help:    help.New(),
		view:    views.NewViewRenderer(styles, counters),
		created: state.Len(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case StateChangedMsg:
		m.state = msg.State
		m.clampCursor()

	case pagerDoneMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("pager error: %v", msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.state.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		color := m.cfg.ColorFor(m.created)
		m.created++
		m.dispatch(domain.NewCounter(color))
		m.cursor = m.state.Len() - 1

	case key.Matches(msg, m.keys.Remove):
		if m.state.Len() == 0 {
			m.statusMessage = "nothing to remove"
			break
		}
		m.dispatch(domain.RemoveLast())
		m.clampCursor()

	case key.Matches(msg, m.keys.Increment):
		m.dispatch(domain.Increment(m.cursor))

	case key.Matches(msg, m.keys.Decrement):
		m.dispatch(domain.Decrement(m.cursor))

	case key.Matches(msg, m.keys.Color):
		if counter, ok := m.state.Counter(m.cursor); ok {
			m.dispatch(domain.SetColor(m.cursor, m.cfg.NextColor(counter.Color)))
		}

	case key.Matches(msg, m.keys.Log):
		return m, m.showActionLog()
	}

	return m, nil
}

// dispatch sends the action to the store and refreshes the local snapshot.
// Dispatch is synchronous, so the new state is visible immediately; the
// subscription message that follows is a no-op rerender.
func (m *Model) dispatch(action domain.Action) {
	m.store.Dispatch(action)
	m.state = m.store.GetState()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.state.Len() {
		m.cursor = m.state.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.view.Render(m.state, m.cursor, m.statusMessage, m.help.View(m.keys))
}
