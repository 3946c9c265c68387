// Package terminal renders the timer as a bubbletea program.
package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
)

// Controller is the engine surface the terminal drives.
type Controller interface {
	SelectMode(mode model.Mode)
	Toggle()
	Reset()
	State() timer.State
}

// eventMsg carries an engine event into the update loop.
type eventMsg timer.Event

// closedMsg reports that the engine closed its event channel.
type closedMsg struct{}

const maxProgressWidth = 48

var (
	modeColors = map[model.Mode]lipgloss.Color{
		model.ModeFocus:      lipgloss.Color("#E5483B"),
		model.ModeShortBreak: lipgloss.Color("#3F9D4A"),
		model.ModeLongBreak:  lipgloss.Color("#3B82F6"),
	}
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#6B7280"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	clockStyle     = lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Italic(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Model is the bubbletea model for the terminal timer.
type Model struct {
	controller Controller
	events     <-chan timer.Event
	keys       KeyMap
	progress   progress.Model
	view       display.Model
	width      int
	height     int
}

// NewModel creates a terminal model showing the controller's current state.
func NewModel(controller Controller, events <-chan timer.Event) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxProgressWidth
	return Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap(),
		progress:   bar,
		view:       display.Project(controller.State()),
	}
}

// Init starts listening for engine events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Update handles key presses and engine events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.controller.SelectMode(model.ModeFocus)
		case key.Matches(msg, m.keys.ShortBreak):
			m.controller.SelectMode(model.ModeShortBreak)
		case key.Matches(msg, m.keys.LongBreak):
			m.controller.SelectMode(model.ModeLongBreak)
		case key.Matches(msg, m.keys.Toggle):
			m.controller.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.controller.Reset()
		default:
			return m, nil
		}
		m.view = display.Project(m.controller.State())
		return m, nil

	case eventMsg:
		m.view = display.Project(msg.State)
		return m, waitForEvent(m.events)

	case closedMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		return m, nil
	}
	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	accent := modeColors[m.view.ActiveTab]

	tabs := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		title := display.TabTitle(mode)
		if mode == m.view.ActiveTab {
			tabs = append(tabs, activeTabStyle.Background(accent).Render(title))
			continue
		}
		tabs = append(tabs, tabStyle.Render(title))
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		clockStyle.Foreground(accent).Render(m.view.TimeText),
		m.progress.ViewAs(m.view.ProgressFraction),
		"",
		labelStyle.Render(m.view.LabelText),
		mutedStyle.Render(m.view.CompletedText),
		"",
		mutedStyle.Render(m.helpLine()),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Display returns the current projected view.
func (m Model) Display() display.Model {
	return m.view
}

func (m Model) helpLine() string {
	var parts []string
	for _, binding := range m.keys.bindings() {
		help := binding.Help()
		desc := help.Desc
		if help.Key == m.keys.Toggle.Help().Key {
			desc = strings.ToLower(m.view.ButtonText)
		}
		parts = append(parts, help.Key+" "+desc)
	}
	return strings.Join(parts, "  ")
}

// Run starts the terminal program and blocks until it exits.
func Run(controller Controller, events <-chan timer.Event) error {
	_, err := tea.NewProgram(NewModel(controller, events), tea.WithAltScreen()).Run()
	return err
}
