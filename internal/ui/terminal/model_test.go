package terminal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
)

// stubHandle never fires; tests drive ticks by hand.
type stubHandle struct{}

func (stubHandle) Stop() {}

type stubScheduler struct{}

func (stubScheduler) Every(time.Duration, func()) timer.Handle {
	return stubHandle{}
}

func newEngine(t *testing.T) *timer.Engine {
	t.Helper()
	engine := timer.New(model.DefaultDurations(), timer.Config{Scheduler: stubScheduler{}})
	t.Cleanup(engine.Close)
	return engine
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_InitialView(t *testing.T) {
	m := NewModel(newEngine(t), nil)

	assert.Equal(t, "25:00", m.Display().TimeText)
	assert.Equal(t, "Focus", m.Display().LabelText)
	assert.Contains(t, m.View(), "25:00")
	assert.Contains(t, m.View(), "Completed: 0")
	assert.Contains(t, m.View(), "space start")
}

func TestModel_ModeKeys(t *testing.T) {
	tests := []struct {
		key  string
		mode model.Mode
		time string
	}{
		{key: "2", mode: model.ModeShortBreak, time: "05:00"},
		{key: "s", mode: model.ModeShortBreak, time: "05:00"},
		{key: "3", mode: model.ModeLongBreak, time: "15:00"},
		{key: "l", mode: model.ModeLongBreak, time: "15:00"},
		{key: "f", mode: model.ModeFocus, time: "25:00"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			engine := newEngine(t)
			if tt.mode == model.ModeFocus {
				engine.SelectMode(model.ModeLongBreak)
			}
			m := NewModel(engine, nil)

			m, cmd := update(t, m, runes(tt.key))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.mode, engine.State().Mode)
			assert.Equal(t, tt.mode, m.Display().ActiveTab)
			assert.Equal(t, tt.time, m.Display().TimeText)
		})
	}
}

func TestModel_ToggleAndReset(t *testing.T) {
	engine := newEngine(t)
	m := NewModel(engine, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, engine.State().Running)
	assert.Equal(t, "Pause", m.Display().ButtonText)
	assert.Contains(t, m.View(), "space pause")

	engine.Tick()
	m, _ = update(t, m, runes("r"))
	assert.False(t, engine.State().Running)
	assert.Equal(t, "25:00", m.Display().TimeText)
}

func TestModel_QuitKey(t *testing.T) {
	m := NewModel(newEngine(t), nil)

	_, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_UnknownKeyIsIgnored(t *testing.T) {
	engine := newEngine(t)
	m := NewModel(engine, nil)

	m, cmd := update(t, m, runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, model.ModeFocus, engine.State().Mode)
}

func TestModel_EventsUpdateView(t *testing.T) {
	engine := newEngine(t)
	events := engine.Subscribe(4)
	m := NewModel(engine, events)

	engine.Start()
	engine.Tick()
	msg := m.Init()()
	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd, "model keeps listening after an event")
	next := cmd()
	m, _ = update(t, m, next)

	assert.Equal(t, "24:59", m.Display().TimeText)
}

func TestModel_ClosedEventsQuit(t *testing.T) {
	engine := newEngine(t)
	events := engine.Subscribe(1)
	m := NewModel(engine, events)
	engine.Close()

	msg := m.Init()()
	_, cmd := update(t, m, msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSizeClampsProgress(t *testing.T) {
	m := NewModel(newEngine(t), nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 12, Height: 20})
	assert.Equal(t, 10, m.progress.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, maxProgressWidth, m.progress.Width)
}
