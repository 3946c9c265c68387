package timer

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Logger       *slog.Logger
}

// Engine is the countdown state machine behind every timer view.
type Engine struct {
	mu         sync.Mutex
	durations  model.Durations
	options    Config
	logger     *slog.Logger
	state      State
	handle     Handle
	generation uint64
	events     []chan Event
	closed     bool
}

// New creates an Engine in Focus mode, paused, with nothing completed.
func New(durations model.Durations, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	engine := &Engine{
		durations: durations,
		options:   options,
		logger:    logger,
	}
	engine.selectModeLocked(model.ModeFocus)
	return engine
}

// Subscribe registers an observer channel. When the buffer is full the
// oldest pending event is dropped so observers always see the latest state.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// State returns a snapshot of the current countdown.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// SelectMode switches to mode and rewinds the countdown to its full length.
func (engine *Engine) SelectMode(mode model.Mode) {
	if !mode.Valid() {
		engine.logger.Warn("ignoring unknown mode", "mode", string(mode))
		return
	}

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLocked()
	engine.selectModeLocked(mode)
	engine.logger.Debug("mode selected", "mode", string(mode))
	engine.emitLocked(Event{Type: EventModeSelected, State: engine.state})
}

// Start begins ticking. Calling Start while running does nothing.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.startLocked()
}

// Pause stops ticking and keeps the remaining time.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.pauseLocked()
}

// Toggle starts a paused timer and pauses a running one.
func (engine *Engine) Toggle() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.state.Running {
		engine.pauseLocked()
		return
	}
	engine.startLocked()
}

// Reset stops ticking and rewinds the current mode.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLocked()
	engine.state.Remaining = engine.state.Total
	engine.logger.Debug("timer reset", "mode", string(engine.state.Mode))
	engine.emitLocked(Event{Type: EventReset, State: engine.state})
}

// Tick advances the countdown by one second. It is a no-op while paused.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.tickLocked()
}

// Close stops ticking and closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.stopLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) startLocked() {
	if engine.state.Running || engine.closed {
		return
	}

	engine.state.Running = true
	engine.generation++
	generation := engine.generation
	engine.handle = engine.options.Scheduler.Every(engine.options.TickInterval, func() {
		engine.tickFrom(generation)
	})
	engine.logger.Debug("timer started", "mode", string(engine.state.Mode), "remaining", engine.state.Remaining)
	engine.emitLocked(Event{Type: EventStarted, State: engine.state})
}

func (engine *Engine) pauseLocked() {
	if !engine.state.Running {
		return
	}
	engine.stopLocked()
	engine.logger.Debug("timer paused", "mode", string(engine.state.Mode), "remaining", engine.state.Remaining)
	engine.emitLocked(Event{Type: EventPaused, State: engine.state})
}

func (engine *Engine) tickFrom(generation uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if generation != engine.generation {
		return
	}
	engine.tickLocked()
}

func (engine *Engine) tickLocked() {
	if !engine.state.Running {
		return
	}

	if engine.state.Remaining > 0 {
		engine.state.Remaining--
	}
	if engine.state.Remaining > 0 {
		engine.emitLocked(Event{Type: EventTick, State: engine.state})
		return
	}

	finished := engine.state.Mode
	engine.stopLocked()
	if finished == model.ModeFocus {
		engine.state.CompletedFocus++
	}
	engine.selectModeLocked(engine.durations.Next(finished))
	engine.logger.Info("interval completed",
		"finished", string(finished),
		"next", string(engine.state.Mode),
		"completed_focus", engine.state.CompletedFocus,
	)
	engine.emitLocked(Event{Type: EventCompleted, State: engine.state, Finished: finished})
}

// stopLocked cancels the tick handle; bumping the generation makes any
// callback already in flight a no-op.
func (engine *Engine) stopLocked() {
	if engine.handle != nil {
		engine.handle.Stop()
		engine.handle = nil
	}
	engine.generation++
	engine.state.Running = false
}

func (engine *Engine) selectModeLocked(mode model.Mode) {
	total := engine.durations.Seconds(mode)
	engine.state.Mode = mode
	engine.state.Total = total
	engine.state.Remaining = total
	engine.state.Running = false
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}
