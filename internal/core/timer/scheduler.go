package timer

import (
	"sync"
	"time"
)

// Handle is a cancellable recurring task.
type Handle interface {
	Stop()
}

// Scheduler arranges fn to run every period until the handle is stopped.
type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

// TickerScheduler runs callbacks from a time.Ticker goroutine.
type TickerScheduler struct{}

// Every starts a ticker goroutine calling fn on each tick.
func (TickerScheduler) Every(period time.Duration, fn func()) Handle {
	handle := &tickerHandle{
		ticker: time.NewTicker(period),
		stopCh: make(chan struct{}),
	}
	go handle.run(fn)
	return handle
}

type tickerHandle struct {
	ticker *time.Ticker
	stopCh chan struct{}
	once   sync.Once
}

func (handle *tickerHandle) run(fn func()) {
	defer handle.ticker.Stop()
	for {
		select {
		case <-handle.stopCh:
			return
		case <-handle.ticker.C:
			select {
			case <-handle.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

// Stop does not wait for an in-flight callback; the engine discards
// callbacks from stopped handles.
func (handle *tickerHandle) Stop() {
	handle.once.Do(func() {
		close(handle.stopCh)
	})
}
