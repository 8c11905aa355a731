package clock

import (
	"sync"
	"time"

	"github.com/lixenwraith/reading-timer/core"
)

// Scheduler registers callbacks that fire on a fixed interval until cancelled
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Handle cancels a periodic registration
// Cancel is idempotent and never waits for an in-flight callback
type Handle interface {
	Cancel()
}

// TickerScheduler fires callbacks from a dedicated goroutine driven by time.Ticker
type TickerScheduler struct{}

// NewTickerScheduler creates a scheduler backed by real tickers
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every starts a goroutine invoking fn once per interval
// Panics if interval is not positive, as time.NewTicker does
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Handle {
	ticker := time.NewTicker(interval)
	h := &tickerHandle{stopChan: make(chan struct{})}

	// Use core.Go for safe execution with centralized crash handling
	core.Go(func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.stopChan:
				return
			case <-ticker.C:
				// Ticker and stop may be ready together, stop wins
				select {
				case <-h.stopChan:
					return
				default:
				}
				fn()
			}
		}
	})

	return h
}

type tickerHandle struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

func (h *tickerHandle) Cancel() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}
