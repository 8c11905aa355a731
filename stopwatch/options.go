package stopwatch

import (
	"log"
	"time"

	"github.com/lixenwraith/reading-timer/clock"
	"github.com/lixenwraith/reading-timer/status"
)

// DefaultInterval is the display refresh period
const DefaultInterval = 1000 * time.Millisecond

// Option configures a Timer at construction
type Option func(*Timer)

// WithClock sets the time source, defaults to the monotonic system clock
func WithClock(c clock.TimeProvider) Option {
	return func(t *Timer) { t.clock = c }
}

// WithScheduler sets the periodic callback facility, defaults to real tickers
func WithScheduler(s clock.Scheduler) Option {
	return func(t *Timer) { t.scheduler = s }
}

// WithInterval overrides the refresh period; non-positive values keep the default
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithRecomputeOnPause makes Pause capture elapsed time at the exact pause instant
// instead of keeping the value from the last refresh
func WithRecomputeOnPause(enabled bool) Option {
	return func(t *Timer) { t.recomputeOnPause = enabled }
}

// WithLogger routes state transition logs
func WithLogger(l *log.Logger) Option {
	return func(t *Timer) { t.logger = l }
}

// WithStatus publishes counters into reg instead of a private registry
func WithStatus(reg *status.Registry) Option {
	return func(t *Timer) { t.statusReg = reg }
}

// WithEventHook registers fn to observe state transitions
// fn runs after the timer lock is released and may call back into the timer
func WithEventHook(fn func(Event)) Option {
	return func(t *Timer) { t.onEvent = fn }
}
