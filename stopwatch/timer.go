package stopwatch

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/reading-timer/clock"
	"github.com/lixenwraith/reading-timer/display"
	"github.com/lixenwraith/reading-timer/status"
)

// Timer tracks elapsed running time and periodically renders it as HH:MM:SS
//
// Running holds iff a refresh registration is active and a baseline is set.
// Elapsed only grows while running, is frozen while paused and returns to
// zero on Reset. After Close the timer never runs again.
type Timer struct {
	mu sync.Mutex

	target    display.Target
	clock     clock.TimeProvider
	scheduler clock.Scheduler
	interval  time.Duration

	recomputeOnPause bool
	logger           *log.Logger
	onEvent          func(Event)

	// Timing state
	startMark  time.Time     // now - elapsed at the moment running began
	elapsed    time.Duration // last computed running time
	handle     clock.Handle  // active refresh registration
	running    bool
	closed     bool
	generation uint64 // bumped per Start, stale callbacks compare against it

	// Cached metric pointers
	statusReg      *status.Registry
	statTicks      *atomic.Int64
	statRenders    *atomic.Int64
	statSkipped    *atomic.Int64
	statRunning    *atomic.Bool
	statElapsed    *status.AtomicFloat
	statLastRender *status.AtomicString
}

// New creates a paused timer with zero elapsed time rendering into target
// A nil target is allowed; renders are then skipped
func New(target display.Target, opts ...Option) *Timer {
	t := &Timer{
		target:   target,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.clock == nil {
		t.clock = clock.NewMonotonicTimeProvider()
	}
	if t.scheduler == nil {
		t.scheduler = clock.NewTickerScheduler()
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard, "", 0)
	}
	if t.statusReg == nil {
		t.statusReg = status.NewRegistry()
	}

	t.statTicks = t.statusReg.Ints.Get("stopwatch.ticks")
	t.statRenders = t.statusReg.Ints.Get("stopwatch.renders")
	t.statSkipped = t.statusReg.Ints.Get("stopwatch.renders_skipped")
	t.statRunning = t.statusReg.Bools.Get("stopwatch.running")
	t.statElapsed = t.statusReg.Floats.Get("stopwatch.elapsed_s")
	t.statLastRender = t.statusReg.Strings.Get("stopwatch.display")

	return t
}

// Start begins or resumes timing; no-op when already running or closed
func (t *Timer) Start() {
	t.mu.Lock()
	if t.running || t.closed {
		t.mu.Unlock()
		return
	}

	t.startMark = t.clock.Now().Add(-t.elapsed)
	t.generation++
	gen := t.generation
	t.handle = t.scheduler.Every(t.interval, func() { t.tick(gen) })
	t.running = true
	t.statRunning.Store(true)

	t.logger.Printf("stopwatch: start elapsed=%s", t.elapsed)
	t.mu.Unlock()

	t.emit(EventStart)
}

// Pause stops timing and cancels the refresh; no-op when not running
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}

	if t.recomputeOnPause {
		t.measure()
		t.render()
	}
	t.stop()

	t.logger.Printf("stopwatch: pause elapsed=%s", t.elapsed)
	t.mu.Unlock()

	t.emit(EventPause)
}

// Reset pauses, zeroes elapsed time and renders 00:00:00
func (t *Timer) Reset() {
	t.mu.Lock()
	closed := t.closed

	t.stop()
	t.elapsed = 0
	t.statElapsed.Set(0)
	t.render()

	t.logger.Printf("stopwatch: reset")
	t.mu.Unlock()

	if !closed {
		t.emit(EventReset)
	}
}

// Close cancels the refresh for good; the display is no longer written after it returns
func (t *Timer) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	t.stop()
	t.closed = true

	t.logger.Printf("stopwatch: close elapsed=%s", t.elapsed)
	t.mu.Unlock()

	t.emit(EventClose)
}

// Elapsed returns the stored elapsed time
// While running it is only as fresh as the last refresh
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the timer is running
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// String returns the stored elapsed time formatted as the display shows it
func (t *Timer) String() string {
	return Format(t.Elapsed())
}

// tick is the periodic refresh callback for generation gen
func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Callback raced a Pause/Reset/Close, or belongs to an earlier run
	if !t.running || gen != t.generation {
		return
	}

	t.statTicks.Add(1)
	t.measure()
	t.render()
}

// measure recomputes elapsed from the baseline, caller holds mu and timer is running
func (t *Timer) measure() {
	d := t.clock.Now().Sub(t.startMark).Truncate(time.Millisecond)
	if d > t.elapsed {
		t.elapsed = d
	}
	t.statElapsed.Set(t.elapsed.Seconds())
}

// render writes the stored elapsed time to the target, caller holds mu
func (t *Timer) render() {
	if t.closed {
		return
	}

	text := Format(t.elapsed)
	if !display.Write(t.target, text) {
		t.statSkipped.Add(1)
		return
	}
	t.statRenders.Add(1)
	t.statLastRender.Store(text)
}

// stop cancels the refresh and clears the baseline, caller holds mu
func (t *Timer) stop() {
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
	t.running = false
	t.startMark = time.Time{}
	t.statRunning.Store(false)
	t.statElapsed.Set(t.elapsed.Seconds())
}

func (t *Timer) emit(ev Event) {
	if t.onEvent != nil {
		t.onEvent(ev)
	}
}
