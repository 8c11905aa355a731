package clock

import (
	"sync"
	"time"
)

// Fake is a controllable clock and scheduler for tests
// Callbacks registered with Every fire synchronously inside Advance, in due-time order
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	entries []*fakeEntry
}

type fakeEntry struct {
	fake     *Fake
	interval time.Duration
	next     time.Time
	fn       func()
}

// NewFake creates a fake clock starting at the given time
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the current fake time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// SetTime jumps to t without firing callbacks
func (f *Fake) SetTime(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Every registers fn to fire each interval of fake time
func (f *Fake) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		panic("clock: non-positive interval for Fake.Every")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	e := &fakeEntry{
		fake:     f,
		interval: interval,
		next:     f.now.Add(interval),
		fn:       fn,
	}
	f.entries = append(f.entries, e)
	return e
}

// Advance moves time forward by d, firing every callback that comes due
// Lock is released while a callback runs so it may call Now or Cancel
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		var due *fakeEntry
		for _, e := range f.entries {
			if e.next.After(target) {
				continue
			}
			if due == nil || e.next.Before(due.next) {
				due = e
			}
		}
		if due == nil {
			f.now = target
			f.mu.Unlock()
			return
		}

		f.now = due.next
		due.next = due.next.Add(due.interval)
		fn := due.fn
		f.mu.Unlock()

		fn()
	}
}

// Pending returns the number of active registrations
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func (e *fakeEntry) Cancel() {
	f := e.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, other := range f.entries {
		if other == e {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}
