package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("stopwatch.ticks")
	b := reg.Ints.Get("stopwatch.ticks")
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}

	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("Expected shared counter value 3, got %d", got)
	}
	if !reg.Ints.Has("stopwatch.ticks") {
		t.Error("Expected key to be registered")
	}
	if reg.Ints.Has("missing") {
		t.Error("Expected unregistered key to be absent")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	var wg sync.WaitGroup
	ptrs := make([]*AtomicFloat, 32)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(ptrs); i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatalf("Goroutine %d received a different pointer", i)
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestRangeSortedOrder(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	m.Get("c")
	m.Get("a")
	m.Get("b")

	var keys []string
	m.Range(func(key string, _ *AtomicString) {
		keys = append(keys, key)
	})

	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Expected sorted keys a,b,c, got %v", keys)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to load as empty string")
	}

	s.Store("00:00:01")
	if s.Load() != "00:00:01" {
		t.Errorf("Expected stored value, got %q", s.Load())
	}

	long := strings.Repeat("x", MaxStringLen+10)
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Bools.Get("stopwatch.running").Store(true)
	reg.Ints.Get("stopwatch.ticks").Store(42)
	reg.Floats.Get("stopwatch.elapsed_s").Set(1.5)
	reg.Strings.Get("stopwatch.display").Store("00:00:01")

	snap := reg.Snapshot()
	want := map[string]string{
		"stopwatch.running":   "true",
		"stopwatch.ticks":     "42",
		"stopwatch.elapsed_s": "1.500",
		"stopwatch.display":   "00:00:01",
	}
	if len(snap) != len(want) || reg.TotalCount() != len(want) {
		t.Fatalf("Expected %d metrics, got snapshot=%d total=%d", len(want), len(snap), reg.TotalCount())
	}
	for k, v := range want {
		if snap[k] != v {
			t.Errorf("Metric %s = %q, want %q", k, snap[k], v)
		}
	}
}
