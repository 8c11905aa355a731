package display

import "sync"

// Buffer is an in-memory Target recording every write
type Buffer struct {
	mu     sync.Mutex
	text   string
	writes []string
}

// NewBuffer creates an empty buffer target
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.writes = append(b.writes, text)
}

// Text returns the most recent write
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Writes returns a copy of all writes in order
func (b *Buffer) Writes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.writes))
	copy(out, b.writes)
	return out
}

// WriteCount returns the number of writes received
func (b *Buffer) WriteCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.writes)
}
