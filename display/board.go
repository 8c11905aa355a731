package display

import "sync"

// Board maps stable identifiers to mounted targets
type Board struct {
	mu      sync.RWMutex
	targets map[string]Target
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		targets: make(map[string]Target),
	}
}

// Mount registers t under id, replacing any previous target
func (b *Board) Mount(id string, t Target) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.targets[id] = t
}

// Unmount removes the target registered under id
func (b *Board) Unmount(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.targets, id)
}

// Lookup returns the target registered under id
func (b *Board) Lookup(id string) (Target, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.targets[id]
	return t, ok
}

// Bind returns a Target that resolves id at write time
func (b *Board) Bind(id string) Target {
	return &boundTarget{board: b, id: id}
}

type boundTarget struct {
	board *Board
	id    string
}

func (bt *boundTarget) Present() bool {
	_, ok := bt.board.Lookup(bt.id)
	return ok
}

func (bt *boundTarget) SetText(text string) {
	if t, ok := bt.board.Lookup(bt.id); ok {
		t.SetText(text)
	}
}
