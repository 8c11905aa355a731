package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenTarget draws text on a single row of a tcell screen
type ScreenTarget struct {
	mu     sync.Mutex
	screen tcell.Screen
	x, y   int
	style  tcell.Style
	text   []rune
}

// NewScreenTarget creates a target anchored at column x, row y
func NewScreenTarget(screen tcell.Screen, x, y int, style tcell.Style) *ScreenTarget {
	return &ScreenTarget{
		screen: screen,
		x:      x,
		y:      y,
		style:  style,
	}
}

// SetText replaces the drawn text and flushes the screen
func (s *ScreenTarget) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.text = []rune(text)
	s.draw()
	s.screen.Show()
}

// Move re-anchors the target, erasing the text at the old position
func (s *ScreenTarget) Move(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	s.x, s.y = x, y
	s.draw()
	s.screen.Show()
}

// Redraw paints the current text again, used after a screen clear or resize
func (s *ScreenTarget) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draw()
	s.screen.Show()
}

// Text returns the text currently drawn
func (s *ScreenTarget) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text)
}

func (s *ScreenTarget) clear() {
	for i := range s.text {
		s.screen.SetContent(s.x+i, s.y, ' ', nil, tcell.StyleDefault)
	}
}

func (s *ScreenTarget) draw() {
	for i, r := range s.text {
		s.screen.SetContent(s.x+i, s.y, r, nil, s.style)
	}
}
