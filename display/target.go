package display

// DefaultID is the identifier the stopwatch display is mounted under
const DefaultID = "timer-display"

// Target receives rendered text
// Implementations must not call back into the component writing to them
type Target interface {
	SetText(text string)
}

// presence is implemented by targets that may have nothing mounted behind them
type presence interface {
	Present() bool
}

// Write renders text on t and reports whether a surface received it
// A nil or absent target is skipped silently
func Write(t Target, text string) bool {
	if t == nil {
		return false
	}
	if p, ok := t.(presence); ok && !p.Present() {
		return false
	}
	t.SetText(text)
	return true
}
