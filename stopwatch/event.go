package stopwatch

// Event identifies a state transition
type Event uint8

const (
	EventStart Event = iota
	EventPause
	EventReset
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventReset:
		return "reset"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}
