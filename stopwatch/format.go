package stopwatch

import (
	"fmt"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Format renders d as HH:MM:SS
// Hours are zero-padded to two digits and grow past 99 without truncation
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	hours := ms / msPerHour
	minutes := (ms / msPerMinute) % 60
	seconds := (ms / msPerSecond) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
