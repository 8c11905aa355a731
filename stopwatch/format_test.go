package stopwatch

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"sub-second floors", 999 * time.Millisecond, "00:00:00"},
		{"seconds", 59000 * time.Millisecond, "00:00:59"},
		{"minute rollover", 60 * time.Second, "00:01:00"},
		{"hour minute second", 3661000 * time.Millisecond, "01:01:01"},
		{"end of day", 86399999 * time.Millisecond, "23:59:59"},
		{"two digit hours", 99*time.Hour + 59*time.Minute + 59*time.Second, "99:59:59"},
		{"three digit hours", 3600000 * 100 * time.Millisecond, "100:00:00"},
		{"negative clamps", -5 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatDecomposition(t *testing.T) {
	// Every field must match floor division and modulo on the millisecond count
	for _, ms := range []int64{1, 1001, 59999, 61001, 3599999, 7322500, 45296789} {
		d := time.Duration(ms) * time.Millisecond
		hours := ms / 3600000
		minutes := (ms / 60000) % 60
		seconds := (ms / 1000) % 60

		got := Format(d)
		want := pad(hours) + ":" + pad(minutes) + ":" + pad(seconds)
		if got != want {
			t.Errorf("Format(%dms) = %q, want %q", ms, got, want)
		}
	}
}

func pad(n int64) string {
	digits := []byte{byte('0' + n/10%10), byte('0' + n%10)}
	return string(digits)
}
