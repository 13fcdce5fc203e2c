package oddtile

import (
	"fmt"
	"time"
)

// Timer is a minute/second countdown depleted one second per external tick.
type Timer struct {
	startMinute, startSecond int
	minute, second           int
}

// NewTimer creates a timer starting at minutes:seconds.
// Seconds above 59 carry into minutes; negative values are treated as zero.
func NewTimer(minutes, seconds int) *Timer {
	minutes = max(minutes, 0)
	seconds = max(seconds, 0)
	minutes += seconds / 60
	seconds %= 60

	return &Timer{
		startMinute: minutes,
		startSecond: seconds,
		minute:      minutes,
		second:      seconds,
	}
}

// TimerFor creates a timer for a duration, truncated to whole seconds.
func TimerFor(d time.Duration) *Timer {
	secs := int(d / time.Second)
	return NewTimer(secs/60, secs%60)
}

// DepleteOneSecond counts down one second, borrowing from minutes.
// At 0:00 it does nothing.
func (t *Timer) DepleteOneSecond() {
	switch {
	case t.second > 0:
		t.second--
	case t.minute > 0:
		t.minute--
		t.second = 59
	}
}

// IsExpired reports whether the countdown reached 0:00.
func (t *Timer) IsExpired() bool {
	return t.minute == 0 && t.second == 0
}

// Reset restores the values the timer was created with.
func (t *Timer) Reset() {
	t.minute = t.startMinute
	t.second = t.startSecond
}

// Minute returns the current minute field.
func (t *Timer) Minute() int {
	return t.minute
}

// Second returns the current second field.
func (t *Timer) Second() int {
	return t.second
}

// Remaining returns the time left.
func (t *Timer) Remaining() time.Duration {
	return time.Duration(t.minute*60+t.second) * time.Second
}

// String formats the countdown as MM:SS.
func (t *Timer) String() string {
	return fmt.Sprintf("%02d:%02d", t.minute, t.second)
}
