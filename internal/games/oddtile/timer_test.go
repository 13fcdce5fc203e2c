package oddtile

import (
	"testing"
	"time"
)

func TestTimerDeplete(t *testing.T) {
	tm := NewTimer(1, 30)

	if tm.String() != "01:30" {
		t.Fatalf("String() = %q, want 01:30", tm.String())
	}

	tm.DepleteOneSecond()
	if tm.Minute() != 1 || tm.Second() != 29 {
		t.Errorf("after 1 tick = %d:%d, want 1:29", tm.Minute(), tm.Second())
	}

	for range 29 {
		tm.DepleteOneSecond()
	}
	if tm.Minute() != 1 || tm.Second() != 0 {
		t.Errorf("after 30 ticks = %d:%d, want 1:0", tm.Minute(), tm.Second())
	}

	// Borrow from minutes.
	tm.DepleteOneSecond()
	if tm.Minute() != 0 || tm.Second() != 59 {
		t.Errorf("after borrow = %d:%d, want 0:59", tm.Minute(), tm.Second())
	}
}

func TestTimerExpiresAfterExactSeconds(t *testing.T) {
	for _, secs := range []int{30, 60, 90} {
		tm := TimerFor(time.Duration(secs) * time.Second)
		for i := range secs {
			if tm.IsExpired() {
				t.Fatalf("%ds timer expired after %d ticks", secs, i)
			}
			tm.DepleteOneSecond()
		}
		if !tm.IsExpired() {
			t.Errorf("%ds timer not expired after %d ticks (%s)", secs, secs, tm)
		}
	}
}

func TestTimerNeverNegative(t *testing.T) {
	tm := NewTimer(0, 2)
	for range 10 {
		tm.DepleteOneSecond()
		if tm.Minute() < 0 || tm.Second() < 0 || tm.Second() > 59 {
			t.Fatalf("timer out of range: %d:%d", tm.Minute(), tm.Second())
		}
	}
	if tm.String() != "00:00" {
		t.Errorf("String() = %q, want 00:00", tm.String())
	}
}

func TestTimerReset(t *testing.T) {
	tm := NewTimer(0, 45)
	for range 20 {
		tm.DepleteOneSecond()
	}
	tm.Reset()
	if tm.Remaining() != 45*time.Second {
		t.Errorf("Remaining() after Reset = %v, want 45s", tm.Remaining())
	}
	if tm.Minute() != 0 || tm.Second() != 45 {
		t.Errorf("after Reset = %d:%d, want 0:45", tm.Minute(), tm.Second())
	}
}

func TestNewTimerNormalizes(t *testing.T) {
	tm := NewTimer(0, 90)
	if tm.Minute() != 1 || tm.Second() != 30 {
		t.Errorf("NewTimer(0, 90) = %d:%d, want 1:30", tm.Minute(), tm.Second())
	}
	tm = NewTimer(-1, -5)
	if !tm.IsExpired() {
		t.Errorf("negative timer should start expired, got %s", tm)
	}
}
