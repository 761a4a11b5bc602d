package schedule

import (
	"fmt"
	"time"
)

// Clock samples wall-clock time for the time-derived views. Inject Fixed in
// tests.
type Clock interface {
	Now() time.Time
	NowHHMM() string
}

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (s System) NowHHMM() string { return HHMM(s.Now()) }

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time { return f.At }

func (f Fixed) NowHHMM() string { return HHMM(f.At) }

// HHMM formats an instant as a zero-padded 24h "HH:MM" string.
func HHMM(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TodayIndex maps an instant to the week's Monday-first day index.
func TodayIndex(t time.Time) int {
	wd := int(t.Weekday()) // Sunday=0
	if wd == 0 {
		return 6
	}
	return wd - 1
}
