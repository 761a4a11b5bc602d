package schedule

import (
	"testing"
	"time"
)

func TestEmptyWeekShape(t *testing.T) {
	w := EmptyWeek()
	if len(w) != DaysPerWeek {
		t.Fatalf("expected %d days, got %d", DaysPerWeek, len(w))
	}
	for i, d := range w {
		if d.DayOfWeek != i {
			t.Fatalf("day %d has dayOfWeek %d", i, d.DayOfWeek)
		}
		if !d.Enabled {
			t.Fatalf("day %d should default to enabled", i)
		}
		if d.Activities == nil {
			t.Fatalf("day %d has a nil activity list", i)
		}
	}
	if w[0].DayName != "Monday" || w[6].DayName != "Sunday" {
		t.Fatalf("week is not Monday-first: %s..%s", w[0].DayName, w[6].DayName)
	}
}

func TestNormalizeRepairsShortAndShuffledWeeks(t *testing.T) {
	w := Normalize(Week{
		{DayOfWeek: 4, Enabled: false, Activities: []Activity{{ID: "a", Name: "x", StartTime: "08:00", EndTime: "09:00"}}},
		{DayOfWeek: 0, Enabled: true},
		{DayOfWeek: 9, Enabled: true}, // out of range, dropped
	})
	if len(w) != DaysPerWeek {
		t.Fatalf("expected %d days, got %d", DaysPerWeek, len(w))
	}
	if w[4].Enabled {
		t.Fatalf("Friday should keep its disabled flag")
	}
	if len(w[4].Activities) != 1 {
		t.Fatalf("Friday lost its activities")
	}
	if w[0].Activities == nil {
		t.Fatalf("normalize should never leave nil activity lists")
	}
	for i, d := range w {
		if d.DayOfWeek != i {
			t.Fatalf("day %d out of order: %d", i, d.DayOfWeek)
		}
		if d.DayName == "" {
			t.Fatalf("day %d missing a name", i)
		}
	}
}

func TestActivityCloneIsIndependent(t *testing.T) {
	a := Activity{
		ID:        "act_1",
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "09:00",
		Announcements: []Announcement{
			{Time: "08:30", SoundID: "half.mp3"},
		},
	}
	b := a.Clone()
	b.Announcements[0].Time = "08:45"
	if a.Announcements[0].Time != "08:30" {
		t.Fatalf("clone shares announcement storage with the original")
	}
}

func TestActivityValidate(t *testing.T) {
	good := Activity{Name: "Lesson", StartTime: "08:00", EndTime: "08:40"}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid activity rejected: %v", err)
	}

	cases := []struct {
		name string
		a    Activity
	}{
		{"missing name", Activity{StartTime: "08:00", EndTime: "09:00"}},
		{"bad start", Activity{Name: "x", StartTime: "8:00", EndTime: "09:00"}},
		{"bad end", Activity{Name: "x", StartTime: "08:00", EndTime: "24:00"}},
		{"end before start", Activity{Name: "x", StartTime: "10:00", EndTime: "09:00"}},
		{"bad announcement", Activity{Name: "x", StartTime: "08:00", EndTime: "09:00",
			Announcements: []Announcement{{Time: "8:3", SoundID: "s"}}}},
	}
	for _, tc := range cases {
		if err := tc.a.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}

func TestValidateHHMM(t *testing.T) {
	for _, s := range []string{"00:00", "08:05", "23:59"} {
		if err := ValidateHHMM(s); err != nil {
			t.Fatalf("%q should be valid: %v", s, err)
		}
	}
	for _, s := range []string{"", "8:00", "0800", "24:00", "12:60", "ab:cd", "12-30"} {
		if err := ValidateHHMM(s); err == nil {
			t.Fatalf("%q should be invalid", s)
		}
	}
}

func TestNewActivityID(t *testing.T) {
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if got := NewActivityID(at); got != "act_1741593600000" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestTodayIndexMondayFirst(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-16 a Sunday.
	mon := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := TodayIndex(mon); got != 0 {
		t.Fatalf("Monday should map to 0, got %d", got)
	}
	sun := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	if got := TodayIndex(sun); got != 6 {
		t.Fatalf("Sunday should map to 6, got %d", got)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
	c := Fixed{At: at}
	if got := c.NowHHMM(); got != "09:05" {
		t.Fatalf("expected 09:05, got %q", got)
	}
}
