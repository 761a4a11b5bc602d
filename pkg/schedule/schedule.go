// Package schedule holds the weekly program model for the appliance: seven
// days of named activities, each with optional start/end sounds, break music,
// and timed announcements. Times are zero-padded "HH:MM" strings so that
// lexicographic order matches chronological order.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DaysPerWeek is the fixed length of a Week. Index 0 is Monday, 6 is Sunday.
const DaysPerWeek = 7

var DayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var (
	ErrValidation = errors.New("schedule: invalid activity")
	ErrNoSuchDay  = errors.New("schedule: no such day")

	// ErrPersist marks a mutation that was applied to the in-memory week
	// but did not reach the appliance. The store stays dirty until a later
	// save succeeds.
	ErrPersist = errors.New("schedule: saved locally but not on the appliance")
)

// Announcement is a timed announcement inside an activity.
type Announcement struct {
	Time    string `json:"time"`
	SoundID string `json:"soundId"`
}

// Activity is a named time block in a day's program.
type Activity struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	StartTime           string         `json:"startTime"`
	EndTime             string         `json:"endTime"`
	StartSoundID        string         `json:"startSoundId,omitempty"`
	EndSoundID          string         `json:"endSoundId,omitempty"`
	StartAnnouncementID string         `json:"startAnnouncementId,omitempty"`
	EndAnnouncementID   string         `json:"endAnnouncementId,omitempty"`
	PlayMusic           bool           `json:"playMusic"`
	Announcements       []Announcement `json:"announcements"`
}

// Day is one day of the weekly program. Disabled days keep their activities
// but the appliance will not fire them.
type Day struct {
	DayOfWeek  int        `json:"dayOfWeek"`
	DayName    string     `json:"dayName,omitempty"`
	Enabled    bool       `json:"enabled"`
	Activities []Activity `json:"activities"`
}

// Week is the full weekly program. It always has exactly seven days and is
// never reordered.
type Week []Day

// NewActivityID returns a fresh opaque activity id. Ids are assigned once at
// creation and stay stable across edits.
func NewActivityID(now time.Time) string {
	return fmt.Sprintf("act_%d", now.UnixMilli())
}

// EmptyWeek returns a week with no activities and every day enabled. This is
// the fail-open default the store falls back to when the appliance cannot be
// reached: the user sees an editable blank program instead of an error page,
// at the cost of hiding the backend failure.
func EmptyWeek() Week {
	w := make(Week, DaysPerWeek)
	for i := range w {
		w[i] = Day{
			DayOfWeek:  i,
			DayName:    DayNames[i],
			Enabled:    true,
			Activities: []Activity{},
		}
	}
	return w
}

// Normalize forces a week back to exactly seven days in Monday-first order,
// repairing anything a remote load may have returned short or shuffled.
func Normalize(w Week) Week {
	out := EmptyWeek()
	for _, d := range w {
		if d.DayOfWeek < 0 || d.DayOfWeek >= DaysPerWeek {
			continue
		}
		if d.Activities == nil {
			d.Activities = []Activity{}
		}
		if d.DayName == "" {
			d.DayName = DayNames[d.DayOfWeek]
		}
		out[d.DayOfWeek] = d
	}
	return out
}

// Clone returns a structurally independent copy of the activity. Edits to
// the copy never reach the original.
func (a Activity) Clone() Activity {
	out := a
	out.Announcements = make([]Announcement, len(a.Announcements))
	copy(out.Announcements, a.Announcements)
	return out
}

// CloneActivities deep-copies a day's activity list.
func CloneActivities(acts []Activity) []Activity {
	out := make([]Activity, 0, len(acts))
	for _, a := range acts {
		out = append(out, a.Clone())
	}
	return out
}

// Validate rejects activities the appliance would misfire on: missing name
// or times, malformed HH:MM, or an end before the start. Cross-midnight
// activities are not supported.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := ValidateHHMM(a.StartTime); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrValidation, err)
	}
	if err := ValidateHHMM(a.EndTime); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrValidation, err)
	}
	if a.EndTime < a.StartTime {
		return fmt.Errorf("%w: end %s is before start %s", ErrValidation, a.EndTime, a.StartTime)
	}
	for _, ann := range a.Announcements {
		if err := ValidateHHMM(ann.Time); err != nil {
			return fmt.Errorf("%w: announcement time: %v", ErrValidation, err)
		}
	}
	return nil
}

// ValidateHHMM checks a zero-padded 24h "HH:MM" string.
func ValidateHHMM(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%q is not HH:MM", s)
	}
	h, m := s[:2], s[3:]
	for _, c := range h + m {
		if c < '0' || c > '9' {
			return fmt.Errorf("%q is not HH:MM", s)
		}
	}
	if s[:2] > "23" || s[3:] > "59" {
		return fmt.Errorf("%q is out of range", s)
	}
	return nil
}
