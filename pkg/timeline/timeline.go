// Package timeline derives read-only views from one day of the weekly
// program: the flat event timeline, the agenda blocks, the next upcoming
// event, and its countdown. Views are rebuilt from scratch on every tick or
// edit, never patched.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

// EventType tags a timeline event.
type EventType int

const (
	Start EventType = iota
	Announce
	End
)

func (t EventType) String() string {
	switch t {
	case Start:
		return "start"
	case Announce:
		return "announcement"
	case End:
		return "end"
	}
	return "unknown"
}

// ParseEventType maps the wire form back to an EventType.
func ParseEventType(s string) EventType {
	switch s {
	case "start":
		return Start
	case "announcement":
		return Announce
	default:
		return End
	}
}

// Event is one row of a day's timeline.
type Event struct {
	Time string
	Name string
	Type EventType

	// Number is the 1-based label number of the event's activity, assigned
	// by first appearance in the sorted timeline.
	Number int
}

// Label is the display label for the event, matching the appliance UI's
// numbering scheme.
func (e Event) Label() string {
	switch e.Type {
	case Start:
		return fmt.Sprintf("%d. activity start", e.Number)
	case Announce:
		return fmt.Sprintf("%d. activity announcement", e.Number)
	default:
		return fmt.Sprintf("%d. activity end", e.Number)
	}
}

// Events flattens a day into an ascending timeline. Per activity the start
// event comes first, then its announcements, then the end event; the sort is
// stable, so events at equal times keep activity-list order and the
// start/announcement/end order within one activity.
func Events(day schedule.Day) []Event {
	events := make([]Event, 0, len(day.Activities)*2)
	for _, a := range day.Activities {
		events = append(events, Event{Time: a.StartTime, Name: a.Name, Type: Start})
		for _, ann := range a.Announcements {
			events = append(events, Event{Time: ann.Time, Name: a.Name, Type: Announce})
		}
		events = append(events, Event{Time: a.EndTime, Name: a.Name, Type: End})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	Renumber(events)
	return events
}

// Renumber assigns 1-based activity numbers by first appearance of each
// distinct activity name in the sorted timeline. Events fetched from the
// appliance arrive unnumbered and need this before display.
func Renumber(events []Event) {
	seen := map[string]int{}
	for i := range events {
		n, ok := seen[events[i].Name]
		if !ok {
			n = len(seen) + 1
			seen[events[i].Name] = n
		}
		events[i].Number = n
	}
}

// Item is one agenda block.
type Item struct {
	StartTime       string
	EndTime         string
	Name            string
	DurationMinutes int
}

// Agenda returns one block per activity with its whole-minute duration.
// Activity validation rejects end-before-start, so durations are never
// negative here.
func Agenda(day schedule.Day) []Item {
	items := make([]Item, 0, len(day.Activities))
	for _, a := range day.Activities {
		items = append(items, Item{
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
			Name:            a.Name,
			DurationMinutes: minutesOf(a.EndTime) - minutesOf(a.StartTime),
		})
	}
	return items
}

// ActiveNow reports whether the block is running at the given time. The
// interval is half-open: a block is no longer active exactly at its end.
func ActiveNow(it Item, nowHHMM string) bool {
	return it.StartTime <= nowHHMM && nowHHMM < it.EndTime
}

// Next returns the first event at or after now. When every event has
// passed there is no next event today; the view does not roll over to
// tomorrow.
func Next(events []Event, nowHHMM string) (Event, bool) {
	for _, e := range events {
		if e.Time >= nowHHMM {
			return e, true
		}
	}
	return Event{}, false
}

// Countdown returns whole hours, minutes, and seconds until the event time.
// An event time at or before now counts down to tomorrow's occurrence.
func Countdown(eventHHMM string, now time.Time) (h, m, s int) {
	target := time.Date(now.Year(), now.Month(), now.Day(),
		minutesOf(eventHHMM)/60, minutesOf(eventHHMM)%60, 0, 0, now.Location())
	if !target.After(now) {
		target = target.Add(24 * time.Hour)
	}
	diff := target.Sub(now).Milliseconds()
	h = int(diff / 3600000)
	m = int(diff % 3600000 / 60000)
	s = int(diff % 60000 / 1000)
	return h, m, s
}

// FormatDuration renders whole minutes as "1h 30m", "2h", or "45m".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

func minutesOf(hhmm string) int {
	if schedule.ValidateHHMM(hhmm) != nil {
		return 0
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h*60 + m
}
