// Package show implements the read-only views: status, timeline, and
// agenda. Views prefer the appliance's own computation and fall back to a
// local projection of the cached week when the appliance is unreachable.
package show

import (
	"context"
	"fmt"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/clipboard"
	"github.com/nikolayco/zilctl/pkg/printers"
	"github.com/nikolayco/zilctl/pkg/schedule"
	"github.com/nikolayco/zilctl/pkg/status"
	"github.com/nikolayco/zilctl/pkg/timeline"
)

// Status prints the normalized appliance status with a next-event
// countdown.
type Status struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Clock     schedule.Clock
}

func (s *Status) Do(ctx context.Context) error {
	raw, err := s.Client.Status(ctx)
	if err != nil {
		return fmt.Errorf("appliance unreachable: %w", err)
	}
	v := status.Normalize(raw, s.Clock.Now(), s.fallbackNext)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("appliance status")
	pp.Status(v)
	if v.NextEvent != nil {
		h, m, sec := timeline.Countdown(v.NextEvent.Time, s.Clock.Now())
		fmt.Printf("starts in %02d:%02d:%02d\n", h, m, sec)
	}
	return nil
}

// fallbackNext projects today's next event from the cached week when the
// appliance's status carries none.
func (s *Status) fallbackNext() *client.NextEvent {
	if s.Clipboard == nil {
		return nil
	}
	week, err := s.Clipboard.Week()
	if err != nil {
		return nil
	}
	day := week[schedule.TodayIndex(s.Clock.Now())]
	next, ok := timeline.Next(timeline.Events(day), s.Clock.NowHHMM())
	if !ok {
		return nil
	}
	return &client.NextEvent{Time: next.Time, Name: next.Name, Type: next.Type.String()}
}

// Timeline prints today's flattened event list.
type Timeline struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Clock     schedule.Clock
	Cached    bool
}

func (t *Timeline) Do(ctx context.Context) error {
	events, fromCache := t.load(ctx)
	pp := printers.PrettyPrint{}
	fmt.Println("")
	title := "today's timeline"
	if fromCache {
		title += " (cached)"
	}
	pp.Title(title)
	pp.Timeline(events, t.Clock.NowHHMM())
	return nil
}

func (t *Timeline) load(ctx context.Context) ([]timeline.Event, bool) {
	if !t.Cached {
		if entries, err := t.Client.Timeline(ctx); err == nil {
			events := make([]timeline.Event, 0, len(entries))
			for _, e := range entries {
				events = append(events, timeline.Event{
					Time: e.Time,
					Name: e.Name,
					Type: timeline.ParseEventType(e.Type),
				})
			}
			timeline.Renumber(events)
			return events, false
		}
	}
	return timeline.Events(t.today()), true
}

func (t *Timeline) today() schedule.Day {
	if t.Clipboard != nil {
		if week, err := t.Clipboard.Week(); err == nil {
			return week[schedule.TodayIndex(t.Clock.Now())]
		}
	}
	return schedule.EmptyWeek()[schedule.TodayIndex(t.Clock.Now())]
}

// Agenda prints today's per-activity blocks with durations.
type Agenda struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Clock     schedule.Clock
	Cached    bool
}

func (a *Agenda) Do(ctx context.Context) error {
	day, fromCache := a.load(ctx)
	pp := printers.PrettyPrint{}
	fmt.Println("")
	title := "today's agenda"
	if fromCache {
		title += " (cached)"
	}
	pp.Title(title)
	pp.Agenda(timeline.Agenda(day), a.Clock.NowHHMM())
	return nil
}

// Sounds lists the stored sound files for the given categories.
type Sounds struct {
	Client     *client.Client
	Categories []string
}

func (s *Sounds) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	for _, category := range s.Categories {
		files, err := s.Client.Sounds(ctx, category)
		if err != nil {
			return err
		}
		fmt.Println("")
		pp.Title(category)
		pp.Files(files)
	}
	return nil
}

// MediaFiles lists the manual player's local files.
type MediaFiles struct {
	Client *client.Client
}

func (m *MediaFiles) Do(ctx context.Context) error {
	files, err := m.Client.MediaFiles(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("media files")
	pp.Files(files)
	return nil
}

func (a *Agenda) load(ctx context.Context) (schedule.Day, bool) {
	if !a.Cached {
		if day, err := a.Client.Today(ctx); err == nil {
			return day, false
		}
	}
	if a.Clipboard != nil {
		if week, err := a.Clipboard.Week(); err == nil {
			return week[schedule.TodayIndex(a.Clock.Now())], true
		}
	}
	return schedule.EmptyWeek()[schedule.TodayIndex(a.Clock.Now())], true
}
