// Package day implements the schedule editing verbs. Every runner loads the
// week, applies one mutation through the store, and reports a warning when
// the local edit could not be persisted to the appliance.
package day

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/clipboard"
	"github.com/nikolayco/zilctl/pkg/printers"
	"github.com/nikolayco/zilctl/pkg/schedule"
)

// Show prints the program for one day or the whole week.
type Show struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Day       int // -1 means all days
	Cached    bool
}

func (s *Show) Do(ctx context.Context) error {
	week, err := loadWeek(ctx, s.Client, s.Clipboard, s.Cached)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	if s.Day < 0 {
		pp.Week(week)
		return nil
	}
	if s.Day >= schedule.DaysPerWeek {
		return schedule.ErrNoSuchDay
	}
	pp.DayTitle(week[s.Day])
	pp.Day(week[s.Day])
	return nil
}

// Enable toggles whether a day's activities fire.
type Enable struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Day       int
	Enabled   bool
}

func (e *Enable) Do(ctx context.Context) error {
	store, err := loadStore(ctx, e.Client, e.Clipboard)
	if err != nil {
		return err
	}
	if err := store.SetDayEnabled(ctx, e.Day, e.Enabled); err != nil {
		return warnDirty(err)
	}
	state := "enabled"
	if !e.Enabled {
		state = "disabled"
	}
	fmt.Printf("%s %s\n", schedule.DayNames[e.Day], state)
	return nil
}

// Copy stores a deep clone of a day's activities in the local clipboard so
// a later paste, even from another invocation, starts from an independent
// copy.
type Copy struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Day       int
}

func (c *Copy) Do(ctx context.Context) error {
	store, err := loadStore(ctx, c.Client, c.Clipboard)
	if err != nil {
		return err
	}
	acts, err := store.CopyDay(c.Day)
	if err != nil {
		return err
	}
	if err := c.Clipboard.PutDay(acts); err != nil {
		return err
	}
	fmt.Printf("copied %d activities from %s\n", len(acts), schedule.DayNames[c.Day])
	return nil
}

// Paste replaces a day's activities with the clipboard's copy.
type Paste struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Day       int
}

func (p *Paste) Do(ctx context.Context) error {
	acts, err := p.Clipboard.Day()
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			return errors.New("nothing to paste, copy a day first")
		}
		return err
	}
	store, err := loadStore(ctx, p.Client, p.Clipboard)
	if err != nil {
		return err
	}
	if err := store.PasteDay(ctx, p.Day, acts); err != nil {
		return warnDirty(err)
	}
	fmt.Printf("pasted %d activities into %s\n", len(acts), schedule.DayNames[p.Day])
	return nil
}

// Upsert adds a new activity or, when ID is set and found, edits it in
// place.
type Upsert struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Clock     schedule.Clock
	Day       int
	Activity  schedule.Activity
}

func (u *Upsert) Do(ctx context.Context) error {
	store, err := loadStore(ctx, u.Client, u.Clipboard)
	if err != nil {
		return err
	}
	if u.Activity.ID == "" {
		clock := u.Clock
		if clock == nil {
			clock = schedule.System{}
		}
		u.Activity.ID = schedule.NewActivityID(clock.Now())
	}
	if err := store.UpsertActivity(ctx, u.Day, u.Activity); err != nil {
		return warnDirty(err)
	}
	fmt.Printf("saved activity %s (%s - %s) on %s\n",
		u.Activity.Name, u.Activity.StartTime, u.Activity.EndTime, schedule.DayNames[u.Day])
	return nil
}

// Remove deletes an activity by id.
type Remove struct {
	Client    *client.Client
	Clipboard *clipboard.Store
	Day       int
	ID        string
}

func (r *Remove) Do(ctx context.Context) error {
	store, err := loadStore(ctx, r.Client, r.Clipboard)
	if err != nil {
		return err
	}
	if err := store.RemoveActivity(ctx, r.Day, r.ID); err != nil {
		return warnDirty(err)
	}
	fmt.Printf("removed activity %s\n", r.ID)
	return nil
}

// loadStore seeds a store from loadWeek's fetch-then-cache chain, so a
// transient fetch failure mutates the last cached week instead of an empty
// one. Saving an empty fallback week would wipe the appliance's program.
func loadStore(ctx context.Context, c *client.Client, clip *clipboard.Store) (*schedule.Store, error) {
	week, err := loadWeek(ctx, c, clip, false)
	if err != nil {
		return nil, err
	}
	store := schedule.NewStore(c)
	store.SeedWeek(week)
	return store, nil
}

// loadWeek fetches the week from the appliance, caching it locally on
// success. With cached set, or when the appliance is unreachable, the last
// cached week is used instead; only when there is no cache either does the
// fail-open empty week appear.
func loadWeek(ctx context.Context, c *client.Client, clip *clipboard.Store, cached bool) (schedule.Week, error) {
	if !cached {
		if w, err := c.FetchSchedule(ctx); err == nil {
			w = schedule.Normalize(w)
			if clip != nil {
				_ = clip.PutWeek(w)
			}
			return w, nil
		}
	}
	if clip != nil {
		if w, err := clip.Week(); err == nil {
			return w, nil
		}
	}
	return schedule.EmptyWeek(), nil
}

// warnDirty downgrades a persist failure to a visible warning: the edit is
// applied locally, the appliance just has not accepted it yet. Anything
// else (validation, bad day index) stays a hard error.
func warnDirty(err error) error {
	if errors.Is(err, schedule.ErrPersist) {
		y := color.New(color.FgHiYellow)
		_, _ = y.Fprintln(color.Error, "warning: "+err.Error())
		return nil
	}
	return err
}
