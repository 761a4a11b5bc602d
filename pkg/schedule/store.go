package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Remote is the persistence contract the store round-trips through. There is
// no partial-update endpoint; every save ships the whole week.
type Remote interface {
	FetchSchedule(ctx context.Context) (Week, error)
	SaveSchedule(ctx context.Context, w Week) error
}

// Store owns the in-memory week and is its only writer. Mutations apply to
// the model synchronously before the save is issued, so local reads always
// see the latest edit even when the appliance is behind or unreachable; the
// Dirty flag tracks that divergence until a save succeeds.
type Store struct {
	remote Remote

	week     Week
	selected int
	dirty    bool
}

func NewStore(remote Remote) *Store {
	return &Store{
		remote: remote,
		week:   EmptyWeek(),
	}
}

// Load fetches the week from the appliance. On failure it falls back to an
// empty all-enabled week rather than erroring out (fail-open; the backend
// failure is logged, not surfaced as a hard stop).
func (s *Store) Load(ctx context.Context) error {
	w, err := s.remote.FetchSchedule(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("schedule load failed, starting from an empty week")
		s.week = EmptyWeek()
		s.dirty = false
		return nil
	}
	s.week = Normalize(w)
	s.dirty = false
	return nil
}

// Week returns the current in-memory week.
func (s *Store) Week() Week { return s.week }

// SeedWeek replaces the in-memory week with a normalized copy of w without
// touching the remote. Callers use it to start from a cached week when the
// appliance cannot be fetched.
func (s *Store) SeedWeek(w Week) {
	s.week = Normalize(w)
	s.dirty = false
}

// Day returns one day of the week.
func (s *Store) Day(i int) (Day, error) {
	if i < 0 || i >= DaysPerWeek {
		return Day{}, ErrNoSuchDay
	}
	return s.week[i], nil
}

// SelectDay moves the active day pointer. Out-of-range indices are ignored.
func (s *Store) SelectDay(i int) {
	if i < 0 || i >= DaysPerWeek {
		return
	}
	s.selected = i
}

// Selected returns the active day index.
func (s *Store) Selected() int { return s.selected }

// Dirty reports whether a local mutation has not yet reached the appliance.
func (s *Store) Dirty() bool { return s.dirty }

// UpsertActivity replaces the activity with the same id in place, or appends
// when the id is new. Invalid activities are rejected without touching the
// model.
func (s *Store) UpsertActivity(ctx context.Context, dayIndex int, a Activity) error {
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return ErrNoSuchDay
	}
	if err := a.Validate(); err != nil {
		return err
	}
	day := &s.week[dayIndex]
	replaced := false
	for i := range day.Activities {
		if day.Activities[i].ID == a.ID {
			day.Activities[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		day.Activities = append(day.Activities, a)
	}
	return s.persist(ctx)
}

// RemoveActivity removes by id. A missing id is a no-op (nothing persists).
func (s *Store) RemoveActivity(ctx context.Context, dayIndex int, id string) error {
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return ErrNoSuchDay
	}
	day := &s.week[dayIndex]
	kept := day.Activities[:0]
	removed := false
	for _, a := range day.Activities {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil
	}
	day.Activities = kept
	return s.persist(ctx)
}

// SetDayEnabled toggles whether a day's activities fire.
func (s *Store) SetDayEnabled(ctx context.Context, dayIndex int, enabled bool) error {
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return ErrNoSuchDay
	}
	s.week[dayIndex].Enabled = enabled
	return s.persist(ctx)
}

// CopyDay returns a deep clone of a day's activities. The clone shares no
// mutable state with the source, so later edits to either side are
// independent.
func (s *Store) CopyDay(i int) ([]Activity, error) {
	if i < 0 || i >= DaysPerWeek {
		return nil, ErrNoSuchDay
	}
	return CloneActivities(s.week[i].Activities), nil
}

// PasteDay replaces a day's activities entirely with a clone of the given
// list.
func (s *Store) PasteDay(ctx context.Context, dayIndex int, acts []Activity) error {
	if dayIndex < 0 || dayIndex >= DaysPerWeek {
		return ErrNoSuchDay
	}
	s.week[dayIndex].Activities = CloneActivities(acts)
	return s.persist(ctx)
}

// persist ships the whole week to the appliance. Announcements are sorted
// ascending by time first, so the stored form always meets that invariant.
// On failure the local model keeps the edit and the store stays dirty until
// a later save succeeds.
func (s *Store) persist(ctx context.Context) error {
	for d := range s.week {
		for a := range s.week[d].Activities {
			anns := s.week[d].Activities[a].Announcements
			sort.SliceStable(anns, func(i, j int) bool {
				return anns[i].Time < anns[j].Time
			})
		}
	}
	s.dirty = true
	if err := s.remote.SaveSchedule(ctx, s.week); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	s.dirty = false
	return nil
}
