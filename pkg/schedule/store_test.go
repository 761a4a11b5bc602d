package schedule

import (
	"context"
	"errors"
	"testing"
)

// fakeRemote captures saves and can be told to fail either direction.
type fakeRemote struct {
	week     Week
	fetchErr error
	saveErr  error

	saved []Week
}

func (f *fakeRemote) FetchSchedule(ctx context.Context) (Week, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.week, nil
}

func (f *fakeRemote) SaveSchedule(ctx context.Context, w Week) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, w)
	return nil
}

func TestLoadFailsOpen(t *testing.T) {
	s := NewStore(&fakeRemote{fetchErr: errors.New("connection refused")})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load should not surface fetch failures: %v", err)
	}
	w := s.Week()
	if len(w) != DaysPerWeek {
		t.Fatalf("fallback week has %d days", len(w))
	}
	for i, d := range w {
		if !d.Enabled || len(d.Activities) != 0 {
			t.Fatalf("day %d should be enabled and empty after fallback", i)
		}
	}
	if s.Dirty() {
		t.Fatalf("a fresh fallback week is not dirty")
	}
}

func TestLoadNormalizes(t *testing.T) {
	s := NewStore(&fakeRemote{week: Week{{DayOfWeek: 2, Enabled: true}}})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Week()) != DaysPerWeek {
		t.Fatalf("short remote week was not normalized")
	}
}

func TestUpsertActivityAppendsAndReplaces(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek()}
	s := NewStore(remote)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	a := Activity{ID: "act_1", Name: "Math", StartTime: "08:00", EndTime: "08:40"}
	if err := s.UpsertActivity(context.Background(), 0, a); err != nil {
		t.Fatalf("add: %v", err)
	}
	b := Activity{ID: "act_2", Name: "Break", StartTime: "08:40", EndTime: "08:50"}
	if err := s.UpsertActivity(context.Background(), 0, b); err != nil {
		t.Fatalf("add second: %v", err)
	}

	a.Name = "Mathematics"
	if err := s.UpsertActivity(context.Background(), 0, a); err != nil {
		t.Fatalf("edit: %v", err)
	}

	day, _ := s.Day(0)
	if len(day.Activities) != 2 {
		t.Fatalf("edit by id should replace in place, got %d activities", len(day.Activities))
	}
	if day.Activities[0].Name != "Mathematics" {
		t.Fatalf("edit did not keep position: %+v", day.Activities)
	}
	if len(remote.saved) != 3 {
		t.Fatalf("every mutation should persist, got %d saves", len(remote.saved))
	}
}

func TestUpsertRejectsInvalidWithoutPersisting(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek()}
	s := NewStore(remote)
	_ = s.Load(context.Background())

	bad := Activity{ID: "act_1", Name: "", StartTime: "08:00", EndTime: "09:00"}
	err := s.UpsertActivity(context.Background(), 0, bad)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(remote.saved) != 0 {
		t.Fatalf("invalid activity must not persist")
	}
	day, _ := s.Day(0)
	if len(day.Activities) != 0 {
		t.Fatalf("invalid activity must not touch the model")
	}
}

func TestRemoveMissingActivityIsNoOp(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek()}
	s := NewStore(remote)
	_ = s.Load(context.Background())

	if err := s.RemoveActivity(context.Background(), 0, "act_missing"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if len(remote.saved) != 0 {
		t.Fatalf("a no-op remove should not persist")
	}
}

func TestPersistSortsAnnouncements(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek()}
	s := NewStore(remote)
	_ = s.Load(context.Background())

	a := Activity{
		ID: "act_1", Name: "Lesson", StartTime: "08:00", EndTime: "10:00",
		Announcements: []Announcement{
			{Time: "09:30", SoundID: "late.mp3"},
			{Time: "08:15", SoundID: "early.mp3"},
			{Time: "09:00", SoundID: "mid.mp3"},
		},
	}
	if err := s.UpsertActivity(context.Background(), 0, a); err != nil {
		t.Fatalf("add: %v", err)
	}

	day, _ := s.Day(0)
	anns := day.Activities[0].Announcements
	if anns[0].Time != "08:15" || anns[1].Time != "09:00" || anns[2].Time != "09:30" {
		t.Fatalf("announcements not sorted ascending: %+v", anns)
	}
}

func TestPersistFailureKeepsEditAndDirties(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek(), saveErr: errors.New("gateway timeout")}
	s := NewStore(remote)
	_ = s.Load(context.Background())

	a := Activity{ID: "act_1", Name: "Lesson", StartTime: "08:00", EndTime: "09:00"}
	err := s.UpsertActivity(context.Background(), 0, a)
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("expected ErrPersist, got %v", err)
	}
	day, _ := s.Day(0)
	if len(day.Activities) != 1 {
		t.Fatalf("the local edit should survive a failed save")
	}
	if !s.Dirty() {
		t.Fatalf("store should be dirty after a failed save")
	}

	remote.saveErr = nil
	if err := s.SetDayEnabled(context.Background(), 0, false); err != nil {
		t.Fatalf("later save: %v", err)
	}
	if s.Dirty() {
		t.Fatalf("a successful save should clear the dirty flag")
	}
}

func TestCopyPasteDayIsDeep(t *testing.T) {
	remote := &fakeRemote{week: EmptyWeek()}
	s := NewStore(remote)
	_ = s.Load(context.Background())

	a := Activity{
		ID: "act_1", Name: "Lesson", StartTime: "08:00", EndTime: "09:00",
		Announcements: []Announcement{{Time: "08:30", SoundID: "s.mp3"}},
	}
	if err := s.UpsertActivity(context.Background(), 0, a); err != nil {
		t.Fatalf("add: %v", err)
	}

	copied, err := s.CopyDay(0)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if err := s.PasteDay(context.Background(), 3, copied); err != nil {
		t.Fatalf("paste: %v", err)
	}

	// Mutating the source must not leak into the pasted day.
	edited := a
	edited.Announcements = []Announcement{{Time: "08:45", SoundID: "s.mp3"}}
	if err := s.UpsertActivity(context.Background(), 0, edited); err != nil {
		t.Fatalf("edit source: %v", err)
	}
	thu, _ := s.Day(3)
	if thu.Activities[0].Announcements[0].Time != "08:30" {
		t.Fatalf("paste is not a deep copy: %+v", thu.Activities[0].Announcements)
	}
}

func TestDayBounds(t *testing.T) {
	s := NewStore(&fakeRemote{week: EmptyWeek()})
	_ = s.Load(context.Background())

	if _, err := s.Day(7); !errors.Is(err, ErrNoSuchDay) {
		t.Fatalf("expected ErrNoSuchDay, got %v", err)
	}
	s.SelectDay(42)
	if s.Selected() != 0 {
		t.Fatalf("out-of-range select should be ignored")
	}
}
