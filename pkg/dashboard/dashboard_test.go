package dashboard

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/guard"
	"github.com/nikolayco/zilctl/pkg/playback"
	"github.com/nikolayco/zilctl/pkg/schedule"
	"github.com/nikolayco/zilctl/pkg/status"
	"github.com/nikolayco/zilctl/pkg/timeline"
)

func testModel() Model {
	return Model{
		clock:    schedule.Fixed{At: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		guard:    guard.New(),
		interval: time.Second,
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s should produce a quit message", key)
		}
	}
}

func TestStatusMsgUpdatesView(t *testing.T) {
	m := testModel()

	v := status.View{SchedulerRunning: true, ActiveChannel: playback.Bell}
	updated, cmd := m.Update(statusMsg(v))
	if cmd == nil {
		t.Fatalf("a status update should schedule the next poll")
	}
	got := updated.(Model)
	if !got.view.SchedulerRunning || got.view.ActiveChannel != playback.Bell {
		t.Fatalf("view not updated: %+v", got.view)
	}
}

func TestActionDoneSetsAndClearsNotice(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(actionDoneMsg{err: errors.New("appliance unreachable")})
	got := updated.(Model)
	if !strings.Contains(got.notice, "appliance unreachable") {
		t.Fatalf("failed action should surface a notice, got %q", got.notice)
	}

	updated, _ = got.Update(actionDoneMsg{})
	got = updated.(Model)
	if got.notice != "" {
		t.Fatalf("a succeeding action should clear the notice, got %q", got.notice)
	}
}

func TestViewRendersStatusAndTimeline(t *testing.T) {
	m := testModel()
	m.view = status.View{
		SchedulerRunning: true,
		ActiveChannel:    playback.Music,
		Holiday:          true,
		HolidayName:      "Republic Day",
		NextEvent:        &client.NextEvent{Time: "09:30", Name: "Break", Type: "start"},
	}
	m.events = []timeline.Event{
		{Time: "08:00", Name: "First Lesson", Type: timeline.Start, Number: 1},
		{Time: "09:30", Name: "Break", Type: timeline.Start, Number: 2},
	}

	out := m.View()
	for _, want := range []string{
		"running",
		"break music playing",
		"Republic Day",
		"Break",
		"00:30:00", // countdown from 09:00 to 09:30
		"First Lesson",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestFirstRenderShowsLiveData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/status":
			_, _ = io.WriteString(w, `{
				"scheduler": {"running": true, "next_event": {"time": "09:30", "name": "Break", "type": "start"}},
				"audio": {"bell": {"playing": false}, "announcement": {"playing": false}, "music": {"playing": false}},
				"media_player": {"playing": false, "paused": false, "position": 0},
				"holidays": {"is_holiday": false}
			}`)
		case "/api/schedule/timeline":
			_, _ = io.WriteString(w, `[
				{"time": "08:00", "name": "First Lesson", "type": "start"},
				{"time": "09:30", "name": "Break", "type": "start"}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	m := New(context.Background(), client.New(srv.URL, time.Second), nil, time.Second)
	m.clock = schedule.Fixed{At: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

	// The startup fetches run immediately, not one tick interval out.
	sm, ok := m.pollNow()().(statusMsg)
	if !ok {
		t.Fatalf("expected an immediate status message")
	}
	tm, ok := m.fetchTimelineNow()().(timelineMsg)
	if !ok {
		t.Fatalf("expected an immediate timeline message")
	}

	updated, _ := m.Update(sm)
	updated, _ = updated.(Model).Update(tm)
	out := updated.(Model).View()

	if strings.Contains(out, "no events today") {
		t.Fatalf("first render should already show the timeline:\n%s", out)
	}
	if strings.Contains(out, "suspended") {
		t.Fatalf("first render should already show the scheduler state:\n%s", out)
	}
	for _, want := range []string{"running", "First Lesson", "Break"} {
		if !strings.Contains(out, want) {
			t.Fatalf("first render missing %q:\n%s", want, out)
		}
	}
}

func TestViewWithoutEvents(t *testing.T) {
	m := testModel()
	out := m.View()
	if !strings.Contains(out, "no events today") {
		t.Fatalf("empty timeline should render a placeholder:\n%s", out)
	}
	if !strings.Contains(out, "suspended") {
		t.Fatalf("a zero view means the scheduler is not known to run:\n%s", out)
	}
}
