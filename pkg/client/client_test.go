package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

func TestStatusDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/status", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"version": "2.1.0",
			"scheduler": {"running": true, "next_event": {"time": "08:40", "name": "Break", "type": "start"}},
			"audio": {
				"bell": {"playing": false},
				"announcement": {"playing": true},
				"music": {"playing": false}
			},
			"media_player": {"playing": false, "paused": false, "position": 0},
			"holidays": {"is_holiday": true, "holiday_name": "Republic Day"},
			"unknown_future_field": 42
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	s, err := c.Status(context.Background())
	require.NoError(t, err)

	assert.True(t, s.Scheduler.Running)
	require.NotNil(t, s.Scheduler.NextEvent)
	assert.Equal(t, "08:40", s.Scheduler.NextEvent.Time)
	assert.True(t, s.Audio.Announcement.Playing)
	assert.False(t, s.Audio.Bell.Playing)
	assert.True(t, s.Holidays.IsHoliday)
	assert.Equal(t, "Republic Day", s.Holidays.HolidayName)
}

func TestScheduleRoundTrip(t *testing.T) {
	var savedBody []byte
	week := schedule.EmptyWeek()
	week[0].Activities = []schedule.Activity{{
		ID: "act_1", Name: "First Lesson", StartTime: "08:00", EndTime: "08:40",
		Announcements: []schedule.Announcement{{Time: "08:35", SoundID: "wrapup.mp3"}},
	}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/schedule", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			require.NoError(t, json.NewEncoder(w).Encode(week))
		case http.MethodPost:
			var err error
			savedBody, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	got, err := c.FetchSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, got, schedule.DaysPerWeek)
	assert.Equal(t, week[0].Activities, got[0].Activities)

	require.NoError(t, c.SaveSchedule(context.Background(), got))

	// The save wraps the week in a schedule envelope and carries the model
	// through unchanged.
	var envelope struct {
		Schedule schedule.Week `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(savedBody, &envelope))
	assert.Equal(t, week[0].Activities, envelope.Schedule[0].Activities)
}

func TestNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Status(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPlayBellQuery(t *testing.T) {
	var gotPath, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFilename = r.URL.Query().Get("filename")
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.PlayBell(context.Background(), "default.mp3"))
	assert.Equal(t, "/api/bell/play", gotPath)
	assert.Equal(t, "default.mp3", gotFilename)
}

func TestSpeakRequestAndResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tts", r.URL.Path)
		var req struct {
			Text     string `json:"text"`
			Language string `json:"language"`
			Gender   string `json:"gender"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "students to the hall", req.Text)
		assert.Equal(t, "en", req.Language)
		_, _ = io.WriteString(w, `{"success": true}`)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Speak(context.Background(), "students to the hall", "en", "female")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestMediaPlayFileQuery(t *testing.T) {
	var q string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/media/play/file", r.URL.Path)
		q = r.URL.RawQuery
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.MediaPlayFile(context.Background(), "mix.mp3", true))
	assert.Contains(t, q, "filename=mix.mp3")
	assert.Contains(t, q, "shuffle=true")
}

func TestSoundAndMediaListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sounds/bells":
			_, _ = io.WriteString(w, `[
				{"name": "classic.mp3", "path": "sounds/bells/classic.mp3", "size": 48213},
				{"name": "chime.mp3", "path": "sounds/bells/chime.mp3", "size": 1048576}
			]`)
		case "/api/media/files":
			_, _ = io.WriteString(w, `[{"name": "song.mp3", "path": "media/song.mp3", "size": 3211264}]`)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	bells, err := c.Sounds(context.Background(), "bells")
	require.NoError(t, err)
	require.Len(t, bells, 2)
	assert.Equal(t, "classic.mp3", bells[0].Name)
	assert.Equal(t, int64(1048576), bells[1].Size)

	files, err := c.MediaFiles(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "song.mp3", files[0].Name)
	assert.Equal(t, "media/song.mp3", files[0].Path)
}

func TestConfigStationsPreservesUnknownSections(t *testing.T) {
	cfg := Config{
		"company": json.RawMessage(`{"name":"Example High"}`),
		"radio":   json.RawMessage(`{"enabled":true,"stations":[{"name":"Old","url":"http://old"}]}`),
	}

	stations, err := cfg.Stations()
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Old", stations[0].Name)

	require.NoError(t, cfg.SetStations([]Station{
		{Name: "Kral FM", URL: "http://stream.example.com/live"},
	}))

	// Untouched sections survive, and so do sibling keys of the radio
	// section.
	assert.JSONEq(t, `{"name":"Example High"}`, string(cfg["company"]))
	var radio map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(cfg["radio"], &radio))
	assert.JSONEq(t, `true`, string(radio["enabled"]))
	assert.JSONEq(t, `[{"name":"Kral FM","url":"http://stream.example.com/live"}]`, string(radio["stations"]))
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	c := New("http://bellbox.local:7777/", 0)
	assert.Equal(t, "http://bellbox.local:7777", c.BaseURL())
}
