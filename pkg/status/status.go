// Package status polls the appliance and republishes a normalized view for
// the rest of the client to read. On transport failure the last known view
// is kept as-is, never reset to "nothing playing", so a flaky link does not
// flicker the UI through empty states.
package status

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/playback"
)

// DefaultInterval matches the appliance UI's poll cadence. It is a tunable,
// not a constant of the design.
const DefaultInterval = 2 * time.Second

// View is the normalized status snapshot.
type View struct {
	SchedulerRunning bool
	ActiveChannel    playback.Channel
	Holiday          bool
	HolidayName      string
	NextEvent        *client.NextEvent
	MediaPaused      bool
	MediaSource      string
	MediaPosition    float64
	UpdatedAt        time.Time
}

// Normalize folds a raw status response into a View. When the appliance
// reports no next event the fallback projection, if any, fills it in.
func Normalize(s client.StatusResponse, at time.Time, fallback func() *client.NextEvent) View {
	v := View{
		SchedulerRunning: s.Scheduler.Running,
		ActiveChannel:    playback.ActiveChannel(s),
		Holiday:          s.Holidays.IsHoliday,
		HolidayName:      s.Holidays.HolidayName,
		NextEvent:        s.Scheduler.NextEvent,
		MediaPaused:      s.MediaPlayer.Paused,
		MediaSource:      s.MediaPlayer.Source,
		MediaPosition:    s.MediaPlayer.Position,
		UpdatedAt:        at,
	}
	if v.NextEvent == nil && fallback != nil {
		v.NextEvent = fallback()
	}
	return v
}

// Poller fetches status on a fixed interval and keeps the latest view.
type Poller struct {
	client   *client.Client
	interval time.Duration
	fallback func() *client.NextEvent

	mu   sync.RWMutex
	view View
}

// NewPoller builds a poller. A nil fallback means no local next-event
// projection is available. Interval <= 0 uses DefaultInterval.
func NewPoller(c *client.Client, interval time.Duration, fallback func() *client.NextEvent) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{client: c, interval: interval, fallback: fallback}
}

// Run polls until ctx is done. The first poll happens immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Poll fetches once and updates the view. Exposed so one-shot commands and
// the dashboard's tick loop can drive polling themselves.
func (p *Poller) Poll(ctx context.Context) { p.poll(ctx) }

func (p *Poller) poll(ctx context.Context) {
	s, err := p.client.Status(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("status poll failed, keeping last known view")
		return
	}
	v := Normalize(s, time.Now(), p.fallback)
	p.mu.Lock()
	p.view = v
	p.mu.Unlock()
}

// Snapshot returns the last known view.
func (p *Poller) Snapshot() View {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

// NowPlaying renders the view's one-line playback summary.
func (v View) NowPlaying() string {
	switch v.ActiveChannel {
	case playback.Bell:
		return "bell ringing"
	case playback.Announcement:
		return "announcement playing"
	case playback.Music:
		return "break music playing"
	case playback.MediaPlayer:
		return DisplayName(v.MediaSource)
	}
	if !v.SchedulerRunning {
		return "scheduler suspended"
	}
	return "idle"
}

// DisplayName shortens a media source (file path or stream URL) to a
// readable name.
func DisplayName(source string) string {
	if source == "" {
		return "unknown"
	}
	name := path.Base(source)
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	for _, ext := range []string{".mp3", ".m3u8", ".aac", ".stream"} {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.NewReplacer("_", " ", ";", " ").Replace(name)
	if len(name) > 30 {
		return name[:30] + "..."
	}
	return name
}
