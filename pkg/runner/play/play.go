// Package play implements the remote audio verbs. Every trigger goes
// through the command guard so a repeated invocation inside the cooldown is
// dropped, and every start goes through the playback coordinator so the
// channels stay mutually exclusive.
package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/guard"
	"github.com/nikolayco/zilctl/pkg/playback"
)

// Cooldowns per command key. The longer ones mask the appliance's playback
// startup latency; stop and transport commands only need double-press
// protection.
const (
	BellCooldown      = 3 * time.Second
	StopCooldown      = 1 * time.Second
	TTSCooldown       = 3 * time.Second
	MediaCooldown     = 2 * time.Second
	TransportCooldown = 1 * time.Second
	PauseCooldown     = 500 * time.Millisecond
)

// Grace waited between a stop and the following start when coordinating
// channels.
const StopGrace = 300 * time.Millisecond

func coordinator(c *client.Client) *playback.Coordinator {
	return &playback.Coordinator{
		Active: func(ctx context.Context) (playback.Channel, error) {
			s, err := c.Status(ctx)
			if err != nil {
				return playback.None, err
			}
			return playback.ActiveChannel(s), nil
		},
		Stop:  c.StopAll,
		Grace: StopGrace,
	}
}

// Bell rings a bell sound.
type Bell struct {
	Client   *client.Client
	Guard    *guard.Guard
	Filename string
}

func (b *Bell) Do(ctx context.Context) error {
	if b.Filename == "" {
		b.Filename = "default.mp3"
	}
	return b.Guard.Run("bell", BellCooldown, func() error {
		return coordinator(b.Client).StartExclusive(ctx, func(ctx context.Context) error {
			return b.Client.PlayBell(ctx, b.Filename)
		})
	})
}

// Stop stops all audio. Stops bypass the coordinator; they are always safe.
type Stop struct {
	Client *client.Client
	Guard  *guard.Guard
}

func (s *Stop) Do(ctx context.Context) error {
	return s.Guard.Run("stop", StopCooldown, func() error {
		return s.Client.StopAll(ctx)
	})
}

// Announce plays a stored announcement sound.
type Announce struct {
	Client   *client.Client
	Guard    *guard.Guard
	Filename string
}

func (a *Announce) Do(ctx context.Context) error {
	if a.Filename == "" {
		return errors.New("announcement filename is required")
	}
	return a.Guard.Run("announce", BellCooldown, func() error {
		return coordinator(a.Client).StartExclusive(ctx, func(ctx context.Context) error {
			return a.Client.PlayAnnouncement(ctx, a.Filename)
		})
	})
}

// Speak synthesizes text over the announcement channel.
type Speak struct {
	Client   *client.Client
	Guard    *guard.Guard
	Text     string
	Language string
	Gender   string
}

func (s *Speak) Do(ctx context.Context) error {
	if s.Text == "" {
		return errors.New("text is required")
	}
	if s.Language == "" {
		s.Language = "tr"
	}
	if s.Gender == "" {
		s.Gender = "female"
	}
	return s.Guard.Run("tts", TTSCooldown, func() error {
		return coordinator(s.Client).StartExclusive(ctx, func(ctx context.Context) error {
			res, err := s.Client.Speak(ctx, s.Text, s.Language, s.Gender)
			if err != nil {
				return err
			}
			if !res.Success {
				return errors.New("speech synthesis failed, the voice engine may be down")
			}
			return nil
		})
	})
}

// MediaFile plays a local media file on the manual player.
type MediaFile struct {
	Client   *client.Client
	Guard    *guard.Guard
	Filename string
	Shuffle  bool
}

func (m *MediaFile) Do(ctx context.Context) error {
	if m.Filename == "" {
		return errors.New("media filename is required")
	}
	return m.Guard.Run("media-"+m.Filename, MediaCooldown, func() error {
		return coordinator(m.Client).StartExclusive(ctx, func(ctx context.Context) error {
			return m.Client.MediaPlayFile(ctx, m.Filename, m.Shuffle)
		})
	})
}

// Radio streams a radio station, by saved station name or direct URL.
type Radio struct {
	Client  *client.Client
	Guard   *guard.Guard
	Station string
	URL     string
}

func (r *Radio) Do(ctx context.Context) error {
	url := r.URL
	if url == "" {
		if r.Station == "" {
			return errors.New("a station name or URL is required")
		}
		cfg, err := r.Client.FetchConfig(ctx)
		if err != nil {
			return err
		}
		stations, err := cfg.Stations()
		if err != nil {
			return err
		}
		for _, s := range stations {
			if s.Name == r.Station {
				url = s.URL
				break
			}
		}
		if url == "" {
			return fmt.Errorf("no saved station named %q", r.Station)
		}
	}
	return r.Guard.Run("radio", MediaCooldown, func() error {
		return coordinator(r.Client).StartExclusive(ctx, func(ctx context.Context) error {
			return r.Client.MediaPlayRadio(ctx, url)
		})
	})
}

// TransportOp is a manual player transport action.
type TransportOp int

const (
	Pause TransportOp = iota
	StopMedia
	Next
	Prev
)

// Transport drives the manual player's transport controls. These never
// start a new channel, so they bypass the coordinator.
type Transport struct {
	Client *client.Client
	Guard  *guard.Guard
	Op     TransportOp
}

func (t *Transport) Do(ctx context.Context) error {
	switch t.Op {
	case Pause:
		return t.Guard.Run("media-pause", PauseCooldown, func() error {
			return t.Client.MediaPause(ctx)
		})
	case StopMedia:
		return t.Guard.Run("media-stop", TransportCooldown, func() error {
			return t.Client.MediaStop(ctx)
		})
	case Next:
		return t.Guard.Run("media-next", TransportCooldown, func() error {
			return t.Client.MediaNext(ctx)
		})
	case Prev:
		return t.Guard.Run("media-prev", TransportCooldown, func() error {
			return t.Client.MediaPrev(ctx)
		})
	}
	return fmt.Errorf("unknown transport op %d", t.Op)
}

// Volume sets one channel's volume.
type Volume struct {
	Client  *client.Client
	Channel string
	Level   int
}

func (v *Volume) Do(ctx context.Context) error {
	if v.Level < 0 || v.Level > 100 {
		return fmt.Errorf("volume %d is out of range 0-100", v.Level)
	}
	return v.Client.SetVolume(ctx, v.Channel, v.Level)
}

// Scheduler starts, stops, or toggles the appliance scheduler.
type Scheduler struct {
	Client *client.Client
	Action string // "start", "stop", or "toggle"
}

func (s *Scheduler) Do(ctx context.Context) error {
	action := s.Action
	if action == "toggle" {
		st, err := s.Client.Status(ctx)
		if err != nil {
			return err
		}
		if st.Scheduler.Running {
			action = "stop"
		} else {
			action = "start"
		}
	}
	switch action {
	case "start":
		if err := s.Client.StartScheduler(ctx); err != nil {
			return err
		}
		fmt.Println("scheduler running")
		return nil
	case "stop":
		if err := s.Client.StopScheduler(ctx); err != nil {
			return err
		}
		fmt.Println("scheduler suspended, automatic audio stopped")
		return nil
	}
	return fmt.Errorf("unknown scheduler action %q", s.Action)
}
