// Package playback enforces the one-channel-at-a-time rule on the client
// side: before starting audio on any channel, whatever is currently playing
// is asked to stop. The exclusion is advisory, two round-trips rather than a
// transaction, so two clients racing at the same instant can still overlap;
// the appliance has no atomic stop-and-start endpoint.
package playback

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nikolayco/zilctl/pkg/client"
)

// Channel identifies the mutually exclusive audio sources.
type Channel int

const (
	None Channel = iota
	Bell
	Announcement
	Music
	MediaPlayer
)

func (c Channel) String() string {
	switch c {
	case Bell:
		return "bell"
	case Announcement:
		return "announcement"
	case Music:
		return "music"
	case MediaPlayer:
		return "media player"
	}
	return "none"
}

// ActiveChannel normalizes a status response to the single channel reported
// playing. The automatic channels outrank the manual player, matching the
// appliance UI's precedence.
func ActiveChannel(s client.StatusResponse) Channel {
	switch {
	case s.Audio.Bell.Playing:
		return Bell
	case s.Audio.Announcement.Playing:
		return Announcement
	case s.Audio.Music.Playing:
		return Music
	case s.MediaPlayer.Playing:
		return MediaPlayer
	default:
		return None
	}
}

// Coordinator serializes channel starts. Active reads the current channel
// view (a live status snapshot or a fresh status fetch); Stop issues the
// unconditional stop-all.
type Coordinator struct {
	Active func(ctx context.Context) (Channel, error)
	Stop   func(ctx context.Context) error

	// Grace is waited after a stop whose acknowledgement carries no channel
	// state, giving the appliance time to actually release the channel.
	Grace time.Duration
}

// StartExclusive stops the currently playing channel, if any, before
// invoking start. A failed stop is logged and start proceeds anyway. Stop
// entry points must not go through here, stopping is always safe to issue
// directly.
func (c *Coordinator) StartExclusive(ctx context.Context, start func(ctx context.Context) error) error {
	active, err := c.Active(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("channel state unknown, starting anyway")
		active = None
	}
	if active != None {
		log.Debug().Stringer("channel", active).Msg("stopping active channel before start")
		if err := c.Stop(ctx); err != nil {
			log.Warn().Err(err).Msg("stop before start failed")
		}
		if c.Grace > 0 {
			select {
			case <-time.After(c.Grace):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return start(ctx)
}
