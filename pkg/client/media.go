package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

type radioRequest struct {
	URL string `json:"url"`
}

type volumeRequest struct {
	Channel string `json:"channel"`
	Volume  int    `json:"volume"`
}

// Station is a saved radio station in the appliance config.
type Station struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Config is the appliance configuration document. It is carried as a raw
// map so a read-modify-write of one section never drops fields this client
// does not know about.
type Config map[string]json.RawMessage

// MediaPlayFile plays a local media file on the manual player.
func (c *Client) MediaPlayFile(ctx context.Context, filename string, shuffle bool) error {
	return c.post(ctx, query("/api/media/play/file",
		"filename", filename, "shuffle", strconv.FormatBool(shuffle)), nil, nil)
}

// MediaPlayRadio streams a radio URL on the manual player.
func (c *Client) MediaPlayRadio(ctx context.Context, url string) error {
	return c.post(ctx, "/api/media/play/radio", radioRequest{URL: url}, nil)
}

// MediaPause toggles pause on the manual player.
func (c *Client) MediaPause(ctx context.Context) error {
	return c.post(ctx, "/api/media/pause", nil, nil)
}

// MediaStop stops the manual player.
func (c *Client) MediaStop(ctx context.Context) error {
	return c.post(ctx, "/api/media/stop", nil, nil)
}

// MediaNext skips to the next playlist track.
func (c *Client) MediaNext(ctx context.Context) error {
	return c.post(ctx, "/api/media/next", nil, nil)
}

// MediaPrev skips to the previous playlist track.
func (c *Client) MediaPrev(ctx context.Context) error {
	return c.post(ctx, "/api/media/prev", nil, nil)
}

// SetVolume sets one channel's volume (0-100). Channel "manual" addresses
// the media player.
func (c *Client) SetVolume(ctx context.Context, channel string, volume int) error {
	return c.post(ctx, "/api/volume", volumeRequest{Channel: channel, Volume: volume}, nil)
}

// FetchConfig retrieves the appliance configuration.
func (c *Client) FetchConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := c.get(ctx, "/api/config", &cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// SaveConfig writes the appliance configuration back.
func (c *Client) SaveConfig(ctx context.Context, cfg Config) error {
	return c.post(ctx, "/api/config", cfg, nil)
}

// Stations extracts the saved radio stations from the config.
func (cfg Config) Stations() ([]Station, error) {
	raw, ok := cfg["radio"]
	if !ok {
		return nil, nil
	}
	var radio struct {
		Stations []Station `json:"stations"`
	}
	if err := json.Unmarshal(raw, &radio); err != nil {
		return nil, fmt.Errorf("client: radio config: %w", err)
	}
	return radio.Stations, nil
}

// SetStations replaces the station list, keeping the rest of the radio
// section intact.
func (cfg Config) SetStations(stations []Station) error {
	radio := map[string]json.RawMessage{}
	if raw, ok := cfg["radio"]; ok {
		if err := json.Unmarshal(raw, &radio); err != nil {
			return fmt.Errorf("client: radio config: %w", err)
		}
	}
	b, err := json.Marshal(stations)
	if err != nil {
		return fmt.Errorf("client: encode stations: %w", err)
	}
	radio["stations"] = b
	merged, err := json.Marshal(radio)
	if err != nil {
		return fmt.Errorf("client: encode radio config: %w", err)
	}
	cfg["radio"] = merged
	return nil
}
