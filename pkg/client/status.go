package client

import "context"

// NextEvent is the scheduler's own next-event computation as it appears on
// the wire.
type NextEvent struct {
	Time string `json:"time"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SchedulerStatus mirrors the scheduler block of /api/status.
type SchedulerStatus struct {
	Running   bool       `json:"running"`
	State     string     `json:"state,omitempty"`
	NextEvent *NextEvent `json:"next_event"`
}

// ChannelState is the per-channel slice of the audio engine's status.
type ChannelState struct {
	Playing  bool    `json:"playing"`
	Paused   bool    `json:"paused,omitempty"`
	Volume   int     `json:"volume,omitempty"`
	Source   string  `json:"source,omitempty"`
	Position float64 `json:"position,omitempty"`
}

// AudioStatus covers the appliance's three automatic channels.
type AudioStatus struct {
	Bell         ChannelState `json:"bell"`
	Announcement ChannelState `json:"announcement"`
	Music        ChannelState `json:"music"`
}

// MediaStatus is the manual media player block.
type MediaStatus struct {
	Playing  bool    `json:"playing"`
	Paused   bool    `json:"paused"`
	Source   string  `json:"source,omitempty"`
	Type     string  `json:"type,omitempty"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration,omitempty"`
	Volume   int     `json:"volume,omitempty"`
}

// HolidayStatus is the holiday block of /api/status.
type HolidayStatus struct {
	IsHoliday   bool   `json:"is_holiday"`
	HolidayName string `json:"holiday_name,omitempty"`
}

// StatusResponse is the full /api/status payload. Fields the client does
// not depend on are left out; the decoder ignores them.
type StatusResponse struct {
	Version     string          `json:"version,omitempty"`
	CompanyName string          `json:"company_name,omitempty"`
	CurrentTime string          `json:"current_time,omitempty"`
	Scheduler   SchedulerStatus `json:"scheduler"`
	Audio       AudioStatus     `json:"audio"`
	MediaPlayer MediaStatus     `json:"media_player"`
	Holidays    HolidayStatus   `json:"holidays"`
}

// Status fetches the appliance's current status.
func (c *Client) Status(ctx context.Context) (StatusResponse, error) {
	var s StatusResponse
	err := c.get(ctx, "/api/status", &s)
	return s, err
}
