package client

import "context"

type ttsRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Gender   string `json:"gender"`
}

// TTSResponse reports whether the appliance managed to synthesize speech.
type TTSResponse struct {
	Success bool `json:"success"`
}

// PlayBell rings a bell sound on the bell channel.
func (c *Client) PlayBell(ctx context.Context, filename string) error {
	return c.post(ctx, query("/api/bell/play", "filename", filename), nil, nil)
}

// PlayAnnouncement plays a stored announcement on the announcement channel.
func (c *Client) PlayAnnouncement(ctx context.Context, filename string) error {
	return c.post(ctx, query("/api/announcement/play", "filename", filename), nil, nil)
}

// StopAll stops every audio channel. Always safe to issue.
func (c *Client) StopAll(ctx context.Context) error {
	return c.post(ctx, "/api/stop", nil, nil)
}

// Speak synthesizes and announces the given text.
func (c *Client) Speak(ctx context.Context, text, language, gender string) (TTSResponse, error) {
	var res TTSResponse
	err := c.post(ctx, "/api/tts", ttsRequest{Text: text, Language: language, Gender: gender}, &res)
	return res, err
}
