package client

import "context"

// SoundFile is one entry in the appliance's sound and media listings.
type SoundFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Sounds lists the stored sound files for a category: "bells",
// "announcements", or "music". An unknown category lists empty.
func (c *Client) Sounds(ctx context.Context, category string) ([]SoundFile, error) {
	var files []SoundFile
	if err := c.get(ctx, "/api/sounds/"+category, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// MediaFiles lists the manual player's local files.
func (c *Client) MediaFiles(ctx context.Context) ([]SoundFile, error) {
	var files []SoundFile
	if err := c.get(ctx, "/api/media/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}
