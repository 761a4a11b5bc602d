package client

import (
	"context"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

// TimelineEntry is one row of the appliance's own daily timeline view.
type TimelineEntry struct {
	Time string `json:"time"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type saveScheduleRequest struct {
	Schedule schedule.Week `json:"schedule"`
}

// FetchSchedule retrieves the full weekly program.
func (c *Client) FetchSchedule(ctx context.Context) (schedule.Week, error) {
	var w schedule.Week
	if err := c.get(ctx, "/api/schedule", &w); err != nil {
		return nil, err
	}
	return w, nil
}

// SaveSchedule replaces the appliance's weekly program with w. There is no
// partial update; the whole week goes on every save.
func (c *Client) SaveSchedule(ctx context.Context, w schedule.Week) error {
	return c.post(ctx, "/api/schedule", saveScheduleRequest{Schedule: w}, nil)
}

// Timeline fetches the appliance's flattened timeline for today.
func (c *Client) Timeline(ctx context.Context) ([]TimelineEntry, error) {
	var entries []TimelineEntry
	if err := c.get(ctx, "/api/schedule/timeline", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Today fetches today's day of the program.
func (c *Client) Today(ctx context.Context) (schedule.Day, error) {
	var d schedule.Day
	if err := c.get(ctx, "/api/schedule/today", &d); err != nil {
		return schedule.Day{}, err
	}
	if d.Activities == nil {
		d.Activities = []schedule.Activity{}
	}
	return d, nil
}

// StartScheduler resumes automatic operation.
func (c *Client) StartScheduler(ctx context.Context) error {
	return c.post(ctx, "/api/scheduler/start", nil, nil)
}

// StopScheduler suspends automatic operation; the appliance also stops all
// automatic audio.
func (c *Client) StopScheduler(ctx context.Context) error {
	return c.post(ctx, "/api/scheduler/stop", nil, nil)
}
