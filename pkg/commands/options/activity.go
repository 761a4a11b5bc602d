package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

// ActivityOptions captures the activity fields for schedule add/edit.
type ActivityOptions struct {
	ID                string
	Name              string
	Start             string
	End               string
	StartSound        string
	EndSound          string
	StartAnnouncement string
	EndAnnouncement   string
	Music             bool
	Announcements     []string
}

// AddActivityArgs wires the activity field flags.
func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "", "Activity name.")
	cmd.Flags().StringVar(&o.Start, "start", "", "Start time, HH:MM.")
	cmd.Flags().StringVar(&o.End, "end", "", "End time, HH:MM.")
	cmd.Flags().StringVar(&o.StartSound, "start-sound", "", "Bell sound at start.")
	cmd.Flags().StringVar(&o.EndSound, "end-sound", "", "Bell sound at end.")
	cmd.Flags().StringVar(&o.StartAnnouncement, "start-announcement", "", "Announcement after the start bell.")
	cmd.Flags().StringVar(&o.EndAnnouncement, "end-announcement", "", "Announcement after the end bell.")
	cmd.Flags().BoolVar(&o.Music, "music", false, "Play break music during the activity.")
	cmd.Flags().StringArrayVar(&o.Announcements, "announce", nil,
		"Timed announcement as HH:MM=sound.mp3. Repeatable.")
}

// Activity builds the schedule activity from the flags.
func (o *ActivityOptions) Activity() (schedule.Activity, error) {
	a := schedule.Activity{
		ID:                  o.ID,
		Name:                o.Name,
		StartTime:           o.Start,
		EndTime:             o.End,
		StartSoundID:        o.StartSound,
		EndSoundID:          o.EndSound,
		StartAnnouncementID: o.StartAnnouncement,
		EndAnnouncementID:   o.EndAnnouncement,
		PlayMusic:           o.Music,
		Announcements:       []schedule.Announcement{},
	}
	for _, raw := range o.Announcements {
		at, sound, ok := strings.Cut(raw, "=")
		if !ok {
			return a, fmt.Errorf("announcement %q is not HH:MM=sound", raw)
		}
		a.Announcements = append(a.Announcements, schedule.Announcement{Time: at, SoundID: sound})
	}
	return a, nil
}
