package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/runner/play"
	"github.com/nikolayco/zilctl/pkg/runner/show"
)

func addMedia(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Drive the manual media player.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	shuffle := true
	playCmd := &cobra.Command{
		Use:   "play <filename>",
		Short: "Play a local media file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := play.MediaFile{Client: cl, Guard: commandGuard, Filename: args[0], Shuffle: shuffle}
			return oo.HandleError(m.Do(context.Background()))
		},
	}
	playCmd.Flags().BoolVar(&shuffle, "shuffle", true, "Shuffle the rest of the playlist.")
	cmd.AddCommand(playCmd)

	radioURL := ""
	radioCmd := &cobra.Command{
		Use:   "radio [station-name]",
		Short: "Stream a saved station, or a direct URL with --url.",
		Args:  cobra.MaximumNArgs(1),
		Example: `
zilctl media radio "Kral FM"
zilctl media radio --url http://stream.example.com/live.m3u8
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := play.Radio{Client: cl, Guard: commandGuard, URL: radioURL}
			if len(args) > 0 {
				r.Station = args[0]
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	radioCmd.Flags().StringVar(&radioURL, "url", "", "Stream URL to play directly.")
	cmd.AddCommand(radioCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"files"},
		Short:   "List the player's local media files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := show.MediaFiles{Client: cl}
			return oo.HandleError(m.Do(context.Background()))
		},
	})

	for _, t := range []struct {
		use   string
		short string
		op    play.TransportOp
	}{
		{"pause", "Toggle pause.", play.Pause},
		{"stop", "Stop the player.", play.StopMedia},
		{"next", "Next playlist track.", play.Next},
		{"prev", "Previous playlist track.", play.Prev},
	} {
		t := t
		cmd.AddCommand(&cobra.Command{
			Use:   t.use,
			Short: t.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				tr := play.Transport{Client: cl, Guard: commandGuard, Op: t.op}
				return oo.HandleError(tr.Do(context.Background()))
			},
		})
	}

	volumeCmd := &cobra.Command{
		Use:   "volume <0-100>",
		Short: "Set the manual player volume.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			v := play.Volume{Client: cl, Channel: "manual", Level: level}
			return oo.HandleError(v.Do(context.Background()))
		},
	}
	cmd.AddCommand(volumeCmd)

	topLevel.AddCommand(cmd)
}

func addVolume(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "volume <channel> <0-100>",
		Short:     "Set a channel's volume (bell, announcement, music, manual).",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"bell", "announcement", "music", "manual"},
		Example: `
zilctl volume bell 100
zilctl volume music 60
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			v := play.Volume{Client: cl, Channel: args[0], Level: level}
			return oo.HandleError(v.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
