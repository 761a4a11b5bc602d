package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/guard"
	"github.com/nikolayco/zilctl/pkg/runner/play"
)

// commandGuard is process-wide: one lock map for every trigger in this
// invocation, including the dashboard's key bindings.
var commandGuard = guard.New()

func addBell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "bell [filename]",
		Short: "Ring a bell sound now.",
		Args:  cobra.MaximumNArgs(1),
		Example: `
zilctl bell
zilctl bell melodi2.mp3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := play.Bell{Client: cl, Guard: commandGuard}
			if len(args) > 0 {
				b.Filename = args[0]
			}
			return oo.HandleError(b.Do(context.Background()))
		},
	}

	announceCmd := &cobra.Command{
		Use:   "announce <filename>",
		Short: "Play a stored announcement sound.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := play.Announce{Client: cl, Guard: commandGuard, Filename: args[0]}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
	topLevel.AddCommand(announceCmd)
}

func addSay(topLevel *cobra.Command) {
	language := ""
	gender := ""

	cmd := &cobra.Command{
		Use:   "say <text>...",
		Short: "Speak text over the announcement channel.",
		Args:  cobra.MinimumNArgs(1),
		Example: `
zilctl say "The canteen closes in ten minutes"
zilctl say --language en --gender male "Fire drill at noon"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := play.Speak{
				Client:   cl,
				Guard:    commandGuard,
				Text:     strings.TrimSpace(strings.Join(args, " ")),
				Language: language,
				Gender:   gender,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&language, "language", "tr", "Speech language code.")
	cmd.Flags().StringVar(&gender, "gender", "female", "Voice gender.")
	topLevel.AddCommand(cmd)
}

func addStop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop all audio on every channel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := play.Stop{Client: cl, Guard: commandGuard}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
