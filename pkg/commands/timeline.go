package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/commands/options"
	"github.com/nikolayco/zilctl/pkg/runner/show"
)

func addTimeline(topLevel *cobra.Command) {
	co := &options.CacheOptions{}

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show today's flattened start/end/announcement events.",
		Example: `
zilctl timeline
zilctl timeline --cached
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := show.Timeline{
				Client:    cl,
				Clipboard: clip,
				Clock:     clock,
				Cached:    co.Cached,
			}
			return oo.HandleError(t.Do(context.Background()))
		},
	}

	options.AddCachedArg(cmd, co)
	topLevel.AddCommand(cmd)
}

func addAgenda(topLevel *cobra.Command) {
	co := &options.CacheOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show today's activities as blocks with durations.",
		Example: `
zilctl agenda
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := show.Agenda{
				Client:    cl,
				Clipboard: clip,
				Clock:     clock,
				Cached:    co.Cached,
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}

	options.AddCachedArg(cmd, co)
	topLevel.AddCommand(cmd)
}
