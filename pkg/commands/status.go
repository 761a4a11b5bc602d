package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/runner/show"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show scheduler, playback, holiday, and next-event state.",
		Example: `
zilctl status
zilctl status --server http://bellbox.local:7777
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := show.Status{
				Client:    cl,
				Clipboard: clip,
				Clock:     clock,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
