package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/dashboard"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard with clock, status, and today's timeline.",
		Example: `
zilctl watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dashboard.Run(context.Background(), cl, clip, cfg.PollInterval)
		},
	}

	topLevel.AddCommand(cmd)
}
