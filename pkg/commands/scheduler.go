package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/runner/play"
)

func addScheduler(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "scheduler <start|stop|toggle>",
		Short:     "Start or suspend the appliance's automatic scheduler.",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"start", "stop", "toggle"},
		Example: `
zilctl scheduler stop
zilctl scheduler toggle
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := play.Scheduler{Client: cl, Action: args[0]}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
