package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/runner/show"
)

func addSounds(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "sounds [bells|announcements|music]",
		Short:     "List the sound files stored on the appliance.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bells", "announcements", "music"},
		Example: `
zilctl sounds
zilctl sounds announcements
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := []string{"bells", "announcements"}
			if len(args) > 0 {
				cats = args
			}
			s := show.Sounds{Client: cl, Categories: cats}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
