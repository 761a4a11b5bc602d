package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/runner/radio"
)

func addRadio(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "radio",
		Short: "Manage the saved radio stations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := radio.List{Client: cl}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the saved stations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := radio.List{Client: cl}
			return oo.HandleError(l.Do(context.Background()))
		},
	})

	url := ""
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Save a station.",
		Args:  cobra.MinimumNArgs(1),
		Example: `
zilctl radio add "Kral FM" --url http://stream.example.com/live.m3u8
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := radio.Add{Client: cl, Name: strings.Join(args, " "), URL: url}
			return oo.HandleError(a.Do(context.Background()))
		},
	}
	addCmd.Flags().StringVar(&url, "url", "", "Stream URL for the station.")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a saved station.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := radio.Remove{Client: cl, Name: strings.Join(args, " ")}
			return oo.HandleError(r.Do(context.Background()))
		},
	})

	topLevel.AddCommand(cmd)
}
