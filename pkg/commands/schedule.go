package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/commands/options"
	"github.com/nikolayco/zilctl/pkg/runner/day"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect and edit the weekly program.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleShow(cmd)
	addScheduleEnable(cmd)
	addScheduleCopyPaste(cmd)
	addScheduleActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleShow(parent *cobra.Command) {
	do := &options.DayOptions{}
	co := &options.CacheOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the program for a day, or the whole week.",
		Example: `
zilctl schedule show
zilctl schedule show --day friday
zilctl schedule show --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := -1
			if !all {
				var err error
				idx, err = do.Index(clock)
				if err != nil {
					return err
				}
			}
			s := day.Show{
				Client:    cl,
				Clipboard: clip,
				Day:       idx,
				Cached:    co.Cached,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDayArg(cmd, do)
	options.AddCachedArg(cmd, co)
	cmd.Flags().BoolVar(&all, "all", false, "Show every day of the week.")
	parent.AddCommand(cmd)
}

func addScheduleEnable(parent *cobra.Command) {
	for _, state := range []struct {
		use     string
		short   string
		enabled bool
	}{
		{"enable", "Let a day's activities fire.", true},
		{"disable", "Keep a day's activities stored but silent.", false},
	} {
		state := state
		do := &options.DayOptions{}
		cmd := &cobra.Command{
			Use:   state.use,
			Short: state.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := do.Index(clock)
				if err != nil {
					return err
				}
				e := day.Enable{Client: cl, Clipboard: clip, Day: idx, Enabled: state.enabled}
				return oo.HandleError(e.Do(context.Background()))
			},
		}
		options.AddDayArg(cmd, do)
		parent.AddCommand(cmd)
	}
}

func addScheduleCopyPaste(parent *cobra.Command) {
	cdo := &options.DayOptions{}
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a day's activities to the local clipboard.",
		Example: `
zilctl schedule copy --day monday
zilctl schedule paste --day tuesday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := cdo.Index(clock)
			if err != nil {
				return err
			}
			c := day.Copy{Client: cl, Clipboard: clip, Day: idx}
			return oo.HandleError(c.Do(context.Background()))
		},
	}
	options.AddDayArg(copyCmd, cdo)
	parent.AddCommand(copyCmd)

	pdo := &options.DayOptions{}
	pasteCmd := &cobra.Command{
		Use:   "paste",
		Short: "Replace a day's activities with the clipboard copy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := pdo.Index(clock)
			if err != nil {
				return err
			}
			p := day.Paste{Client: cl, Clipboard: clip, Day: idx}
			return oo.HandleError(p.Do(context.Background()))
		},
	}
	options.AddDayArg(pasteCmd, pdo)
	parent.AddCommand(pasteCmd)
}

func addScheduleActivity(parent *cobra.Command) {
	ado := &options.DayOptions{}
	ao := &options.ActivityOptions{}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity to a day.",
		Example: `
zilctl schedule add --day monday --name "First shift" --start 08:00 --end 12:00 \
    --start-sound melodi1.mp3 --end-sound melodi1.mp3 --music \
    --announce 10:00=break.mp3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ado.Index(clock)
			if err != nil {
				return err
			}
			a, err := ao.Activity()
			if err != nil {
				return err
			}
			u := day.Upsert{Client: cl, Clipboard: clip, Clock: clock, Day: idx, Activity: a}
			return oo.HandleError(u.Do(context.Background()))
		},
	}
	options.AddDayArg(addCmd, ado)
	options.AddActivityArgs(addCmd, ao)
	parent.AddCommand(addCmd)

	edo := &options.DayOptions{}
	eo := &options.ActivityOptions{}
	editCmd := &cobra.Command{
		Use:   "edit <activity-id>",
		Short: "Edit an activity in place, keeping its id and position.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := edo.Index(clock)
			if err != nil {
				return err
			}
			eo.ID = args[0]
			a, err := eo.Activity()
			if err != nil {
				return err
			}
			u := day.Upsert{Client: cl, Clipboard: clip, Clock: clock, Day: idx, Activity: a}
			return oo.HandleError(u.Do(context.Background()))
		},
	}
	options.AddDayArg(editCmd, edo)
	options.AddActivityArgs(editCmd, eo)
	parent.AddCommand(editCmd)

	rdo := &options.DayOptions{}
	rmCmd := &cobra.Command{
		Use:   "rm <activity-id>",
		Short: "Remove an activity from a day.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := rdo.Index(clock)
			if err != nil {
				return err
			}
			if args[0] == "" {
				return errors.New("an activity id is required")
			}
			r := day.Remove{Client: cl, Clipboard: clip, Day: idx, ID: args[0]}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddDayArg(rmCmd, rdo)
	parent.AddCommand(rmCmd)
}
