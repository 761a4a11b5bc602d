// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

// DayOptions selects a day of the week, by Monday-first index or by name.
type DayOptions struct {
	Day string
}

// AddDayArg wires the --day flag. An empty value means today.
func AddDayArg(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Day of week, 0-6 (Monday first) or a name like 'friday'. Defaults to today.")
}

// Index resolves the flag to a day index, using the clock for the default.
func (o *DayOptions) Index(clock schedule.Clock) (int, error) {
	if o.Day == "" {
		return schedule.TodayIndex(clock.Now()), nil
	}
	if i, err := strconv.Atoi(o.Day); err == nil {
		if i < 0 || i >= schedule.DaysPerWeek {
			return 0, fmt.Errorf("day index %d is out of range 0-6", i)
		}
		return i, nil
	}
	want := strings.ToLower(o.Day)
	for i, name := range schedule.DayNames {
		if strings.HasPrefix(strings.ToLower(name), want) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", o.Day)
}
