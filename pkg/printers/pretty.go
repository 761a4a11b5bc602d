package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/schedule"
	"github.com/nikolayco/zilctl/pkg/status"
	"github.com/nikolayco/zilctl/pkg/timeline"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Status prints the normalized appliance status.
func (pp *PrettyPrint) Status(v status.View) {
	tbl := uitable.New()
	tbl.Separator = "  "

	running := "running"
	if !v.SchedulerRunning {
		running = "suspended"
	}
	tbl.AddRow("scheduler", running)
	tbl.AddRow("now playing", v.NowPlaying())
	if v.Holiday {
		tbl.AddRow("holiday", v.HolidayName)
	} else {
		tbl.AddRow("holiday", "no (working day)")
	}
	if v.NextEvent != nil {
		tbl.AddRow("next event", fmt.Sprintf("%s  %s (%s)", v.NextEvent.Time, v.NextEvent.Name, v.NextEvent.Type))
	} else {
		tbl.AddRow("next event", "none today")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Timeline prints a day's flattened events, highlighting the next one.
func (pp *PrettyPrint) Timeline(events []timeline.Event, nowHHMM string) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no events today")
		return
	}

	next, hasNext := timeline.Next(events, nowHHMM)
	marked := false

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range events {
		marker := " "
		if hasNext && !marked && e == next {
			marker = color.New(color.FgHiYellow).Sprint("›")
			marked = true
		}
		tbl.AddRow(marker, e.Time, e.Label(), e.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Agenda prints per-activity blocks with durations, marking the active one.
func (pp *PrettyPrint) Agenda(items []timeline.Item, nowHHMM string) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no program today")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		marker := " "
		if timeline.ActiveNow(it, nowHHMM) {
			marker = color.New(color.FgHiGreen).Sprint("●")
		}
		tbl.AddRow(marker,
			fmt.Sprintf("%s - %s", it.StartTime, it.EndTime),
			it.Name,
			timeline.FormatDuration(it.DurationMinutes))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Week prints the whole program, one section per day.
func (pp *PrettyPrint) Week(w schedule.Week) {
	for _, d := range w {
		pp.DayTitle(d)
		pp.Day(d)
	}
}

// DayTitle prints the day heading with its enabled state.
func (pp *PrettyPrint) DayTitle(d schedule.Day) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(dayName(d))
	if d.Enabled {
		_, _ = c.Println(" - enabled")
	} else {
		_, _ = c.Println(" - disabled")
	}
}

// Day prints a day's activities with their sounds and announcement slots.
func (pp *PrettyPrint) Day(d schedule.Day) {
	if len(d.Activities) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range d.Activities {
		details := make([]string, 0, 4)
		if a.StartSoundID != "" {
			details = append(details, "start: "+a.StartSoundID)
		}
		if a.EndSoundID != "" {
			details = append(details, "end: "+a.EndSoundID)
		}
		if a.PlayMusic {
			details = append(details, "break music")
		}
		if n := len(a.Announcements); n > 0 {
			times := make([]string, 0, n)
			for _, ann := range a.Announcements {
				times = append(times, ann.Time)
			}
			details = append(details, fmt.Sprintf("%d announcements: %s", n, strings.Join(times, ", ")))
		}
		tbl.AddRow(a.ID,
			fmt.Sprintf("%s - %s", a.StartTime, a.EndTime),
			a.Name,
			strings.Join(details, " • "))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Files prints a sound or media file listing with human-readable sizes.
func (pp *PrettyPrint) Files(files []client.SoundFile) {
	if len(files) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no files")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, f := range files {
		tbl.AddRow(f.Name, formatSize(f.Size))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Stations prints the saved radio stations.
func (pp *PrettyPrint) Stations(stations []client.Station) {
	if len(stations) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no stations saved")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range stations {
		tbl.AddRow(s.Name, s.URL)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func dayName(d schedule.Day) string {
	if d.DayName != "" {
		return d.DayName
	}
	if d.DayOfWeek >= 0 && d.DayOfWeek < schedule.DaysPerWeek {
		return schedule.DayNames[d.DayOfWeek]
	}
	return fmt.Sprintf("day %d", d.DayOfWeek)
}
