// Package dashboard is the live terminal view: wall clock, next-event
// countdown, normalized appliance status, and today's timeline, refreshed
// on independent tickers the way the appliance's own display is.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/clipboard"
	"github.com/nikolayco/zilctl/pkg/guard"
	"github.com/nikolayco/zilctl/pkg/runner/play"
	"github.com/nikolayco/zilctl/pkg/schedule"
	"github.com/nikolayco/zilctl/pkg/status"
	"github.com/nikolayco/zilctl/pkg/timeline"
)

const timelineRefresh = 30 * time.Second

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	clockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	nextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type clockTickMsg time.Time

type statusMsg status.View

type timelineMsg []timeline.Event

type clipChangedMsg string

type actionDoneMsg struct{ err error }

// Model is the dashboard's bubbletea model.
type Model struct {
	ctx       context.Context
	client    *client.Client
	clipboard *clipboard.Store
	clock     schedule.Clock
	guard     *guard.Guard
	poller    *status.Poller
	interval  time.Duration

	view       status.View
	events     []timeline.Event
	notice     string
	clipEvents <-chan clipboard.Event

	width  int
	height int
}

// New builds the dashboard model.
func New(ctx context.Context, c *client.Client, clip *clipboard.Store, interval time.Duration) Model {
	if interval <= 0 {
		interval = status.DefaultInterval
	}
	m := Model{
		ctx:       ctx,
		client:    c,
		clipboard: clip,
		clock:     schedule.System{},
		guard:     guard.New(),
		poller:    status.NewPoller(c, interval, nil),
		interval:  interval,
	}
	if clip != nil {
		if events, err := clip.Watch(ctx); err == nil {
			m.clipEvents = events
		}
	}
	return m
}

// Run starts the dashboard and blocks until quit.
func Run(ctx context.Context, c *client.Client, clip *clipboard.Store, interval time.Duration) error {
	p := tea.NewProgram(New(ctx, c, clip, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init fetches status and the timeline right away so the first render shows
// real data; the periodic ticks only refresh it afterwards.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clockTick(), m.pollNow(), m.fetchTimelineNow(), m.waitClipboard())
}

// waitClipboard blocks on the next cross-process store change, so a copy or
// schedule load in another invocation refreshes this dashboard's cache view.
func (m Model) waitClipboard() tea.Cmd {
	if m.clipEvents == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.clipEvents
		if !ok {
			return nil
		}
		return clipChangedMsg(ev.Key)
	}
}

func (m Model) clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// pollStatus schedules the next poll one interval out.
func (m Model) pollStatus() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return m.pollResult() })
}

// pollNow fetches status immediately.
func (m Model) pollNow() tea.Cmd {
	return func() tea.Msg { return m.pollResult() }
}

// pollResult fetches status once through the shared poller, so a transport
// failure keeps the previous view rather than blanking the display.
func (m Model) pollResult() tea.Msg {
	ctx, cancel := context.WithTimeout(m.ctx, m.interval)
	defer cancel()
	m.poller.Poll(ctx)
	v := m.poller.Snapshot()
	if v.NextEvent == nil {
		v.NextEvent = m.fallbackNext()
	}
	return statusMsg(v)
}

func (m Model) loadTimeline() tea.Cmd {
	return tea.Tick(timelineRefresh, func(time.Time) tea.Msg {
		return timelineMsg(m.fetchTimeline())
	})
}

// fetchTimelineNow loads the timeline immediately.
func (m Model) fetchTimelineNow() tea.Cmd {
	return func() tea.Msg { return timelineMsg(m.fetchTimeline()) }
}

func (m Model) fetchTimeline() []timeline.Event {
	ctx, cancel := context.WithTimeout(m.ctx, m.interval)
	defer cancel()
	if entries, err := m.client.Timeline(ctx); err == nil {
		events := make([]timeline.Event, 0, len(entries))
		for _, e := range entries {
			events = append(events, timeline.Event{
				Time: e.Time,
				Name: e.Name,
				Type: timeline.ParseEventType(e.Type),
			})
		}
		timeline.Renumber(events)
		return events
	}
	if m.clipboard != nil {
		if week, err := m.clipboard.Week(); err == nil {
			return timeline.Events(week[schedule.TodayIndex(m.clock.Now())])
		}
	}
	return m.events
}

func (m Model) fallbackNext() *client.NextEvent {
	next, ok := timeline.Next(m.events, m.clock.NowHHMM())
	if !ok {
		return nil
	}
	return &client.NextEvent{Time: next.Time, Name: next.Name, Type: next.Type.String()}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case clockTickMsg:
		return m, m.clockTick()

	case statusMsg:
		m.view = status.View(msg)
		return m, m.pollStatus()

	case timelineMsg:
		m.events = msg
		return m, m.loadTimeline()

	case clipChangedMsg:
		m.events = m.fetchTimeline()
		return m, m.waitClipboard()

	case actionDoneMsg:
		if msg.err != nil {
			m.notice = warnStyle.Render(msg.err.Error())
		} else {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "b":
			return m, m.action(func(ctx context.Context) error {
				b := play.Bell{Client: m.client, Guard: m.guard}
				return b.Do(ctx)
			})
		case "x":
			return m, m.action(func(ctx context.Context) error {
				s := play.Stop{Client: m.client, Guard: m.guard}
				return s.Do(ctx)
			})
		case "t":
			return m, m.action(func(ctx context.Context) error {
				s := play.Scheduler{Client: m.client, Action: "toggle"}
				return s.Do(ctx)
			})
		case "r":
			return m, m.fetchTimelineNow()
		}
	}
	return m, nil
}

// action runs a guarded command off the UI loop.
func (m Model) action(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, client.DefaultTimeout)
		defer cancel()
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m Model) View() string {
	now := m.clock.Now()
	var b strings.Builder

	b.WriteString(titleStyle.Render("smartzill"))
	b.WriteString("  ")
	b.WriteString(clockStyle.Render(now.Format("15:04:05")))
	b.WriteString("  ")
	b.WriteString(faintStyle.Render(now.Format("Monday, 2 January")))
	b.WriteString("\n\n")

	b.WriteString(m.statusLines())
	b.WriteString("\n")
	b.WriteString(m.timelineLines())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render("b bell • x stop • t scheduler • r refresh • q quit"))
	return b.String()
}

func (m Model) statusLines() string {
	var b strings.Builder

	running := activeStyle.Render("running")
	if !m.view.SchedulerRunning {
		running = warnStyle.Render("suspended")
	}
	b.WriteString(fmt.Sprintf("scheduler   %s\n", running))
	b.WriteString(fmt.Sprintf("playing     %s\n", m.view.NowPlaying()))
	if m.view.Holiday {
		b.WriteString(fmt.Sprintf("holiday     %s\n", m.view.HolidayName))
	}
	if m.view.NextEvent != nil {
		h, min, s := timeline.Countdown(m.view.NextEvent.Time, m.clock.Now())
		b.WriteString(fmt.Sprintf("next        %s %s (%s) in %s\n",
			m.view.NextEvent.Time, m.view.NextEvent.Name, m.view.NextEvent.Type,
			nextStyle.Render(fmt.Sprintf("%02d:%02d:%02d", h, min, s))))
	} else {
		b.WriteString(faintStyle.Render("next        no events today") + "\n")
	}
	return b.String()
}

func (m Model) timelineLines() string {
	if len(m.events) == 0 {
		return faintStyle.Render("no events today") + "\n"
	}
	next, hasNext := timeline.Next(m.events, m.clock.NowHHMM())
	marked := false

	var b strings.Builder
	b.WriteString(titleStyle.Render("today") + "\n")
	for _, e := range m.events {
		line := fmt.Sprintf("  %s  %-28s %s", e.Time, e.Label(), e.Name)
		if hasNext && !marked && e == next {
			line = nextStyle.Render("›" + line[1:])
			marked = true
		} else if e.Time < m.clock.NowHHMM() {
			line = faintStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
