package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/usecase"
)

// tickInterval is how often the view reloads and re-runs interrupt
// detection.
const tickInterval = 30 * time.Second

// snoozeDuration is how long a snoozed interrupt stays hidden before
// it may resurface.
const snoozeDuration = 5 * time.Minute

// tickMsg fires on the refresh timer.
type tickMsg time.Time

// loadedMsg carries a freshly computed schedule snapshot.
type loadedMsg struct {
	err       error
	interrupt *domain.Interrupt
	nextTask  *domain.Task
	entries   []domain.ScheduleEntry
	now       time.Time
}

// Model is the bubbletea model for the today view.
// Fields are ordered to minimize memory padding.
type Model struct {
	schedule    *usecase.DaySchedule
	interrupts  *usecase.CheckInterrupt
	current     *usecase.CurrentTask
	clock       domain.Clock
	err         error
	interrupt   *domain.Interrupt
	nextTask    *domain.Task
	entries     []domain.ScheduleEntry
	snoozedTill time.Time
	now         time.Time
	styles      Styles
	keys        KeyMap
	ackedID     int // Anchor ID whose banner was dismissed (0 = none)
	width       int
}

// New creates a today-view model.
func New(schedule *usecase.DaySchedule, interrupts *usecase.CheckInterrupt, current *usecase.CurrentTask, clock domain.Clock) Model {
	return Model{
		schedule:   schedule,
		interrupts: interrupts,
		current:    current,
		clock:      clock,
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
		now:        clock.Now(),
	}
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// tick schedules the next refresh.
func (m Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// load recomputes the schedule, interrupt, and next task.
func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := m.clock.Now()

		sched, err := m.schedule.Execute(ctx, usecase.DayScheduleInput{Date: now})
		if err != nil {
			return loadedMsg{err: err, now: now}
		}
		intr, err := m.interrupts.Execute(ctx, usecase.CheckInterruptInput{Now: now})
		if err != nil {
			return loadedMsg{err: err, now: now}
		}
		next, err := m.current.Execute(ctx)
		if err != nil {
			return loadedMsg{err: err, now: now}
		}

		return loadedMsg{
			interrupt: intr.Interrupt,
			nextTask:  next.Task,
			entries:   sched.Entries,
			now:       now,
		}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case loadedMsg:
		m.err = msg.err
		m.now = msg.now
		if msg.err == nil {
			m.entries = msg.entries
			m.nextTask = msg.nextTask
			m.interrupt = msg.interrupt
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Ack):
			if m.visibleInterrupt() != nil {
				m.ackedID = m.interrupt.Anchor.ID
			}
			return m, nil
		case key.Matches(msg, m.keys.Snooze):
			if m.visibleInterrupt() != nil {
				m.snoozedTill = m.now.Add(snoozeDuration)
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}
	}
	return m, nil
}

// visibleInterrupt returns the interrupt to display, honoring
// acknowledgements and snoozes. An ack holds for that anchor; a snooze
// lets it come back once the snooze window lapses.
func (m Model) visibleInterrupt() *domain.Interrupt {
	if m.interrupt == nil {
		return nil
	}
	if m.interrupt.Anchor.ID == m.ackedID {
		return nil
	}
	if m.now.Before(m.snoozedTill) {
		return nil
	}
	return m.interrupt
}
