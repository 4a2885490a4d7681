package tui

import (
	"fmt"
	"strings"

	"github.com/mtamigo/focus/internal/domain"
)

// View renders the today view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Today — %s", m.now.Format("Mon Jan 2"))))
	b.WriteString("  ")
	b.WriteString(m.styles.Clock.Render(m.now.Format("15:04")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Interrupt.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	if intr := m.visibleInterrupt(); intr != nil {
		banner := fmt.Sprintf("%s in %d min  (%s-%s)",
			intr.Anchor.Title,
			intr.MinutesUntil,
			domain.FormatClock(intr.Anchor.Start),
			domain.FormatClock(intr.Anchor.End))
		b.WriteString(m.styles.Interrupt.Render(banner))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Clock.Render("Nothing scheduled today."))
		b.WriteString("\n")
	}

	nowMin := domain.MinutesSinceMidnight(m.now)
	for _, e := range m.entries {
		b.WriteString(m.renderEntry(e, nowMin))
		b.WriteString("\n")
	}

	if m.nextTask != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Task.Render(fmt.Sprintf("Next up: #%d %s", m.nextTask.ID, m.nextTask.Title)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("a: acknowledge • s: snooze • r: refresh • q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderEntry renders one schedule row, highlighting the block the
// clock is currently inside and dimming finished ones.
func (m Model) renderEntry(e domain.ScheduleEntry, nowMin int) string {
	line := fmt.Sprintf("%s-%s  %s", domain.FormatClock(e.Start), domain.FormatClock(e.End), e.Title)
	if e.Fixed {
		line += fmt.Sprintf("  [%s]", e.Category)
	}

	switch {
	case nowMin >= e.Start && nowMin < e.End:
		return m.styles.Active.Render("▶ " + line)
	case nowMin >= e.End:
		return m.styles.Past.Render("  " + line)
	case e.Fixed:
		return m.styles.Fixed.Render("  " + line)
	default:
		return m.styles.Task.Render("  " + line)
	}
}
