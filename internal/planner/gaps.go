package planner

import (
	"sort"

	"github.com/mtamigo/focus/internal/domain"
)

// Gap is a contiguous free interval between fixed anchors within the
// work window.
type Gap struct {
	Start   int // minutes since midnight
	End     int // minutes since midnight
	Minutes int
}

// FindGaps walks the day's anchors in start order and carves the free
// intervals out of the work window. Anchors outside the window are
// still honored: an anchor spanning the window start pushes the first
// gap forward.
func FindGaps(anchors []*domain.CalendarAnchor, window domain.WorkWindow) []Gap {
	sorted := make([]*domain.CalendarAnchor, len(anchors))
	copy(sorted, anchors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var gaps []Gap
	cursor := window.Start
	for _, anchor := range sorted {
		if anchor.Start > cursor && anchor.Start < window.End {
			gaps = append(gaps, Gap{Start: cursor, End: anchor.Start, Minutes: anchor.Start - cursor})
		}
		if anchor.End > cursor {
			cursor = anchor.End
		}
	}
	if cursor < window.End {
		gaps = append(gaps, Gap{Start: cursor, End: window.End, Minutes: window.End - cursor})
	}
	return gaps
}

// BuildDaySchedule merges the day's fixed anchors with pending tasks
// packed into the gaps between them, ordered by start time.
//
// Tasks are taken in urgency order (now < soon < later, stable). Each
// task is cut to fit the current gap; cuts below the fifteen-minute
// floor are not scheduled, and once the gaps are exhausted the
// remaining tasks simply stay pending for the next cycle.
func BuildDaySchedule(
	tasks []*domain.Task,
	anchors []*domain.CalendarAnchor,
	window domain.WorkWindow,
) []domain.ScheduleEntry {
	gaps := FindGaps(anchors, window)

	var entries []domain.ScheduleEntry
	for _, anchor := range anchors {
		entries = append(entries, domain.ScheduleEntry{
			SourceID: anchor.ID,
			Title:    anchor.Title,
			Start:    anchor.Start,
			End:      anchor.End,
			Category: anchor.Category,
			Fixed:    true,
		})
	}

	pending := pendingByUrgency(tasks)
	slot := 0
	for _, task := range pending {
		if slot >= len(gaps) {
			break
		}
		gap := &gaps[slot]
		minutes := min(task.Minutes(), gap.Minutes)
		if minutes < MinBlockMinutes {
			continue
		}
		entries = append(entries, domain.ScheduleEntry{
			SourceID: task.ID,
			Title:    task.Title,
			Start:    gap.Start,
			End:      gap.Start + minutes,
			Urgency:  task.Urgency,
		})
		gap.Start += minutes
		gap.Minutes -= minutes
		if gap.Minutes < MinBlockMinutes {
			slot++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	return entries
}

// pendingByUrgency returns incomplete tasks sorted by urgency tier,
// stable within a tier.
func pendingByUrgency(tasks []*domain.Task) []*domain.Task {
	var pending []*domain.Task
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Urgency.Order() < pending[j].Urgency.Order()
	})
	return pending
}
