package planner

import (
	"sort"

	"github.com/mtamigo/focus/internal/domain"
)

// Urgency band bounds for position-derived tiers after a reorder.
const (
	nowBandEnd  = 2 // positions 0-1 become "now"
	soonBandEnd = 5 // positions 2-4 become "soon"
)

// UrgencyForPosition derives the urgency tier from a task's position
// in a reordered sequence.
func UrgencyForPosition(index int) domain.Urgency {
	switch {
	case index < nowBandEnd:
		return domain.UrgencyNow
	case index < soonBandEnd:
		return domain.UrgencySoon
	default:
		return domain.UrgencyLater
	}
}

// Less reports whether task a should be presented before task b. The
// order is: explicit rank (lower wins, ranked beats unranked), then
// urgency tier, then creation time, then ID. The final ID comparison
// makes the order strict: no two distinct tasks compare equal.
func Less(a, b *domain.Task) bool {
	switch {
	case a.PriorityRank != nil && b.PriorityRank != nil:
		if *a.PriorityRank != *b.PriorityRank {
			return *a.PriorityRank < *b.PriorityRank
		}
	case a.PriorityRank != nil:
		return true
	case b.PriorityRank != nil:
		return false
	}
	if a.Urgency.Order() != b.Urgency.Order() {
		return a.Urgency.Order() < b.Urgency.Order()
	}
	if !a.Created.Equal(b.Created) {
		return a.Created.Before(b.Created)
	}
	return a.ID < b.ID
}

// CurrentTask returns the single task to present now: the minimum of
// the incomplete tasks under Less. Returns nil when everything is
// done.
func CurrentTask(tasks []*domain.Task) *domain.Task {
	var current *domain.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if current == nil || Less(t, current) {
			current = t
		}
	}
	return current
}

// SortPending returns the incomplete tasks in presentation order.
func SortPending(tasks []*domain.Task) []*domain.Task {
	var pending []*domain.Task
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return Less(pending[i], pending[j])
	})
	return pending
}
