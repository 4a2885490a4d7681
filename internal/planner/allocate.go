package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// MinBlockMinutes is the shortest meaningful session. No emitted block
// is ever shorter.
const MinBlockMinutes = 15

// reasonSeparator joins the fragments of an allocation explanation.
const reasonSeparator = " • "

// Allocate runs the greedy capacity allocator: one-time tasks first in
// input order, then active routines in descending score order, until
// the focus capacity runs out.
//
// Tasks that do not fit the remaining capacity are silently skipped,
// not deferred. A routine whose weekly frequency target is already met
// this week is skipped for the day. A routine with frequency <= 0 is
// never capped, since any completion count satisfies the comparison;
// both behaviors are part of the contract.
func Allocate(
	routines []*domain.Routine,
	tasks []*domain.Task,
	capacity domain.TimeCapacity,
	history []domain.CompletionRecord,
	ref time.Time,
) domain.Plan {
	remaining := capacity.TotalMinutes
	blocks := []domain.Block{}

	for _, task := range tasks {
		minutes := task.Minutes()
		if remaining < minutes {
			continue
		}
		blocks = append(blocks, domain.Block{
			Kind:     domain.BlockTask,
			SourceID: task.ID,
			Title:    task.Title,
			Minutes:  minutes,
		})
		remaining -= minutes
	}

	for _, sr := range ScoreRoutines(activeOnly(routines), history, ref) {
		routine := sr.Routine

		if domain.CountWeekCompletions(history, routine.ID, ref) >= routine.Frequency {
			continue // Weekly target already met
		}

		ideal := routine.IdealMinutes()
		allocated := min(ideal, remaining)
		if allocated < MinBlockMinutes {
			continue
		}

		blocks = append(blocks, domain.Block{
			Kind:     domain.BlockRoutine,
			SourceID: routine.ID,
			Title:    routine.Title,
			Minutes:  allocated,
			Reason:   allocationReason(routine, allocated, ideal, remaining),
		})
		remaining -= allocated

		if remaining < MinBlockMinutes {
			break
		}
	}

	// Zero or negative capacity falls through here with no blocks and
	// the full capacity reported as remaining; that is not an error.
	return domain.Plan{
		Date:             ref,
		Blocks:           blocks,
		TotalMinutes:     capacity.TotalMinutes,
		AllocatedMinutes: capacity.TotalMinutes - remaining,
		RemainingMinutes: remaining,
	}
}

// allocationReason composes up to three facts about why the block got
// its shape. Empty is valid and renders as no explanation.
func allocationReason(routine *domain.Routine, allocated, ideal, remaining int) string {
	var fragments []string
	if routine.Priority == domain.PriorityHigh {
		fragments = append(fragments, "High priority task")
	}
	if routine.MentalLoad == domain.LoadHeavy {
		fragments = append(fragments, "Peak focus window")
	}
	if allocated < ideal {
		fragments = append(fragments, fmt.Sprintf("Adjusted to fit %d min remaining", remaining))
	}
	return strings.Join(fragments, reasonSeparator)
}

func activeOnly(routines []*domain.Routine) []*domain.Routine {
	var result []*domain.Routine
	for _, r := range routines {
		if r.Active {
			result = append(result, r)
		}
	}
	return result
}
