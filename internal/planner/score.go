// Package planner implements the pure scheduling core: priority
// scoring, greedy capacity allocation, gap scheduling, interrupt
// detection, and task sequencing. Everything here is a deterministic
// function of its inputs; the current time is always an explicit
// argument.
package planner

import (
	"sort"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// debtPointsPerDay is the score boost per missed day in the trailing
// week.
const debtPointsPerDay = 10

// Score computes the urgency score for a routine: the priority-tier
// base plus frequency debt. The debt term is deliberately unclamped: a
// routine completed more than seven times in the trailing week goes
// negative, which deprioritizes over-serviced routines.
func Score(routine *domain.Routine, history []domain.CompletionRecord, ref time.Time) int {
	recent := domain.CountRecentCompletions(history, routine.ID, ref)
	missedDays := 7 - recent
	return routine.Priority.BaseScore() + missedDays*debtPointsPerDay
}

// ScoredRoutine pairs a routine with its computed score.
type ScoredRoutine struct {
	Routine *domain.Routine
	Score   int
}

// ScoreRoutines scores every routine and returns them sorted by
// descending score. The sort is stable so input order breaks ties,
// keeping the result deterministic.
func ScoreRoutines(routines []*domain.Routine, history []domain.CompletionRecord, ref time.Time) []ScoredRoutine {
	scored := make([]ScoredRoutine, 0, len(routines))
	for _, r := range routines {
		scored = append(scored, ScoredRoutine{Routine: r, Score: Score(r, history, ref)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
