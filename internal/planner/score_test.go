package planner

import (
	"testing"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday, used so the trailing-7-day window and the Sunday-anchored
// week overlap for most of the week.
var scoreRef = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

func record(routineID int, at time.Time) domain.CompletionRecord {
	return domain.CompletionRecord{RoutineID: routineID, Minutes: 30, At: at}
}

func TestScore_BaseByPriority(t *testing.T) {
	tests := []struct {
		name     string
		priority domain.Priority
		want     int
	}{
		{"high", domain.PriorityHigh, 100 + 70},
		{"medium", domain.PriorityMedium, 50 + 70},
		{"low", domain.PriorityLow, 20 + 70},
		{"unknown defaults to medium", domain.Priority("???"), 50 + 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Routine{ID: 1, Priority: tt.priority}
			// No history: all seven days are missed.
			assert.Equal(t, tt.want, Score(r, nil, scoreRef))
		})
	}
}

func TestScore_FrequencyDebt(t *testing.T) {
	r := &domain.Routine{ID: 1, Priority: domain.PriorityMedium}

	// Three completions in the trailing week: 4 missed days.
	history := []domain.CompletionRecord{
		record(1, scoreRef.AddDate(0, 0, -1)),
		record(1, scoreRef.AddDate(0, 0, -3)),
		record(1, scoreRef.AddDate(0, 0, -5)),
	}
	assert.Equal(t, 50+4*10, Score(r, history, scoreRef))
}

func TestScore_IgnoresOtherRoutinesAndOldRecords(t *testing.T) {
	r := &domain.Routine{ID: 1, Priority: domain.PriorityLow}
	history := []domain.CompletionRecord{
		record(2, scoreRef.AddDate(0, 0, -1)), // other routine
		record(1, scoreRef.AddDate(0, 0, -8)), // outside the window
	}
	assert.Equal(t, 20+70, Score(r, history, scoreRef))
}

func TestScore_OverServicedGoesNegativeOnDebt(t *testing.T) {
	// Nine completions in seven days: missedDays = -2. The debt term
	// is deliberately unclamped so over-serviced routines sink.
	r := &domain.Routine{ID: 1, Priority: domain.PriorityLow}
	var history []domain.CompletionRecord
	for i := 0; i < 9; i++ {
		history = append(history, record(1, scoreRef.Add(-time.Duration(i*12)*time.Hour)))
	}
	assert.Equal(t, 20-2*10, Score(r, history, scoreRef))
}

func TestScoreRoutines_SortsDescendingStable(t *testing.T) {
	a := &domain.Routine{ID: 1, Priority: domain.PriorityMedium}
	b := &domain.Routine{ID: 2, Priority: domain.PriorityHigh}
	c := &domain.Routine{ID: 3, Priority: domain.PriorityMedium} // ties with a

	scored := ScoreRoutines([]*domain.Routine{a, b, c}, nil, scoreRef)
	require.Len(t, scored, 3)
	assert.Equal(t, 2, scored[0].Routine.ID)
	// Tie between a and c keeps input order.
	assert.Equal(t, 1, scored[1].Routine.ID)
	assert.Equal(t, 3, scored[2].Routine.ID)
}
