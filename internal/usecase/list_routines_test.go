package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/testutil"
)

func TestListRoutines_Execute(t *testing.T) {
	// Saturday, so the trailing seven days cover the whole scoring week.
	ref := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	routines := testutil.NewMockRoutineRepository()
	routines.Routines[1] = &domain.Routine{ID: 1, Title: "Reading", Priority: domain.PriorityLow, Frequency: 3, Active: true}
	routines.Routines[2] = &domain.Routine{ID: 2, Title: "Deep Work", Priority: domain.PriorityHigh, Frequency: 5, Active: true}

	history := testutil.NewMockHistoryRepository()
	history.Records = []domain.CompletionRecord{
		{ID: 1, RoutineID: 1, Minutes: 30, At: ref.Add(-24 * time.Hour)},
		{ID: 2, RoutineID: 1, Minutes: 30, At: ref.Add(-2 * time.Hour)},
	}

	uc := NewListRoutines(routines, history, &testutil.MockClock{NowTime: ref})
	out, err := uc.Execute(context.Background(), ListRoutinesInput{ReferenceTime: ref})
	require.NoError(t, err)
	require.Len(t, out.Routines, 2)

	// High with no completions: 100 + 7*10. Low with two: 20 + 5*10.
	assert.Equal(t, "Deep Work", out.Routines[0].Routine.Title)
	assert.Equal(t, 170, out.Routines[0].Score)
	assert.Equal(t, 0, out.Routines[0].WeekCount)

	assert.Equal(t, "Reading", out.Routines[1].Routine.Title)
	assert.Equal(t, 70, out.Routines[1].Score)
	assert.Equal(t, 2, out.Routines[1].WeekCount)
}

func TestListRoutines_Execute_UsesClockWhenNoReference(t *testing.T) {
	ref := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	routines := testutil.NewMockRoutineRepository()
	routines.Routines[1] = &domain.Routine{ID: 1, Title: "Reading", Priority: domain.PriorityMedium, Frequency: 2, Active: true}

	uc := NewListRoutines(routines, testutil.NewMockHistoryRepository(), &testutil.MockClock{NowTime: ref})
	out, err := uc.Execute(context.Background(), ListRoutinesInput{})
	require.NoError(t, err)
	require.Len(t, out.Routines, 1)
	assert.Equal(t, 120, out.Routines[0].Score)
}
