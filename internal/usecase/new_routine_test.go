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

func TestNewRoutine_Execute(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   NewRoutineInput
		wantErr error
		check   func(t *testing.T, repo *testutil.MockRoutineRepository)
	}{
		{
			name:  "creates routine with defaults",
			input: NewRoutineInput{Title: "Deep Work", Frequency: 5},
			check: func(t *testing.T, repo *testutil.MockRoutineRepository) {
				r := repo.Routines[1]
				require.NotNil(t, r)
				assert.Equal(t, "Deep Work", r.Title)
				assert.Equal(t, domain.PriorityMedium, r.Priority)
				assert.Equal(t, domain.LoadMedium, r.MentalLoad)
				assert.Equal(t, 5, r.Frequency)
				assert.True(t, r.Active)
				assert.Equal(t, now, r.Created)
				assert.Nil(t, r.AvgMinutes)
			},
		},
		{
			name: "creates routine with explicit tiers",
			input: NewRoutineInput{
				Title:         "Japanese Study",
				Priority:      domain.PriorityHigh,
				Category:      "learning",
				MentalLoad:    domain.LoadHeavy,
				PreferredTime: domain.PreferEvening,
				Frequency:     3,
			},
			check: func(t *testing.T, repo *testutil.MockRoutineRepository) {
				r := repo.Routines[1]
				require.NotNil(t, r)
				assert.Equal(t, domain.PriorityHigh, r.Priority)
				assert.Equal(t, domain.LoadHeavy, r.MentalLoad)
				assert.Equal(t, domain.PreferEvening, r.PreferredTime)
				assert.Equal(t, 90, r.IdealMinutes())
			},
		},
		{
			name:    "rejects empty title",
			input:   NewRoutineInput{Frequency: 3},
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "rejects zero frequency",
			input:   NewRoutineInput{Title: "Routine"},
			wantErr: domain.ErrInvalidFrequency,
		},
		{
			name:    "rejects frequency above seven",
			input:   NewRoutineInput{Title: "Routine", Frequency: 8},
			wantErr: domain.ErrInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockRoutineRepository()
			uc := NewNewRoutine(repo, &testutil.MockClock{NowTime: now}, testutil.NopLogger{})

			_, err := uc.Execute(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, repo)
		})
	}
}

func TestToggleRoutine_Execute(t *testing.T) {
	repo := testutil.NewMockRoutineRepository()
	repo.Routines[1] = &domain.Routine{ID: 1, Title: "Deep Work", Active: true}

	uc := NewToggleRoutine(repo, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), ToggleRoutineInput{RoutineID: 1})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.False(t, repo.Routines[1].Active)

	out, err = uc.Execute(context.Background(), ToggleRoutineInput{RoutineID: 1})
	require.NoError(t, err)
	assert.True(t, out.Active)
}

func TestToggleRoutine_Execute_NotFound(t *testing.T) {
	uc := NewToggleRoutine(testutil.NewMockRoutineRepository(), testutil.NopLogger{})
	_, err := uc.Execute(context.Background(), ToggleRoutineInput{RoutineID: 9})
	assert.ErrorIs(t, err, domain.ErrRoutineNotFound)
}

func TestDeleteRoutine_Execute(t *testing.T) {
	repo := testutil.NewMockRoutineRepository()
	repo.Routines[1] = &domain.Routine{ID: 1, Title: "Deep Work"}

	uc := NewDeleteRoutine(repo, testutil.NopLogger{})
	require.NoError(t, uc.Execute(context.Background(), DeleteRoutineInput{RoutineID: 1}))
	assert.Empty(t, repo.Routines)

	err := uc.Execute(context.Background(), DeleteRoutineInput{RoutineID: 1})
	assert.ErrorIs(t, err, domain.ErrRoutineNotFound)
}
