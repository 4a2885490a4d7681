package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/testutil"
)

func seedThreeTasks(repo *testutil.MockTaskRepository) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "First", Urgency: domain.UrgencyLater, Created: created}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Second", Urgency: domain.UrgencyNow, Created: created.Add(time.Hour)}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Third", Urgency: domain.UrgencySoon, Created: created.Add(2 * time.Hour)}
	repo.NextIDN = 4
}

func TestReorderTasks_Execute_Manual(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{Sequence: []int{3, 1, 2}})
	require.NoError(t, err)

	require.Len(t, out.Tasks, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{out.Tasks[0].ID, out.Tasks[1].ID, out.Tasks[2].ID})
	assert.False(t, out.UsedFallback)

	// Ranks are 1-based positions.
	require.NotNil(t, repo.Tasks[3].PriorityRank)
	assert.Equal(t, 1, *repo.Tasks[3].PriorityRank)
	assert.Equal(t, 2, *repo.Tasks[1].PriorityRank)
	assert.Equal(t, 3, *repo.Tasks[2].PriorityRank)

	// Urgency follows the position band: first two now, rest soon.
	assert.Equal(t, domain.UrgencyNow, repo.Tasks[3].Urgency)
	assert.Equal(t, domain.UrgencyNow, repo.Tasks[1].Urgency)
	assert.Equal(t, domain.UrgencySoon, repo.Tasks[2].Urgency)
}

func TestReorderTasks_Execute_Manual_PartialSequence(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{Sequence: []int{3}})
	require.NoError(t, err)

	// Unsequenced tasks keep their working order behind the sequenced one.
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, 3, out.Tasks[0].ID)
	assert.Equal(t, 2, out.Tasks[1].ID) // now beats soon in the local order
	assert.Equal(t, 1, out.Tasks[2].ID)
}

func TestReorderTasks_Execute_Manual_UnknownID(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	_, err := uc.Execute(context.Background(), ReorderTasksInput{Sequence: []int{1, 99}})
	assert.ErrorIs(t, err, domain.ErrUnknownTaskID)
}

func TestReorderTasks_Execute_Manual_DuplicateID(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	_, err := uc.Execute(context.Background(), ReorderTasksInput{Sequence: []int{1, 1}})
	assert.ErrorIs(t, err, domain.ErrUnknownTaskID)
}

func TestReorderTasks_Execute_AI(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	prioritizer := &testutil.MockPrioritizer{
		Result: []domain.RankedTask{
			{TaskID: 1, Rank: 1, Reason: "Blocks everything else"},
			{TaskID: 3, Rank: 2},
			{TaskID: 2, Rank: 3},
		},
	}

	uc := NewReorderTasks(repo, prioritizer, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{UseAI: true})
	require.NoError(t, err)

	assert.False(t, out.UsedFallback)
	assert.Equal(t, []int{1, 3, 2}, []int{out.Tasks[0].ID, out.Tasks[1].ID, out.Tasks[2].ID})
	assert.Equal(t, "Blocks everything else", repo.Tasks[1].PriorityReason)
	assert.Equal(t, 1, prioritizer.Calls)
}

func TestReorderTasks_Execute_AI_FallbackOnError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	prioritizer := &testutil.MockPrioritizer{Err: errors.New("service unavailable")}

	uc := NewReorderTasks(repo, prioritizer, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{UseAI: true})
	require.NoError(t, err)

	assert.True(t, out.UsedFallback)
	// Local deterministic order: now < soon < later.
	assert.Equal(t, []int{2, 3, 1}, []int{out.Tasks[0].ID, out.Tasks[1].ID, out.Tasks[2].ID})
	require.NotNil(t, repo.Tasks[2].PriorityRank)
	assert.Equal(t, 1, *repo.Tasks[2].PriorityRank)
}

func TestReorderTasks_Execute_AI_FallbackOnTimeout(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	prioritizer := &testutil.MockPrioritizer{Delay: time.Second}

	uc := NewReorderTasks(repo, prioritizer, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{UseAI: true, Timeout: 10 * time.Millisecond})
	require.NoError(t, err)
	assert.True(t, out.UsedFallback)
}

func TestReorderTasks_Execute_AI_FallbackOnBadID(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	prioritizer := &testutil.MockPrioritizer{
		Result: []domain.RankedTask{{TaskID: 42, Rank: 1}},
	}

	uc := NewReorderTasks(repo, prioritizer, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{UseAI: true})
	require.NoError(t, err)
	assert.True(t, out.UsedFallback)
}

func TestReorderTasks_Execute_AI_NilPrioritizerFallsBack(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{UseAI: true})
	require.NoError(t, err)
	assert.True(t, out.UsedFallback)
}

func TestReorderTasks_Execute_CompletedTasksUntouched(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedThreeTasks(repo)
	repo.Tasks[4] = &domain.Task{ID: 4, Title: "Done already", Completed: true}

	uc := NewReorderTasks(repo, nil, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), ReorderTasksInput{Sequence: []int{3, 2, 1}})
	require.NoError(t, err)

	assert.Len(t, out.Tasks, 3)
	assert.Nil(t, repo.Tasks[4].PriorityRank)
}
