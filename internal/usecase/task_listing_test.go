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

func TestListTasks_Execute(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Later thing", Urgency: domain.UrgencyLater, Created: created}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Urgent thing", Urgency: domain.UrgencyNow, Created: created}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Done thing", Urgency: domain.UrgencyNow, Created: created, Completed: true}

	uc := NewListTasks(repo)

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 2, out.Tasks[0].ID)
	assert.Equal(t, 1, out.Tasks[1].ID)

	out, err = uc.Execute(context.Background(), ListTasksInput{IncludeCompleted: true})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, 3, out.Tasks[2].ID)
}

func TestCurrentTask_Execute(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	repo := testutil.NewMockTaskRepository()
	rank := 1
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Ranked", Urgency: domain.UrgencyLater, Created: created, PriorityRank: &rank}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Urgent but unranked", Urgency: domain.UrgencyNow, Created: created}

	uc := NewCurrentTask(repo)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// An explicit rank beats urgency.
	require.NotNil(t, out.Task)
	assert.Equal(t, 1, out.Task.ID)
}

func TestCurrentTask_Execute_EmptySet(t *testing.T) {
	uc := NewCurrentTask(testutil.NewMockTaskRepository())
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Task)
}

func TestDeleteTask_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Doomed"}

	uc := NewDeleteTask(repo, testutil.NopLogger{})
	require.NoError(t, uc.Execute(context.Background(), DeleteTaskInput{TaskID: 1}))
	assert.Empty(t, repo.Tasks)

	err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 1})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestClearCompleted_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "Pending"}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "Done", Completed: true}
	repo.Tasks[3] = &domain.Task{ID: 3, Title: "Also done", Completed: true}

	uc := NewClearCompleted(repo, testutil.NopLogger{})
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Removed)
	assert.Len(t, repo.Tasks, 1)
}
