package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtamigo/focus/internal/app"
	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/testutil"
)

// fixture bundles a container wired to mocks with its repositories.
type fixture struct {
	container *app.Container
	tasks     *testutil.MockTaskRepository
	routines  *testutil.MockRoutineRepository
	anchors   *testutil.MockAnchorRepository
	clock     *testutil.MockClock
}

func newFixture() *fixture {
	tasks := testutil.NewMockTaskRepository()
	routines := testutil.NewMockRoutineRepository()
	anchors := testutil.NewMockAnchorRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

	c := &app.Container{
		Tasks:            tasks,
		Routines:         routines,
		History:          testutil.NewMockHistoryRepository(),
		Anchors:          anchors,
		Capacities:       testutil.NewMockCapacityRepository(),
		StoreInitializer: &testutil.MockStoreInitializer{},
		Clock:            clock,
		ConfigLoader:     &testutil.MockConfigLoader{},
		Logger:           testutil.NopLogger{},
		AppConfig:        domain.NewDefaultConfig(),
	}
	return &fixture{container: c, tasks: tasks, routines: routines, anchors: anchors, clock: clock}
}

// execute runs the root command with args and returns its output.
func (f *fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(f.container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTaskAddAndList(t *testing.T) {
	f := newFixture()

	out, err := f.execute(t, "task", "add", "Write report", "--urgency", "now", "--minutes", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "Created task #1")

	out, err = f.execute(t, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "now")
	assert.Contains(t, out, "45")
}

func TestTaskDoneShowsNext(t *testing.T) {
	f := newFixture()
	f.tasks.Tasks[1] = &domain.Task{ID: 1, Title: "First", Urgency: domain.UrgencyNow}
	f.tasks.Tasks[2] = &domain.Task{ID: 2, Title: "Second", Urgency: domain.UrgencySoon}
	f.tasks.NextIDN = 3

	out, err := f.execute(t, "task", "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed task #1")
	assert.Contains(t, out, "Next up: #2 Second")
}

func TestTaskDoneSurfacesInterrupt(t *testing.T) {
	f := newFixture()
	// Monday 12:20; lunch at 12:30.
	f.clock.NowTime = time.Date(2025, 3, 10, 12, 20, 0, 0, time.UTC)
	f.tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Only task"}
	f.anchors.Anchors[1] = &domain.CalendarAnchor{
		ID: 1, Title: "Lunch Break", Days: []time.Weekday{time.Monday},
		Start: 12*60 + 30, End: 13*60 + 30,
	}

	out, err := f.execute(t, "task", "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch Break starts in 10 min")
}

func TestTaskNotFoundError(t *testing.T) {
	f := newFixture()
	_, err := f.execute(t, "task", "done", "42")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRoutineAddAndList(t *testing.T) {
	f := newFixture()

	out, err := f.execute(t, "routine", "add", "Deep Work",
		"--priority", "high", "--load", "heavy", "--frequency", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Created routine #1")

	out, err = f.execute(t, "routine", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Deep Work")
	assert.Contains(t, out, "170") // 100 base + full frequency debt
}

func TestRoutineDoneUpdatesAverage(t *testing.T) {
	f := newFixture()
	f.routines.Routines[1] = &domain.Routine{ID: 1, Title: "Deep Work", Active: true}
	f.routines.NextIDN = 2

	out, err := f.execute(t, "routine", "done", "1", "--minutes", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "average now 75 min")
}

func TestCapacitySetAndShow(t *testing.T) {
	f := newFixture()

	out, err := f.execute(t, "capacity", "set", "weekday", "19:00", "23:00")
	require.NoError(t, err)
	assert.Contains(t, out, "19:00-23:00")

	out, err = f.execute(t, "capacity", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "override")
	assert.Contains(t, out, "default")
}

func TestAnchorSeedAndList(t *testing.T) {
	f := newFixture()

	out, err := f.execute(t, "anchor", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 13")

	out, err = f.execute(t, "anchor", "list", "--day", "monday")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch Break")
	assert.NotContains(t, out, "Brunch") // weekend-only
}

func TestPlanOutput(t *testing.T) {
	f := newFixture()
	f.routines.Routines[1] = &domain.Routine{
		ID: 1, Title: "Deep Work",
		Priority: domain.PriorityHigh, MentalLoad: domain.LoadHeavy,
		Frequency: 5, Active: true,
	}
	f.routines.NextIDN = 2

	out, err := f.execute(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "240 min budget")
	assert.Contains(t, out, "Deep Work")
	assert.Contains(t, out, "High priority task")
}

func TestPlanBadDate(t *testing.T) {
	f := newFixture()
	_, err := f.execute(t, "plan", "--date", "soonish")
	require.Error(t, err)
}

func TestTodayTable(t *testing.T) {
	f := newFixture()
	f.tasks.Tasks[1] = &domain.Task{ID: 1, Title: "Write report", Urgency: domain.UrgencyNow, EstimatedMin: 60}
	f.anchors.Anchors[1] = &domain.CalendarAnchor{
		ID: 1, Title: "Lunch Break", Category: domain.AnchorMeal,
		Days:  []time.Weekday{time.Monday},
		Start: 12*60 + 30, End: 13*60 + 30,
	}

	out, err := f.execute(t, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Lunch Break")
}

func TestTodayWatchLaunches(t *testing.T) {
	f := newFixture()

	launched := false
	orig := launchWatchFunc
	launchWatchFunc = func(*app.Container) error {
		launched = true
		return nil
	}
	defer func() { launchWatchFunc = orig }()

	_, err := f.execute(t, "today", "--watch")
	require.NoError(t, err)
	assert.True(t, launched)
}

func TestInitSeedsWhenAsked(t *testing.T) {
	f := newFixture()

	out, err := f.execute(t, "init", "--seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized store")
	assert.Contains(t, out, "Seeded 13")
	assert.Len(t, f.anchors.Anchors, 13)
}

func TestReorderManual(t *testing.T) {
	f := newFixture()
	f.tasks.Tasks[1] = &domain.Task{ID: 1, Title: "First", Urgency: domain.UrgencyLater}
	f.tasks.Tasks[2] = &domain.Task{ID: 2, Title: "Second", Urgency: domain.UrgencyLater}
	f.tasks.NextIDN = 3

	out, err := f.execute(t, "task", "reorder", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Second")
	require.NotNil(t, f.tasks.Tasks[2].PriorityRank)
	assert.Equal(t, 1, *f.tasks.Tasks[2].PriorityRank)
}
