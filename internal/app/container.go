// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/infra/ai"
	"github.com/mtamigo/focus/internal/infra/config"
	"github.com/mtamigo/focus/internal/infra/jsonstore"
	"github.com/mtamigo/focus/internal/infra/logging"
	"github.com/mtamigo/focus/internal/usecase"
)

// Paths holds the resolved filesystem locations the app works with.
type Paths struct {
	DataDir   string // e.g. ~/.local/share/focus
	StorePath string // Path to focus.json
}

// dataDir resolves the data directory (XDG_DATA_HOME/focus or
// ~/.local/share/focus).
func dataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "focus"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "focus"), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Routines         domain.RoutineRepository
	History          domain.HistoryRepository
	Anchors          domain.AnchorRepository
	Capacities       domain.CapacityRepository
	StoreInitializer domain.StoreInitializer
	Prioritizer      domain.Prioritizer // nil when AI is disabled
	Clock            domain.Clock
	ConfigLoader     domain.ConfigLoader
	Logger           domain.Logger

	// Loaded configuration snapshot
	AppConfig *domain.Config

	// Resolved paths
	Paths Paths
}

// New creates a new Container with the default store and config
// locations.
func New() (*Container, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	paths := Paths{
		DataDir:   dir,
		StorePath: filepath.Join(dir, "focus.json"),
	}

	configLoader := config.NewLoader()
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store := jsonstore.New(paths.StorePath)
	logger := logging.New(paths.DataDir, logging.ParseLevel(appConfig.Log.Level))

	var prioritizer domain.Prioritizer
	if appConfig.AI.Enabled && appConfig.AI.Endpoint != "" {
		prioritizer = ai.New(appConfig.AI.Endpoint, appConfig.AI.APIKey)
	}

	return &Container{
		Tasks:            store,
		Routines:         jsonstore.RoutineStore{Store: store},
		History:          jsonstore.HistoryStore{Store: store},
		Anchors:          jsonstore.AnchorStore{Store: store},
		Capacities:       jsonstore.CapacityStore{Store: store},
		StoreInitializer: store,
		Prioritizer:      prioritizer,
		Clock:            domain.RealClock{},
		ConfigLoader:     configLoader,
		Logger:           logger,
		AppConfig:        appConfig,
		Paths:            paths,
	}, nil
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.Logger)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clock, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Anchors, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.Tasks, c.Logger)
}

// CurrentTaskUseCase returns a new CurrentTask use case.
func (c *Container) CurrentTaskUseCase() *usecase.CurrentTask {
	return usecase.NewCurrentTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ReorderTasksUseCase returns a new ReorderTasks use case.
func (c *Container) ReorderTasksUseCase() *usecase.ReorderTasks {
	return usecase.NewReorderTasks(c.Tasks, c.Prioritizer, c.Logger)
}

// NewRoutineUseCase returns a new NewRoutine use case.
func (c *Container) NewRoutineUseCase() *usecase.NewRoutine {
	return usecase.NewNewRoutine(c.Routines, c.Clock, c.Logger)
}

// ToggleRoutineUseCase returns a new ToggleRoutine use case.
func (c *Container) ToggleRoutineUseCase() *usecase.ToggleRoutine {
	return usecase.NewToggleRoutine(c.Routines, c.Logger)
}

// DeleteRoutineUseCase returns a new DeleteRoutine use case.
func (c *Container) DeleteRoutineUseCase() *usecase.DeleteRoutine {
	return usecase.NewDeleteRoutine(c.Routines, c.Logger)
}

// ListRoutinesUseCase returns a new ListRoutines use case.
func (c *Container) ListRoutinesUseCase() *usecase.ListRoutines {
	return usecase.NewListRoutines(c.Routines, c.History, c.Clock)
}

// RecordCompletionUseCase returns a new RecordCompletion use case.
func (c *Container) RecordCompletionUseCase() *usecase.RecordCompletion {
	return usecase.NewRecordCompletion(c.Routines, c.History, c.Clock, c.Logger)
}

// SetCapacityUseCase returns a new SetCapacity use case.
func (c *Container) SetCapacityUseCase() *usecase.SetCapacity {
	return usecase.NewSetCapacity(c.Capacities, c.Logger)
}

// ShowCapacityUseCase returns a new ShowCapacity use case.
func (c *Container) ShowCapacityUseCase() *usecase.ShowCapacity {
	return usecase.NewShowCapacity(c.Capacities, c.ConfigLoader)
}

// NewAnchorUseCase returns a new NewAnchor use case.
func (c *Container) NewAnchorUseCase() *usecase.NewAnchor {
	return usecase.NewNewAnchor(c.Anchors, c.Logger)
}

// DeleteAnchorUseCase returns a new DeleteAnchor use case.
func (c *Container) DeleteAnchorUseCase() *usecase.DeleteAnchor {
	return usecase.NewDeleteAnchor(c.Anchors, c.Logger)
}

// ListAnchorsUseCase returns a new ListAnchors use case.
func (c *Container) ListAnchorsUseCase() *usecase.ListAnchors {
	return usecase.NewListAnchors(c.Anchors)
}

// ImportAnchorsUseCase returns a new ImportAnchors use case.
func (c *Container) ImportAnchorsUseCase() *usecase.ImportAnchors {
	return usecase.NewImportAnchors(c.Anchors, c.Logger)
}

// SeedAnchorsUseCase returns a new SeedAnchors use case.
func (c *Container) SeedAnchorsUseCase() *usecase.SeedAnchors {
	return usecase.NewSeedAnchors(c.Anchors, c.Logger)
}

// PlanDayUseCase returns a new PlanDay use case.
func (c *Container) PlanDayUseCase() *usecase.PlanDay {
	return usecase.NewPlanDay(c.Routines, c.Tasks, c.History, c.Capacities, c.ConfigLoader, c.Clock, c.Logger)
}

// DayScheduleUseCase returns a new DaySchedule use case.
func (c *Container) DayScheduleUseCase() *usecase.DaySchedule {
	return usecase.NewDaySchedule(c.Tasks, c.Anchors, c.Clock)
}

// CheckInterruptUseCase returns a new CheckInterrupt use case.
func (c *Container) CheckInterruptUseCase() *usecase.CheckInterrupt {
	return usecase.NewCheckInterrupt(c.Anchors, c.Clock)
}
