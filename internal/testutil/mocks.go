// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[int]*domain.Task
	SaveErr error
	GetErr  error
	ListErr error
	NextIDN int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int]*domain.Task),
		NextIDN: 1,
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns all tasks ordered by ID.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	delete(m.Tasks, id)
	return nil
}

// DeleteCompleted removes completed tasks and returns the count.
func (m *MockTaskRepository) DeleteCompleted() (int, error) {
	count := 0
	for id, t := range m.Tasks {
		if t.Completed {
			delete(m.Tasks, id)
			count++
		}
	}
	return count, nil
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockRoutineRepository is a test double for domain.RoutineRepository.
// Fields are ordered to minimize memory padding.
type MockRoutineRepository struct {
	Routines map[int]*domain.Routine
	SaveErr  error
	GetErr   error
	NextIDN  int
}

// NewMockRoutineRepository creates a new MockRoutineRepository with initialized maps.
func NewMockRoutineRepository() *MockRoutineRepository {
	return &MockRoutineRepository{
		Routines: make(map[int]*domain.Routine),
		NextIDN:  1,
	}
}

// Get retrieves a routine by ID.
func (m *MockRoutineRepository) Get(id int) (*domain.Routine, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	routine, ok := m.Routines[id]
	if !ok {
		return nil, nil
	}
	return routine, nil
}

// List returns all routines ordered by ID.
func (m *MockRoutineRepository) List() ([]*domain.Routine, error) {
	routines := make([]*domain.Routine, 0, len(m.Routines))
	for _, r := range m.Routines {
		routines = append(routines, r)
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].ID < routines[j].ID })
	return routines, nil
}

// Save saves a routine.
func (m *MockRoutineRepository) Save(routine *domain.Routine) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Routines[routine.ID] = routine
	return nil
}

// Delete removes a routine by ID.
func (m *MockRoutineRepository) Delete(id int) error {
	delete(m.Routines, id)
	return nil
}

// NextID returns the next available routine ID.
func (m *MockRoutineRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockHistoryRepository is a test double for domain.HistoryRepository.
// Fields are ordered to minimize memory padding.
type MockHistoryRepository struct {
	Records   []domain.CompletionRecord
	AppendErr error
	NextIDN   int
}

// NewMockHistoryRepository creates a new MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{NextIDN: 1}
}

// List returns all completion records.
func (m *MockHistoryRepository) List() ([]domain.CompletionRecord, error) {
	return append([]domain.CompletionRecord(nil), m.Records...), nil
}

// ListForRoutine returns the records for one routine.
func (m *MockHistoryRepository) ListForRoutine(routineID int) ([]domain.CompletionRecord, error) {
	var records []domain.CompletionRecord
	for _, r := range m.Records {
		if r.RoutineID == routineID {
			records = append(records, r)
		}
	}
	return records, nil
}

// Append adds a record and returns it with its assigned ID.
func (m *MockHistoryRepository) Append(record domain.CompletionRecord) (domain.CompletionRecord, error) {
	if m.AppendErr != nil {
		return domain.CompletionRecord{}, m.AppendErr
	}
	record.ID = m.NextIDN
	m.NextIDN++
	m.Records = append(m.Records, record)
	return record, nil
}

// MockAnchorRepository is a test double for domain.AnchorRepository.
// Fields are ordered to minimize memory padding.
type MockAnchorRepository struct {
	Anchors map[int]*domain.CalendarAnchor
	SaveErr error
	NextIDN int
}

// NewMockAnchorRepository creates a new MockAnchorRepository with initialized maps.
func NewMockAnchorRepository() *MockAnchorRepository {
	return &MockAnchorRepository{
		Anchors: make(map[int]*domain.CalendarAnchor),
		NextIDN: 1,
	}
}

// List returns all anchors ordered by ID.
func (m *MockAnchorRepository) List() ([]*domain.CalendarAnchor, error) {
	anchors := make([]*domain.CalendarAnchor, 0, len(m.Anchors))
	for _, a := range m.Anchors {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].ID < anchors[j].ID })
	return anchors, nil
}

// ListFor returns anchors active on the given weekday, ordered by ID.
func (m *MockAnchorRepository) ListFor(day time.Weekday) ([]*domain.CalendarAnchor, error) {
	all, _ := m.List()
	var anchors []*domain.CalendarAnchor
	for _, a := range all {
		if a.ActiveOn(day) {
			anchors = append(anchors, a)
		}
	}
	return anchors, nil
}

// Save saves an anchor.
func (m *MockAnchorRepository) Save(anchor *domain.CalendarAnchor) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Anchors[anchor.ID] = anchor
	return nil
}

// Delete removes an anchor by ID.
func (m *MockAnchorRepository) Delete(id int) error {
	delete(m.Anchors, id)
	return nil
}

// NextID returns the next available anchor ID.
func (m *MockAnchorRepository) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// MockCapacityRepository is a test double for domain.CapacityRepository.
type MockCapacityRepository struct {
	Overrides map[domain.DayKind]*domain.TimeCapacity
	SetErr    error
}

// NewMockCapacityRepository creates a new MockCapacityRepository with initialized maps.
func NewMockCapacityRepository() *MockCapacityRepository {
	return &MockCapacityRepository{
		Overrides: make(map[domain.DayKind]*domain.TimeCapacity),
	}
}

// Get retrieves the stored capacity override, or nil if absent.
func (m *MockCapacityRepository) Get(kind domain.DayKind) (*domain.TimeCapacity, error) {
	return m.Overrides[kind], nil
}

// Set stores the capacity for the day kind.
func (m *MockCapacityRepository) Set(kind domain.DayKind, capacity domain.TimeCapacity) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Overrides[kind] = &capacity
	return nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr error
	Inits   int
}

// Initialize records the call and returns the configured error.
func (m *MockStoreInitializer) Initialize() error {
	m.Inits++
	return m.InitErr
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config, defaulting when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cfg != nil {
		return m.Cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}

// MockPrioritizer is a test double for domain.Prioritizer.
// Fields are ordered to minimize memory padding.
type MockPrioritizer struct {
	Result []domain.RankedTask
	Err    error
	Delay  time.Duration
	Calls  int
}

// Prioritize returns the configured result after the configured delay.
func (m *MockPrioritizer) Prioritize(ctx context.Context, _ []*domain.Task) ([]domain.RankedTask, error) {
	m.Calls++
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// NopLogger is a no-op domain.Logger for tests.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(_, _ string) {}

// Info does nothing.
func (NopLogger) Info(_, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _ string) {}

// Interface assertions.
var (
	_ domain.Clock              = (*MockClock)(nil)
	_ domain.TaskRepository     = (*MockTaskRepository)(nil)
	_ domain.RoutineRepository  = (*MockRoutineRepository)(nil)
	_ domain.HistoryRepository  = (*MockHistoryRepository)(nil)
	_ domain.AnchorRepository   = (*MockAnchorRepository)(nil)
	_ domain.CapacityRepository = (*MockCapacityRepository)(nil)
	_ domain.StoreInitializer   = (*MockStoreInitializer)(nil)
	_ domain.ConfigLoader       = (*MockConfigLoader)(nil)
	_ domain.Prioritizer        = (*MockPrioritizer)(nil)
	_ domain.Logger             = (NopLogger{})
)
