// Package jsonstore provides a JSON file-based implementation of the
// focus repositories.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"syscall"
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Tasks    map[string]*domain.Task             `json:"tasks"`
	Routines map[string]*domain.Routine          `json:"routines"`
	History  map[string]*domain.CompletionRecord `json:"history"`
	Anchors  map[string]*domain.CalendarAnchor   `json:"anchors"`
	Capacity map[string]*domain.TimeCapacity     `json:"capacity"`
	Meta     meta                                `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID    int `json:"nextTaskID"`
	NextRoutineID int `json:"nextRoutineID"`
	NextAnchorID  int `json:"nextAnchorID"`
	NextRecordID  int `json:"nextRecordID"`
}

// Store implements the focus repositories using a single JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(emptyData())
}

func emptyData() *storeData {
	return &storeData{
		Tasks:    make(map[string]*domain.Task),
		Routines: make(map[string]*domain.Routine),
		History:  make(map[string]*domain.CompletionRecord),
		Anchors:  make(map[string]*domain.CalendarAnchor),
		Capacity: make(map[string]*domain.TimeCapacity),
		Meta:     meta{NextTaskID: 1, NextRoutineID: 1, NextAnchorID: 1, NextRecordID: 1},
	}
}

// === Tasks ===

// Get retrieves a task by ID.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		if t, ok := data.Tasks[strconv.Itoa(id)]; ok {
			task = t
			task.ID = id
		}
		return nil
	})
	return task, err
}

// List retrieves all tasks ordered by ID.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		for key, t := range data.Tasks {
			id, _ := strconv.Atoi(key)
			t.ID = id
			tasks = append(tasks, t)
		}
		return nil
	})

	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.ID - b.ID
	})
	return tasks, err
}

// Save creates or updates a task.
func (s *Store) Save(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks[strconv.Itoa(task.ID)] = task
		return nil
	})
}

// Delete removes a task by ID.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Tasks, strconv.Itoa(id))
		return nil
	})
}

// DeleteCompleted removes all completed tasks and returns the count.
func (s *Store) DeleteCompleted() (int, error) {
	removed := 0
	err := s.withLockWrite(func(data *storeData) error {
		for key, t := range data.Tasks {
			if t.Completed {
				delete(data.Tasks, key)
				removed++
			}
		}
		return nil
	})
	return removed, err
}

// NextID returns the next available task ID.
func (s *Store) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		return nil
	})
	return id, err
}

// === Routines ===

// RoutineStore exposes the routine side of the store under its own
// name so the container can hand out narrow interfaces.
type RoutineStore struct{ *Store }

// Get retrieves a routine by ID.
func (s RoutineStore) Get(id int) (*domain.Routine, error) {
	var routine *domain.Routine
	err := s.withLock(func(data *storeData) error {
		if r, ok := data.Routines[strconv.Itoa(id)]; ok {
			routine = r
			routine.ID = id
		}
		return nil
	})
	return routine, err
}

// List retrieves all routines ordered by ID.
func (s RoutineStore) List() ([]*domain.Routine, error) {
	var routines []*domain.Routine
	err := s.withLock(func(data *storeData) error {
		for key, r := range data.Routines {
			id, _ := strconv.Atoi(key)
			r.ID = id
			routines = append(routines, r)
		}
		return nil
	})

	slices.SortFunc(routines, func(a, b *domain.Routine) int {
		return a.ID - b.ID
	})
	return routines, err
}

// Save creates or updates a routine.
func (s RoutineStore) Save(routine *domain.Routine) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Routines[strconv.Itoa(routine.ID)] = routine
		return nil
	})
}

// Delete removes a routine by ID.
func (s RoutineStore) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Routines, strconv.Itoa(id))
		return nil
	})
}

// NextID returns the next available routine ID.
func (s RoutineStore) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextRoutineID
		data.Meta.NextRoutineID++
		return nil
	})
	return id, err
}

// === Completion history ===

// HistoryStore exposes the append-only completion history.
type HistoryStore struct{ *Store }

// List retrieves all completion records ordered by ID.
func (s HistoryStore) List() ([]domain.CompletionRecord, error) {
	var records []domain.CompletionRecord
	err := s.withLock(func(data *storeData) error {
		for key, rec := range data.History {
			id, _ := strconv.Atoi(key)
			r := *rec
			r.ID = id
			records = append(records, r)
		}
		return nil
	})

	slices.SortFunc(records, func(a, b domain.CompletionRecord) int {
		return a.ID - b.ID
	})
	return records, err
}

// ListForRoutine retrieves one routine's records ordered by ID.
func (s HistoryStore) ListForRoutine(routineID int) ([]domain.CompletionRecord, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var records []domain.CompletionRecord
	for _, rec := range all {
		if rec.RoutineID == routineID {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Append adds a record to the history and returns it with its
// assigned ID.
func (s HistoryStore) Append(record domain.CompletionRecord) (domain.CompletionRecord, error) {
	err := s.withLockWrite(func(data *storeData) error {
		record.ID = data.Meta.NextRecordID
		data.Meta.NextRecordID++
		stored := record
		data.History[strconv.Itoa(record.ID)] = &stored
		return nil
	})
	return record, err
}

// === Calendar anchors ===

// AnchorStore exposes the fixed calendar anchors.
type AnchorStore struct{ *Store }

// List retrieves all anchors ordered by ID.
func (s AnchorStore) List() ([]*domain.CalendarAnchor, error) {
	var anchors []*domain.CalendarAnchor
	err := s.withLock(func(data *storeData) error {
		for key, a := range data.Anchors {
			id, _ := strconv.Atoi(key)
			a.ID = id
			anchors = append(anchors, a)
		}
		return nil
	})

	slices.SortFunc(anchors, func(a, b *domain.CalendarAnchor) int {
		return a.ID - b.ID
	})
	return anchors, err
}

// ListFor retrieves anchors active on the weekday, ordered by ID.
func (s AnchorStore) ListFor(day time.Weekday) ([]*domain.CalendarAnchor, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var anchors []*domain.CalendarAnchor
	for _, a := range all {
		if a.ActiveOn(day) {
			anchors = append(anchors, a)
		}
	}
	return anchors, nil
}

// Save creates or updates an anchor.
func (s AnchorStore) Save(anchor *domain.CalendarAnchor) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Anchors[strconv.Itoa(anchor.ID)] = anchor
		return nil
	})
}

// Delete removes an anchor by ID.
func (s AnchorStore) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		delete(data.Anchors, strconv.Itoa(id))
		return nil
	})
}

// NextID returns the next available anchor ID.
func (s AnchorStore) NextID() (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextAnchorID
		data.Meta.NextAnchorID++
		return nil
	})
	return id, err
}

// === Capacity ===

// CapacityStore exposes the per-day-kind capacity overrides.
type CapacityStore struct{ *Store }

// Get retrieves the capacity override for the day kind, nil when none
// is stored.
func (s CapacityStore) Get(kind domain.DayKind) (*domain.TimeCapacity, error) {
	var capacity *domain.TimeCapacity
	err := s.withLock(func(data *storeData) error {
		if c, ok := data.Capacity[string(kind)]; ok {
			capacity = c
		}
		return nil
	})
	return capacity, err
}

// Set stores the capacity override for the day kind.
func (s CapacityStore) Set(kind domain.DayKind, capacity domain.TimeCapacity) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Capacity[string(kind)] = &capacity
		return nil
	})
}

// === File plumbing ===

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes
// the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	// Ensure maps are initialized
	if data.Tasks == nil {
		data.Tasks = make(map[string]*domain.Task)
	}
	if data.Routines == nil {
		data.Routines = make(map[string]*domain.Routine)
	}
	if data.History == nil {
		data.History = make(map[string]*domain.CompletionRecord)
	}
	if data.Anchors == nil {
		data.Anchors = make(map[string]*domain.CalendarAnchor)
	}
	if data.Capacity == nil {
		data.Capacity = make(map[string]*domain.TimeCapacity)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure the store satisfies the repository ports.
var (
	_ domain.TaskRepository     = (*Store)(nil)
	_ domain.RoutineRepository  = RoutineStore{}
	_ domain.HistoryRepository  = HistoryStore{}
	_ domain.AnchorRepository   = AnchorStore{}
	_ domain.CapacityRepository = CapacityStore{}
	_ domain.StoreInitializer   = (*Store)(nil)
)
