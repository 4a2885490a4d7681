package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages one-time task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves all tasks ordered by ID.
	List() ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id int) error

	// DeleteCompleted removes all completed tasks and returns how many
	// were removed.
	DeleteCompleted() (int, error)

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// RoutineRepository manages routine persistence.
type RoutineRepository interface {
	// Get retrieves a routine by ID. Returns nil if not found.
	Get(id int) (*Routine, error)

	// List retrieves all routines ordered by ID.
	List() ([]*Routine, error)

	// Save creates or updates a routine.
	Save(routine *Routine) error

	// Delete removes a routine by ID.
	Delete(id int) error

	// NextID returns the next available routine ID.
	NextID() (int, error)
}

// HistoryRepository manages the append-only completion history.
type HistoryRepository interface {
	// List retrieves all completion records ordered by ID.
	List() ([]CompletionRecord, error)

	// ListForRoutine retrieves the records for one routine ordered by ID.
	ListForRoutine(routineID int) ([]CompletionRecord, error)

	// Append adds a record to the history and returns it with its
	// assigned ID.
	Append(record CompletionRecord) (CompletionRecord, error)
}

// AnchorRepository manages fixed calendar anchors.
type AnchorRepository interface {
	// List retrieves all anchors ordered by ID.
	List() ([]*CalendarAnchor, error)

	// ListFor retrieves anchors active on the given weekday, ordered
	// by ID.
	ListFor(day time.Weekday) ([]*CalendarAnchor, error)

	// Save creates or updates an anchor.
	Save(anchor *CalendarAnchor) error

	// Delete removes an anchor by ID.
	Delete(id int) error

	// NextID returns the next available anchor ID.
	NextID() (int, error)
}

// CapacityRepository manages per-day-kind focus window overrides.
type CapacityRepository interface {
	// Get retrieves the capacity for the day kind. Returns nil if no
	// override is stored (callers fall back to defaults).
	Get(kind DayKind) (*TimeCapacity, error)

	// Set stores the capacity for the day kind.
	Set(kind DayKind, capacity TimeCapacity) error
}

// RankedTask is one entry of a prioritizer result: the suggested
// position and tier for an existing task.
type RankedTask struct {
	Reason  string  // Why the task was ranked here
	Urgency Urgency // Suggested tier (empty = derive from position)
	TaskID  int
	Rank    int // 1-based, lower = more important
}

// Prioritizer suggests an ordering for pending tasks. Implementations
// are best-effort enrichment only: callers must fall back to the local
// deterministic ordering when the call fails or times out.
type Prioritizer interface {
	// Prioritize ranks the given tasks. The returned slice is ordered
	// by rank.
	Prioritize(ctx context.Context, tasks []*Task) ([]RankedTask, error)
}

// Logger writes categorized log messages.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- file).
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Weekday TimeCapacity // [capacity.weekday] focus window
	Weekend TimeCapacity // [capacity.weekend] focus window
	AI      AIConfig     // [ai] settings
	Log     LogConfig    // [log] settings
}

// AIConfig holds prioritizer settings from the [ai] section.
type AIConfig struct {
	Endpoint string        // Base URL of the prioritization service
	APIKey   string        // Bearer token (empty = unauthenticated)
	Timeout  time.Duration // Per-call budget before falling back
	Enabled  bool          // When false the local heuristic is always used
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Weekday: DefaultCapacity(Weekday),
		Weekend: DefaultCapacity(Weekend),
		AI: AIConfig{
			Timeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// CapacityFor returns the configured focus window for the day kind.
func (c *Config) CapacityFor(kind DayKind) TimeCapacity {
	if kind == Weekend {
		return c.Weekend
	}
	return c.Weekday
}
