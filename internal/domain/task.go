package domain

import "time"

// Urgency is the coarse scheduling tier of a one-time task.
type Urgency string

const (
	UrgencyNow   Urgency = "now"
	UrgencySoon  Urgency = "soon"
	UrgencyLater Urgency = "later"
)

// Order returns the sort position of the urgency (now < soon < later).
// Unknown values sort after later so malformed input never jumps the
// queue.
func (u Urgency) Order() int {
	switch u {
	case UrgencyNow:
		return 0
	case UrgencySoon:
		return 1
	case UrgencyLater:
		return 2
	default:
		return 3
	}
}

// IsValid returns true if the urgency is a known value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyNow, UrgencySoon, UrgencyLater:
		return true
	default:
		return false
	}
}

// DefaultTaskMinutes is the assumed duration for a task without an
// estimate.
const DefaultTaskMinutes = 30

// Task is a one-time, non-recurring item of work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created        time.Time  `json:"created"`                    // Creation time
	CompletedAt    *time.Time `json:"completedAt,omitempty"`      // Completion time (nil = pending)
	Deadline       *time.Time `json:"deadline,omitempty"`         // Optional hard deadline date
	PriorityRank   *int       `json:"priorityRank,omitempty"`     // Explicit rank, lower = more important (nil = unranked)
	Title          string     `json:"title"`                      // Title (required)
	Urgency        Urgency    `json:"urgency"`                    // Scheduling tier
	Category       string     `json:"category,omitempty"`         // Free-form category
	PriorityReason string     `json:"priorityReason,omitempty"`   // Why the rank was assigned
	Insight        string     `json:"insight,omitempty"`          // One-line note from task analysis
	DeadlineText   string     `json:"deadlineText,omitempty"`     // Deadline as the user phrased it
	ID             int        `json:"-"`                          // Task ID (stored as map key, not in value)
	EstimatedMin   int        `json:"estimatedMinutes,omitempty"` // Estimated minutes (0 = use default)
	Completed      bool       `json:"completed"`                  // Completion flag
}

// Minutes returns the task's estimated duration, defaulting when the
// estimate is absent.
func (t *Task) Minutes() int {
	if t.EstimatedMin > 0 {
		return t.EstimatedMin
	}
	return DefaultTaskMinutes
}
