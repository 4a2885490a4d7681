package domain

import "time"

// BlockKind distinguishes what a scheduled block was allocated for.
type BlockKind string

const (
	BlockTask    BlockKind = "task"
	BlockRoutine BlockKind = "routine"
)

// Block is a scheduled interval assigned to a task or a routine.
// Blocks are a derived view recomputed on every planning cycle; the
// task and routine records stay authoritative.
// Fields are ordered to minimize memory padding.
type Block struct {
	Title    string    `json:"title"`            // Display title
	Kind     BlockKind `json:"kind"`             // task or routine
	Reason   string    `json:"reason,omitempty"` // Human-readable allocation explanation
	SourceID int       `json:"sourceID"`         // Task or routine ID the block was cut for
	Start    int       `json:"start"`            // Start, minutes since midnight (0 when unplaced)
	End      int       `json:"end"`              // End, minutes since midnight (0 when unplaced)
	Minutes  int       `json:"minutes"`          // Block duration
}

// Plan is the output of the capacity allocator: blocks in emission
// order plus the capacity accounting.
type Plan struct {
	Date             time.Time `json:"date"`
	Blocks           []Block   `json:"blocks"`
	TotalMinutes     int       `json:"totalMinutes"`
	AllocatedMinutes int       `json:"allocatedMinutes"`
	RemainingMinutes int       `json:"remainingMinutes"`
}

// ScheduleEntry is one row of the merged day schedule: either a fixed
// calendar anchor or a task block packed into a gap.
// Fields are ordered to minimize memory padding.
type ScheduleEntry struct {
	Title    string         `json:"title"`
	Category AnchorCategory `json:"category,omitempty"` // Set for fixed entries
	Urgency  Urgency        `json:"urgency,omitempty"`  // Set for task entries
	SourceID int            `json:"sourceID"`           // Anchor or task ID
	Start    int            `json:"start"`              // Start, minutes since midnight
	End      int            `json:"end"`                // End, minutes since midnight
	Fixed    bool           `json:"fixed"`              // True for calendar anchors
}

// Interrupt is an imminent fixed anchor raised at a completion event
// or render tick. It suspends the normal next-task presentation until
// acknowledged or snoozed.
type Interrupt struct {
	Anchor       CalendarAnchor `json:"anchor"`
	MinutesUntil int            `json:"minutesUntil"`
}
