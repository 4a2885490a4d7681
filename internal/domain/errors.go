package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrAnchorNotFound   = errors.New("anchor not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidClock     = errors.New("invalid clock time, expected HH:MM")
	ErrCapacityMismatch = errors.New("capacity total disagrees with window bounds")
	ErrInvalidFrequency = errors.New("frequency must be between 1 and 7")
	ErrInvalidMinutes   = errors.New("minutes must be positive")
	ErrNotInitialized   = errors.New("focus store not initialized (run 'focus init' first)")
	ErrUnknownTaskID    = errors.New("reorder sequence references unknown task")
)
