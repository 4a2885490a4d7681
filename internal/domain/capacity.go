package domain

import (
	"fmt"
	"time"
)

// DayKind selects which capacity and work-window settings apply.
type DayKind string

const (
	Weekday DayKind = "weekday"
	Weekend DayKind = "weekend"
)

// DayKindFor returns the day kind for a date (Sat/Sun = weekend).
func DayKindFor(t time.Time) DayKind {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// TimeCapacity is the focus window available for allocation on one
// kind of day. TotalMinutes is caller-supplied and stored as given; it
// is not re-derived from the window bounds, so Validate exposes any
// inconsistency without rejecting it.
// Fields are ordered to minimize memory padding.
type TimeCapacity struct {
	Start        int `json:"start"`        // Window start, minutes since midnight
	End          int `json:"end"`          // Window end, minutes since midnight
	TotalMinutes int `json:"totalMinutes"` // Advertised focus minutes
}

// Validate reports whether the advertised total disagrees with the
// window bounds. The capacity is still usable either way.
func (c TimeCapacity) Validate() error {
	if span := c.End - c.Start; span != c.TotalMinutes {
		return fmt.Errorf("%w: window spans %d min, total says %d", ErrCapacityMismatch, span, c.TotalMinutes)
	}
	return nil
}

// DefaultCapacity returns the built-in focus window for the day kind:
// weekday evenings 18:00-22:00, weekend mornings 09:00-15:00.
func DefaultCapacity(kind DayKind) TimeCapacity {
	if kind == Weekend {
		return TimeCapacity{Start: 9 * 60, End: 15 * 60, TotalMinutes: 360}
	}
	return TimeCapacity{Start: 18 * 60, End: 22 * 60, TotalMinutes: 240}
}

// WorkWindow bounds the day-schedule builder: the span of the day that
// gaps between anchors are carved out of.
type WorkWindow struct {
	Start int // minutes since midnight
	End   int // minutes since midnight
}

// DefaultWorkWindow returns the built-in gap-scheduling bounds:
// weekdays 08:30-17:30, weekends 11:00-20:00.
func DefaultWorkWindow(kind DayKind) WorkWindow {
	if kind == Weekend {
		return WorkWindow{Start: 11 * 60, End: 20 * 60}
	}
	return WorkWindow{Start: 8*60 + 30, End: 17*60 + 30}
}
