package domain

import (
	"fmt"
	"time"
)

// AnchorCategory classifies a fixed calendar entry.
type AnchorCategory string

const (
	AnchorMeal    AnchorCategory = "meal"
	AnchorBreak   AnchorCategory = "break"
	AnchorRoutine AnchorCategory = "routine"
	AnchorOther   AnchorCategory = "other"
)

// IsValid returns true if the category is a known value.
func (c AnchorCategory) IsValid() bool {
	switch c {
	case AnchorMeal, AnchorBreak, AnchorRoutine, AnchorOther:
		return true
	default:
		return false
	}
}

// CalendarAnchor is an immovable fixed-time calendar entry (meal,
// commute, break). Anchors are only consumed by the scheduler, never
// produced by it.
// Fields are ordered to minimize memory padding.
type CalendarAnchor struct {
	Title    string         `json:"title"`    // Display title (required)
	Category AnchorCategory `json:"category"` // Entry classification
	Days     []time.Weekday `json:"days"`     // Weekdays the anchor applies to
	ID       int            `json:"-"`        // Anchor ID (stored as map key, not in value)
	Start    int            `json:"start"`    // Start, minutes since midnight
	End      int            `json:"end"`      // End, minutes since midnight
}

// ActiveOn returns true if the anchor applies on the given weekday.
func (a *CalendarAnchor) ActiveOn(day time.Weekday) bool {
	for _, d := range a.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ParseClock parses a "HH:MM" clock string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as a "HH:MM" clock
// string. Values are wrapped at 24 hours.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesSinceMidnight converts a wall-clock time to minutes since
// midnight in its location.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
