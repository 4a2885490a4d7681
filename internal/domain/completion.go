package domain

import "time"

// CompletionRecord is an immutable fact that a routine session was
// finished. Records are append-only; they are never mutated or deleted
// except by a full data reset.
// Fields are ordered to minimize memory padding.
type CompletionRecord struct {
	At        time.Time `json:"at"`        // When the session finished
	ID        int       `json:"-"`         // Record ID (stored as map key, not in value)
	RoutineID int       `json:"routineID"` // The routine this record belongs to
	Minutes   int       `json:"minutes"`   // Actual minutes spent
}

// CountRecentCompletions counts records for the routine within the
// trailing seven days of ref, inclusive.
func CountRecentCompletions(history []CompletionRecord, routineID int, ref time.Time) int {
	cutoff := ref.AddDate(0, 0, -7)
	n := 0
	for _, rec := range history {
		if rec.RoutineID == routineID && !rec.At.Before(cutoff) && !rec.At.After(ref) {
			n++
		}
	}
	return n
}

// CountWeekCompletions counts records for the routine since the most
// recent Sunday 00:00 relative to ref (the scoring week boundary).
func CountWeekCompletions(history []CompletionRecord, routineID int, ref time.Time) int {
	weekStart := StartOfWeek(ref)
	n := 0
	for _, rec := range history {
		if rec.RoutineID == routineID && !rec.At.Before(weekStart) && !rec.At.After(ref) {
			n++
		}
	}
	return n
}

// StartOfWeek returns midnight of the most recent Sunday relative to t
// in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
