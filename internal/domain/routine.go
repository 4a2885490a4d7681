// Package domain contains core business entities and interfaces.
package domain

import "time"

// Priority is the user-assigned importance tier of a routine.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// BaseScore returns the scoring baseline for the tier.
// Unknown tiers score as medium, matching the defaulting policy for
// malformed input.
func (p Priority) BaseScore() int {
	switch p {
	case PriorityHigh:
		return 100
	case PriorityMedium:
		return 50
	case PriorityLow:
		return 20
	default:
		return 50
	}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// MentalLoad classifies how demanding a routine session is. It maps to
// a default session duration used when no completion history exists.
type MentalLoad string

const (
	LoadHeavy  MentalLoad = "heavy"
	LoadMedium MentalLoad = "medium"
	LoadLight  MentalLoad = "light"
)

// DefaultMinutes returns the default session duration for the load
// class. Unknown classes default to a medium session.
func (m MentalLoad) DefaultMinutes() int {
	switch m {
	case LoadHeavy:
		return 90
	case LoadMedium:
		return 60
	case LoadLight:
		return 30
	default:
		return 60
	}
}

// IsValid returns true if the mental load is a known value.
func (m MentalLoad) IsValid() bool {
	switch m {
	case LoadHeavy, LoadMedium, LoadLight:
		return true
	default:
		return false
	}
}

// TimePreference is a routine's preferred time-of-day tag.
type TimePreference string

const (
	PreferMorning   TimePreference = "morning"
	PreferAfternoon TimePreference = "afternoon"
	PreferEvening   TimePreference = "evening"
	PreferWeekend   TimePreference = "weekend"
	PreferAnytime   TimePreference = "anytime"
)

// Routine is a recurring focus activity scheduled on a weekly
// frequency basis.
// Fields are ordered to minimize memory padding.
type Routine struct {
	Created       time.Time      `json:"created"`                 // Creation time
	LastCompleted *time.Time     `json:"lastCompleted,omitempty"` // Most recent completion (nil = never)
	AvgMinutes    *int           `json:"avgMinutes,omitempty"`    // Rolling mean of completion minutes (nil = no history)
	Title         string         `json:"title"`                   // Title (required)
	Priority      Priority       `json:"priority"`                // Importance tier
	Category      string         `json:"category,omitempty"`      // Free-form category (work, learning, health, ...)
	MentalLoad    MentalLoad     `json:"mentalLoad"`              // Session weight class
	PreferredTime TimePreference `json:"preferredTime,omitempty"` // Preferred time of day
	ID            int            `json:"-"`                       // Routine ID (stored as map key, not in value)
	Frequency     int            `json:"frequency"`               // Target completions per week (1-7)
	Active        bool           `json:"active"`                  // Inactive routines are never allocated
}

// IdealMinutes returns the session length the allocator aims for:
// the learned rolling average when present, otherwise the mental-load
// default.
func (r *Routine) IdealMinutes() int {
	if r.AvgMinutes != nil && *r.AvgMinutes > 0 {
		return *r.AvgMinutes
	}
	return r.MentalLoad.DefaultMinutes()
}
