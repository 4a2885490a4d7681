package planner

import (
	"time"

	"github.com/mtamigo/focus/internal/domain"
)

// DefaultLookaheadMinutes is how far ahead the interrupt detector
// looks for an imminent anchor.
const DefaultLookaheadMinutes = 15

// NextImminentAnchor returns the first anchor active on now's weekday
// that starts within the lookahead (exclusive of anchors already
// started). Anchors are checked in input order, not start order; with
// overlapping lookaheads the earlier-listed anchor wins. Returns nil
// when nothing qualifies.
func NextImminentAnchor(anchors []*domain.CalendarAnchor, now time.Time, lookaheadMinutes int) *domain.Interrupt {
	if lookaheadMinutes <= 0 {
		lookaheadMinutes = DefaultLookaheadMinutes
	}
	nowMinutes := domain.MinutesSinceMidnight(now)
	day := now.Weekday()

	for _, anchor := range anchors {
		if !anchor.ActiveOn(day) {
			continue
		}
		until := anchor.Start - nowMinutes
		if until > 0 && until <= lookaheadMinutes {
			return &domain.Interrupt{Anchor: *anchor, MinutesUntil: until}
		}
	}
	return nil
}
