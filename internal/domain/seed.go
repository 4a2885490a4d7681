package domain

import "time"

var mondayToFriday = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

var weekendDays = []time.Weekday{time.Sunday, time.Saturday}

// SeedAnchors returns the built-in calendar: a typical office weekday
// (commute, meals, breaks) and a lighter weekend set. IDs are assigned
// by the store when the seed is imported.
func SeedAnchors() []CalendarAnchor {
	return []CalendarAnchor{
		{Title: "Wake Up & Morning Routine", Start: 7 * 60, End: 7*60 + 30, Category: AnchorRoutine, Days: mondayToFriday},
		{Title: "Breakfast", Start: 7*60 + 30, End: 8 * 60, Category: AnchorMeal, Days: mondayToFriday},
		{Title: "Commute to Office", Start: 8 * 60, End: 8*60 + 30, Category: AnchorRoutine, Days: mondayToFriday},
		{Title: "Morning Coffee Break", Start: 10*60 + 30, End: 10*60 + 45, Category: AnchorBreak, Days: mondayToFriday},
		{Title: "Lunch Break", Start: 12*60 + 30, End: 13*60 + 30, Category: AnchorMeal, Days: mondayToFriday},
		{Title: "Afternoon Tea Break", Start: 15*60 + 30, End: 15*60 + 45, Category: AnchorBreak, Days: mondayToFriday},
		{Title: "Commute from Office", Start: 17*60 + 30, End: 18 * 60, Category: AnchorRoutine, Days: mondayToFriday},
		{Title: "Dinner", Start: 19*60 + 30, End: 20*60 + 30, Category: AnchorMeal, Days: mondayToFriday},
		{Title: "Evening Wind Down", Start: 22*60 + 30, End: 23 * 60, Category: AnchorRoutine, Days: mondayToFriday},
		{Title: "Wake Up", Start: 8 * 60, End: 8*60 + 30, Category: AnchorRoutine, Days: weekendDays},
		{Title: "Brunch", Start: 10 * 60, End: 11 * 60, Category: AnchorMeal, Days: weekendDays},
		{Title: "Lunch", Start: 13*60 + 30, End: 14*60 + 30, Category: AnchorMeal, Days: weekendDays},
		{Title: "Dinner", Start: 20 * 60, End: 21 * 60, Category: AnchorMeal, Days: weekendDays},
	}
}
