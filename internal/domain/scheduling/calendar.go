// Package scheduling implements the appointment availability and booking
// engine: deriving which slots are bookable for a doctor on a day, and
// converting a slot selection into a conflict-free reservation.
package scheduling

import "time"

// SlotGranularity is the fixed length of a bookable slot.
const SlotGranularity = 30 * time.Minute

// Clinic hours in UTC. The break between the morning and afternoon
// windows is not bookable.
const (
	morningOpenHour   = 8
	morningCloseHour  = 12
	afternoonOpenHour = 13
	closeHour         = 17
)

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in the window. The start is included,
// the end is not.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// WorkingWindows returns the bookable windows for the given date, in
// chronological order, or nil when the clinic is closed that day.
// Saturdays and Sundays are closed. Only the calendar date of the input
// matters; its time of day and location are normalized to UTC.
func WorkingWindows(date time.Time) []TimeWindow {
	date = date.UTC()
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return nil
	}
	y, m, d := date.Date()
	at := func(hour int) time.Time {
		return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	}
	return []TimeWindow{
		{Start: at(morningOpenHour), End: at(morningCloseHour)},
		{Start: at(afternoonOpenHour), End: at(closeHour)},
	}
}

// InWorkingWindow reports whether the timestamp falls inside one of the
// day's bookable windows.
func InWorkingWindow(t time.Time) bool {
	t = t.UTC()
	for _, w := range WorkingWindows(t) {
		if w.Contains(t) {
			return true
		}
	}
	return false
}

// IsClosedDay reports whether the date falls on a non-working day.
func IsClosedDay(date time.Time) bool {
	wd := date.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
