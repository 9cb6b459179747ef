package scheduling

import (
	"iter"
	"time"
)

// CandidateSlots returns the bookable slot timestamps for the given date,
// stepping through each working window at the slot granularity and skipping
// anything not strictly after now. The sequence is lazy and restartable:
// ranging over it twice yields the same timestamps.
func CandidateSlots(date, now time.Time) iter.Seq[time.Time] {
	windows := WorkingWindows(date)
	return func(yield func(time.Time) bool) {
		for _, w := range windows {
			for t := w.Start; t.Before(w.End); t = t.Add(SlotGranularity) {
				if !t.After(now) {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// collectSlots materializes a slot sequence into a slice.
func collectSlots(seq iter.Seq[time.Time]) []time.Time {
	var out []time.Time
	for t := range seq {
		out = append(out, t)
	}
	return out
}
