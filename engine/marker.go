package engine

import "slices"

// MarkConflicts decorates events with the double-booking flag: every live
// event that overlaps another live event on the same resource is flagged on
// both sides. Cancelled events and events without a resource are invisible
// to the scan. The input slice is never mutated; decorated copies are
// returned in input order.
//
// The comparison is pairwise, O(n²) in the event count. That is acceptable
// for a single view window's worth of events, which is how the calendar
// calls it; it will not scale to an unbounded collection.
func MarkConflicts(events []Event) []Event {
	out := slices.Clone(events)
	for i := range out {
		out[i].Conflict = false
	}
	for i := range out {
		if out[i].Cancelled() || out[i].ResourceID == "" {
			continue
		}
		for j := i + 1; j < len(out); j++ {
			if out[j].Cancelled() || out[j].ResourceID != out[i].ResourceID {
				continue
			}
			if eventsOverlap(&out[i], &out[j]) {
				out[i].Conflict = true
				out[j].Conflict = true
			}
		}
	}
	return out
}
