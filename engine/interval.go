package engine

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch at a boundary do not
// overlap. An interval whose end does not come after its start is empty and
// never overlaps anything.
//
// Every other overlap decision in this package goes through this function.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.Before(aEnd) || !bStart.Before(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func eventsOverlap(a, b *Event) bool {
	return Overlaps(a.Start, a.End, b.Start, b.End)
}
