package engine

import (
	"slices"
	"time"
)

// MaxColumns caps how many side-by-side lanes a cluster of overlapping
// events may occupy. A fifth simultaneous event reuses the first lane
// instead of growing the grid without bound.
const MaxColumns = 4

// EventWithLayout positions one event within its resource's column. For
// all-day events the embedded start/end are the synthetic window-spanning
// bounds used for layout, not the original instants.
type EventWithLayout struct {
	Event
	Column       int
	TotalColumns int
}

// WidthPercent is the fractional width of the event's lane.
func (l EventWithLayout) WidthPercent() float64 { return 100 / float64(l.TotalColumns) }

// LeftPercent is the fractional left offset of the event's lane.
func (l EventWithLayout) LeftPercent() float64 { return float64(l.Column) * l.WidthPercent() }

// LayoutColumns assigns lanes to a single resource's events for the window
// [dayStart, dayEnd]. All-day events are cloned with their bounds stretched
// to cover the whole window for layout purposes; the input events are left
// untouched.
//
// Events are sorted by start, then greedily merged into clusters: an event
// joins the first cluster containing any member it overlaps, otherwise it
// opens a new one. Lanes within a cluster are assigned round-robin up to
// MaxColumns. The greedy pass is not an optimal interval coloring; it
// mirrors exactly how the calendar renders.
func LayoutColumns(events []Event, dayStart, dayEnd time.Time) []EventWithLayout {
	laid := make([]EventWithLayout, 0, len(events))
	for _, ev := range events {
		l := EventWithLayout{Event: ev, TotalColumns: 1}
		if ev.IsAllDay() {
			l.Start = dayStart
			l.End = dayEnd
		}
		laid = append(laid, l)
	}
	slices.SortStableFunc(laid, func(a, b EventWithLayout) int {
		return a.Start.Compare(b.Start)
	})

	var clusters [][]*EventWithLayout
	for i := range laid {
		ev := &laid[i]
		placed := false
		for ci := range clusters {
			for _, member := range clusters[ci] {
				if Overlaps(ev.Start, ev.End, member.Start, member.End) {
					clusters[ci] = append(clusters[ci], ev)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			clusters = append(clusters, []*EventWithLayout{ev})
		}
	}

	for _, cluster := range clusters {
		if len(cluster) < 2 {
			continue
		}
		lanes := min(len(cluster), MaxColumns)
		for i, ev := range cluster {
			ev.Column = i % lanes
			ev.TotalColumns = lanes
		}
	}
	return laid
}

// PixelOffset converts an instant to a vertical pixel position on the day
// grid: minutes elapsed since dayStart, divided into slots, times the pixel
// height of one slot.
func (s Settings) PixelOffset(t, dayStart time.Time) float64 {
	if s.SlotMinutes <= 0 {
		return 0
	}
	return t.Sub(dayStart).Minutes() / float64(s.SlotMinutes) * s.SlotPixels
}
