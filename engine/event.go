package engine

import (
	"cmp"
	"slices"
	"time"
)

// Status describes the lifecycle state of an event. Unknown values are
// treated as live so that a bad upstream value over-warns instead of hiding
// a real double-booking.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Event is one scheduled occupation of zero or one resources.
// ResourceID is empty for unscheduled/personal events.
type Event struct {
	ID         string
	GroupID    string
	ResourceID string
	Title      string
	Start      time.Time
	End        time.Time
	AllDay     bool
	Status     Status

	// Conflict is display-only. It is set by MarkConflicts and never read
	// back by the engine itself.
	Conflict bool

	// Props carries opaque presentation-layer data. The engine only reads
	// the boolean "allDay" hint as a fallback for the AllDay flag.
	Props map[string]any
}

func (e *Event) Cancelled() bool { return e.Status == StatusCancelled }

// IsAllDay returns the all-day flag, falling back to the "allDay" extension
// property when the flag itself isn't set.
func (e *Event) IsAllDay() bool {
	if e.AllDay {
		return true
	}
	hint, _ := e.Props["allDay"].(bool)
	return hint
}

// DisplayMode controls how a group of resources is rendered.
type DisplayMode string

const (
	DisplayGrid DisplayMode = "grid"
	DisplayList DisplayMode = "list"
)

// Resource is a bookable entity: a room, a device, a person.
type Resource struct {
	ID        string
	Name      string
	Order     int
	GroupID   string
	Available bool
}

// ResourceGroup is a named set of resources sharing a display mode.
type ResourceGroup struct {
	ID      string
	Name    string
	Display DisplayMode

	// Dimension is the layout axis size used by grid display.
	Dimension int
}

// SortResources orders resources by their ordering key, ties broken by id.
// The input is not mutated.
func SortResources(resources []Resource) []Resource {
	out := slices.Clone(resources)
	slices.SortStableFunc(out, func(a, b Resource) int {
		if a.Order != b.Order {
			return cmp.Compare(a.Order, b.Order)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
