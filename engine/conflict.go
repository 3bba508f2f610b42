package engine

import "time"

// ConflictType tags why two bookings collide. Only double-booking exists
// today.
type ConflictType string

const ConflictDoubleBooking ConflictType = "double-booking"

// ConflictRequest describes a candidate booking to validate against the
// current schedule. ExcludeID names an event to ignore, so that editing a
// booking doesn't conflict with itself.
type ConflictRequest struct {
	ResourceID string
	Start      time.Time
	End        time.Time
	ExcludeID  string
}

// Conflict reports an existing booking that collides with a candidate.
type Conflict struct {
	Event      Event
	ResourceID string
	Type       ConflictType
}

// CheckConflict scans existing bookings in input order and returns the first
// live booking on the same resource whose interval overlaps the candidate,
// or nil if there is none.
//
// Requests without a resource or without a usable start time never conflict:
// an unscheduled booking occupies nothing. Start/end values are late-bound
// from user-editable form fields upstream, so a zero start is treated as
// unparsed rather than as an error.
func CheckConflict(req ConflictRequest, existing []Event) *Conflict {
	if req.ResourceID == "" || req.Start.IsZero() {
		return nil
	}
	for _, ev := range existing {
		if ev.Cancelled() || ev.ResourceID != req.ResourceID {
			continue
		}
		if req.ExcludeID != "" && ev.ID == req.ExcludeID {
			continue
		}
		if Overlaps(req.Start, req.End, ev.Start, ev.End) {
			return &Conflict{Event: ev, ResourceID: req.ResourceID, Type: ConflictDoubleBooking}
		}
	}
	return nil
}
