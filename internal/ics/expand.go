package ics

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/ugnoguchigxp/regular-calendar/engine"
)

// maxOccurrences caps recurrence expansion per event so a runaway RRULE
// can't flood a view window.
const maxOccurrences = 1000

type occurrence struct {
	start time.Time
	end   time.Time
}

// Load parses an ICS payload and expands it into engine events falling
// within [rangeStart, rangeEnd], bound to the feed's resource and group.
// Recurring events are expanded into one engine event per occurrence.
func Load(feed Feed, body []byte, rangeStart, rangeEnd time.Time) ([]engine.Event, error) {
	parsed, err := parseFeed(feed, body)
	if err != nil {
		return nil, err
	}

	var events []engine.Event
	for _, ve := range parsed {
		occurrences, err := expand(ve, rangeStart, rangeEnd)
		if err != nil {
			slog.Warn("skipping event with bad recurrence", "feed", feed.ID, "uid", ve.uid, "error", err)
			continue
		}
		for _, occ := range occurrences {
			events = append(events, feed.event(ve, occ))
		}
	}
	slog.Debug("loaded feed", "feed", feed.ID, "events", len(events))
	return events, nil
}

func expand(ve vevent, rangeStart, rangeEnd time.Time) ([]occurrence, error) {
	if ve.rawRRule == "" {
		if !inWindow(ve.start, ve.end, rangeStart, rangeEnd) {
			return nil, nil
		}
		return []occurrence{{start: ve.start, end: ve.end}}, nil
	}

	r, err := rrule.StrToRRule(ve.rawRRule)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE %q: %w", ve.rawRRule, err)
	}
	r.DTStart(ve.start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ve.exDates {
		set.ExDate(ex.In(ve.start.Location()))
	}

	loc := ve.start.Location()
	starts := set.Between(rangeStart.In(loc), rangeEnd.In(loc), true)
	if len(starts) > maxOccurrences {
		slog.Warn("recurrence expansion truncated", "uid", ve.uid, "cap", maxOccurrences)
		starts = starts[:maxOccurrences]
	}

	duration := ve.end.Sub(ve.start)
	out := make([]occurrence, 0, len(starts))
	for _, start := range starts {
		if ve.allDay {
			day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
			out = append(out, occurrence{start: day, end: day.AddDate(0, 0, 1)})
			continue
		}
		out = append(out, occurrence{start: start, end: start.Add(duration)})
	}
	return out, nil
}

// inWindow reports whether an event belongs in the view window. Degenerate
// intervals never overlap anything, but the event still exists, so a start
// inside the window is enough.
func inWindow(start, end, rangeStart, rangeEnd time.Time) bool {
	if engine.Overlaps(start, end, rangeStart, rangeEnd) {
		return true
	}
	return !start.Before(rangeStart) && !start.After(rangeEnd)
}

func (f Feed) event(ve vevent, occ occurrence) engine.Event {
	id := ve.uid
	switch {
	case id == "":
		id = uuid.NewString()
	case ve.rawRRule != "":
		// One engine event per occurrence needs a distinct id.
		id = fmt.Sprintf("%s@%s", ve.uid, occ.start.Format(time.RFC3339))
	}

	return engine.Event{
		ID:         id,
		GroupID:    f.GroupID,
		ResourceID: f.ResourceID,
		Title:      ve.summary,
		Start:      occ.start,
		End:        occ.end,
		AllDay:     ve.allDay,
		Status:     mapStatus(ve.status),
		Props:      map[string]any{"feed": f.ID, "feedName": f.Name},
	}
}

// mapStatus folds ICS VEVENT statuses onto the engine's enumeration.
// CONFIRMED and TENTATIVE are both live bookings; anything unrecognized is
// also treated as live so a weird feed over-warns rather than hiding a
// double-booking.
func mapStatus(raw string) engine.Status {
	if strings.EqualFold(strings.TrimSpace(raw), "CANCELLED") {
		return engine.StatusCancelled
	}
	return engine.StatusBooked
}
