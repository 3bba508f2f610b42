// Package ics adapts ICS calendar feeds into engine events. It is the
// data-access side of the calendar: each feed is bound to one bookable
// resource, and VEVENT status/all-day semantics are mapped onto the engine's
// event model. The engine itself never sees ICS.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// Feed binds one ICS subscription to a resource on the calendar.
type Feed struct {
	ID         string
	Name       string
	Path       string
	ResourceID string
	GroupID    string
}

// vevent is one VEVENT lifted out of a feed, before recurrence expansion.
type vevent struct {
	uid      string
	summary  string
	start    time.Time
	end      time.Time
	allDay   bool
	status   string
	rawRRule string
	exDates  []time.Time
}

func parseFeed(feed Feed, body []byte) ([]vevent, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("feed %q: empty ICS body", feed.ID)
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("feed %q: parsing calendar: %w", feed.ID, err)
	}

	events := make([]vevent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			// A single broken VEVENT shouldn't take down the whole feed.
			slog.Warn("skipping malformed vevent", "feed", feed.ID, "error", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (vevent, error) {
	var out vevent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.uid = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil {
		out.status = p.Value
	}

	out.allDay = isAllDay(ve)
	if out.allDay {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return out, fmt.Errorf("uid %q: all-day DTSTART: %w", out.uid, err)
		}
		out.start = start
		if end, err := ve.GetAllDayEndAt(); err == nil && !end.IsZero() {
			out.end = end
		} else {
			out.end = start.AddDate(0, 0, 1)
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return out, fmt.Errorf("uid %q: DTSTART: %w", out.uid, err)
		}
		out.start = start
		if end, err := ve.GetEndAt(); err == nil && !end.IsZero() {
			out.end = end
		} else {
			// Missing DTEND leaves a degenerate interval; the engine treats
			// it as occupying nothing, which is the safe reading.
			out.end = start
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rawRRule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := parseICSTime(part)
			if err != nil {
				slog.Warn("skipping unparseable EXDATE", "uid", out.uid, "value", part)
				continue
			}
			out.exDates = append(out.exDates, t)
		}
	}

	return out, nil
}

// isAllDay reports whether DTSTART is a date-only value.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseICSTime handles the basic ICS date/date-time forms used by EXDATE.
func parseICSTime(v string) (time.Time, error) {
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.Local)
	default:
		return time.ParseInLocation("20060102", v, time.Local)
	}
}
