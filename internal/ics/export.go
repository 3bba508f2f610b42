package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ugnoguchigxp/regular-calendar/engine"
)

// WriteFeed writes engine events out as an iCal feed, so a marked-up
// schedule (including cancellations) can be re-published to subscribers.
func WriteFeed(w io.Writer, name string, events []engine.Event) error {
	cw := &contentWriter{w: w}
	cw.line("BEGIN:VCALENDAR")
	cw.line("VERSION:2.0")
	cw.line("PRODID:-//regular-calendar//EN")
	cw.line("CALSCALE:GREGORIAN")
	cw.line("METHOD:PUBLISH")
	cw.line("X-WR-CALNAME:%s", escapeText(name))

	for i := range events {
		writeVEvent(cw, &events[i])
	}

	cw.line("END:VCALENDAR")
	return cw.err
}

func writeVEvent(cw *contentWriter, e *engine.Event) {
	cw.line("BEGIN:VEVENT")
	cw.line("UID:%s", e.ID)
	cw.line("DTSTAMP:%s", formatDateTime(time.Now()))

	if e.IsAllDay() {
		cw.line("DTSTART;VALUE=DATE:%s", e.Start.Format("20060102"))
		cw.line("DTEND;VALUE=DATE:%s", e.End.Format("20060102"))
	} else {
		cw.line("DTSTART:%s", formatDateTime(e.Start))
		cw.line("DTEND:%s", formatDateTime(e.End))
	}

	if e.Title != "" {
		cw.line("SUMMARY:%s", escapeText(e.Title))
	}
	if e.ResourceID != "" {
		cw.line("LOCATION:%s", escapeText(e.ResourceID))
	}
	cw.line("STATUS:%s", icalStatus(e.Status))

	cw.line("END:VEVENT")
}

// contentWriter emits RFC 5545 content lines (CRLF terminated) and keeps the
// first write error instead of failing every call site.
type contentWriter struct {
	w   io.Writer
	err error
}

func (c *contentWriter) line(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format+"\r\n", args...)
}

func icalStatus(s engine.Status) string {
	if s == engine.StatusCancelled {
		return "CANCELLED"
	}
	return "CONFIRMED"
}

// formatDateTime renders an instant in iCal UTC form (YYYYMMDDTHHMMSSZ).
func formatDateTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeText escapes the iCal text special characters.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
