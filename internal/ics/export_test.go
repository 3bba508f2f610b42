package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugnoguchigxp/regular-calendar/engine"
)

func TestWriteFeed(t *testing.T) {
	events := []engine.Event{
		{
			ID:         "meeting-1",
			ResourceID: "room-1",
			Title:      "Planning; part 1",
			Start:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			Status:     engine.StatusBooked,
		},
		{
			ID:     "offsite",
			Title:  "Offsite",
			Start:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			AllDay: true,
			Status: engine.StatusCancelled,
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteFeed(&buf, "Rooms", events))
	out := buf.String()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "X-WR-CALNAME:Rooms")
	assert.Contains(t, out, "UID:meeting-1")
	assert.Contains(t, out, "DTSTART:20250310T090000Z")
	assert.Contains(t, out, "SUMMARY:Planning\\; part 1")
	assert.Contains(t, out, "LOCATION:room-1")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250312")
	assert.Contains(t, out, "STATUS:CANCELLED")
	assert.Contains(t, out, "END:VCALENDAR")
}

func TestWriteFeedRoundTrips(t *testing.T) {
	events := []engine.Event{
		{
			ID:         "rt-1",
			ResourceID: "room-1",
			Title:      "Review",
			Start:      time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 3, 11, 15, 30, 0, 0, time.UTC),
			Status:     engine.StatusBooked,
		},
	}

	var buf strings.Builder
	require.NoError(t, WriteFeed(&buf, "Rooms", events))

	start, end := window()
	loaded, err := Load(testFeed, []byte(buf.String()), start, end)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "rt-1", loaded[0].ID)
	assert.Equal(t, "Review", loaded[0].Title)
	assert.True(t, loaded[0].Start.Equal(events[0].Start))
	assert.True(t, loaded[0].End.Equal(events[0].End))
}
