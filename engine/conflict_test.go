package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflict(t *testing.T) {
	existing := []Event{
		{ID: "a", ResourceID: "room-1", Start: at(10, 0), End: at(12, 0), Status: StatusBooked},
		{ID: "b", ResourceID: "room-1", Start: at(11, 0), End: at(13, 0), Status: StatusBooked},
		{ID: "c", ResourceID: "room-2", Start: at(10, 0), End: at(12, 0), Status: StatusBooked},
		{ID: "d", ResourceID: "room-1", Start: at(14, 0), End: at(16, 0), Status: StatusCancelled},
	}

	tests := []struct {
		name     string
		req      ConflictRequest
		expectID string // empty = no conflict
	}{
		{
			name:     "first match in input order wins",
			req:      ConflictRequest{ResourceID: "room-1", Start: at(11, 30), End: at(12, 30)},
			expectID: "a",
		},
		{
			name:     "different resource is free",
			req:      ConflictRequest{ResourceID: "room-3", Start: at(10, 0), End: at(12, 0)},
			expectID: "",
		},
		{
			name:     "touching boundary is free",
			req:      ConflictRequest{ResourceID: "room-1", Start: at(13, 0), End: at(14, 0)},
			expectID: "",
		},
		{
			name:     "cancelled booking is invisible",
			req:      ConflictRequest{ResourceID: "room-1", Start: at(14, 30), End: at(15, 0)},
			expectID: "",
		},
		{
			name:     "editing an event skips itself",
			req:      ConflictRequest{ResourceID: "room-1", Start: at(10, 0), End: at(12, 0), ExcludeID: "a"},
			expectID: "b",
		},
		{
			name:     "exclusion of the only collider reports nothing",
			req:      ConflictRequest{ResourceID: "room-2", Start: at(10, 0), End: at(12, 0), ExcludeID: "c"},
			expectID: "",
		},
		{
			name:     "unscheduled request never conflicts",
			req:      ConflictRequest{ResourceID: "", Start: at(10, 0), End: at(12, 0)},
			expectID: "",
		},
		{
			name:     "zero start time short-circuits",
			req:      ConflictRequest{ResourceID: "room-1", End: at(12, 0)},
			expectID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := CheckConflict(tt.req, existing)
			if tt.expectID == "" {
				assert.Nil(t, conflict)
				return
			}
			require.NotNil(t, conflict)
			assert.Equal(t, tt.expectID, conflict.Event.ID)
			assert.Equal(t, tt.req.ResourceID, conflict.ResourceID)
			assert.Equal(t, ConflictDoubleBooking, conflict.Type)
		})
	}
}

func TestCheckConflictUnknownStatusIsLive(t *testing.T) {
	existing := []Event{
		{ID: "x", ResourceID: "room-1", Start: at(10, 0), End: at(12, 0), Status: Status("pending")},
	}
	conflict := CheckConflict(ConflictRequest{ResourceID: "room-1", Start: at(11, 0), End: at(11, 30)}, existing)
	require.NotNil(t, conflict)
	assert.Equal(t, "x", conflict.Event.ID)
}

func TestCheckConflictEmptyCollection(t *testing.T) {
	assert.Nil(t, CheckConflict(ConflictRequest{ResourceID: "room-1", Start: at(10, 0), End: at(11, 0)}, nil))
}
