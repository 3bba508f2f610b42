package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		expect                         bool
	}{
		{
			name:   "partial overlap",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(11, 0), bEnd: at(13, 0),
			expect: true,
		},
		{
			name:   "containment",
			aStart: at(9, 0), aEnd: at(17, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			expect: true,
		},
		{
			name:   "identical intervals",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			expect: true,
		},
		{
			name:   "touching boundaries do not overlap",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(12, 0), bEnd: at(14, 0),
			expect: false,
		},
		{
			name:   "disjoint",
			aStart: at(8, 0), aEnd: at(9, 0),
			bStart: at(13, 0), bEnd: at(14, 0),
			expect: false,
		},
		{
			name:   "zero-length interval never overlaps",
			aStart: at(10, 30), aEnd: at(10, 30),
			bStart: at(9, 0), bEnd: at(11, 0),
			expect: false,
		},
		{
			name:   "inverted interval never overlaps",
			aStart: at(12, 0), aEnd: at(10, 0),
			bStart: at(9, 0), bEnd: at(13, 0),
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))

			// The primitive must be symmetric regardless of argument order.
			assert.Equal(t,
				Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd),
				Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
