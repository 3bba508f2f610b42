// Package engine implements the scheduling computations behind the calendar:
// interval conflict detection, event indexing, view-range math, display
// column layout, and resource pagination. Everything here is a pure function
// over in-memory collections; the only state is a pair of bounded caches.
package engine

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Scheduler owns the computations that carry cache state: index building
// (day keys) and view-range math (day enumeration). The stateless operations
// are package functions: CheckConflict, MarkConflicts, LayoutColumns,
// Paginate.
//
// Construct one scheduler per schedule configuration and share it; both
// caches are safe for concurrent use.
type Scheduler struct {
	settings Settings
	days     *DayKeyer
	ranges   *lru.Cache[rangeKey, []time.Time]
}

func NewScheduler(settings Settings) *Scheduler {
	ranges, err := lru.New[rangeKey, []time.Time](rangeCacheSize)
	if err != nil {
		panic(err)
	}
	return &Scheduler{
		settings: settings.withDefaults(),
		days:     NewDayKeyer(),
		ranges:   ranges,
	}
}

func (s *Scheduler) Settings() Settings { return s.settings }

// DayKey returns the canonical local-day key of t.
func (s *Scheduler) DayKey(t time.Time) string { return s.days.Key(t) }
