package engine

import "time"

// EventIndexes groups an event collection three ways for cheap lookup:
// by resource id, by the local calendar day of the start instant, and by
// group id. Indexes are rebuilt in full on every BuildIndexes call; there is
// no incremental maintenance.
type EventIndexes struct {
	byResource map[string][]Event
	byDay      map[string][]Event
	byGroup    map[string][]Event
	days       *DayKeyer
}

// BuildIndexes indexes events in a single pass, preserving input order
// within each bucket. No status filtering happens here: callers decide
// whether cancelled events matter for their query.
func (s *Scheduler) BuildIndexes(events []Event) *EventIndexes {
	idx := &EventIndexes{
		byResource: make(map[string][]Event),
		byDay:      make(map[string][]Event),
		byGroup:    make(map[string][]Event),
		days:       s.days,
	}
	for _, ev := range events {
		if ev.ResourceID != "" {
			idx.byResource[ev.ResourceID] = append(idx.byResource[ev.ResourceID], ev)
		}
		key := s.days.Key(ev.Start)
		idx.byDay[key] = append(idx.byDay[key], ev)
		idx.byGroup[ev.GroupID] = append(idx.byGroup[ev.GroupID], ev)
	}
	return idx
}

// ByResource returns the events scheduled on a resource, in insertion order.
// Absent keys yield an empty list.
func (i *EventIndexes) ByResource(id string) []Event { return i.byResource[id] }

// ByDay returns the events starting on the same local calendar day as t.
func (i *EventIndexes) ByDay(t time.Time) []Event { return i.byDay[i.days.Key(t)] }

// ByGroup returns the events belonging to a group.
func (i *EventIndexes) ByGroup(id string) []Event { return i.byGroup[id] }
