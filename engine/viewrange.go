package engine

import "time"

// ViewMode selects the calendar granularity.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Settings carries the operating-hours and day-grid knobs of a schedule.
type Settings struct {
	// DayStartHour and DayEndHour bound the visible day in day view.
	// DayEndHour may be 24 or more when operating hours spill past midnight;
	// the view then extends onto the following day(s).
	DayStartHour int
	DayEndHour   int

	// WeekStartsOn is the first day of the week in week view.
	WeekStartsOn time.Weekday

	// SlotMinutes and SlotPixels define the linear time-to-pixel mapping of
	// the day grid.
	SlotMinutes int
	SlotPixels  float64
}

func (s Settings) withDefaults() Settings {
	if s.DayEndHour == 0 {
		s.DayEndHour = 24
	}
	if s.SlotMinutes <= 0 {
		s.SlotMinutes = 30
	}
	if s.SlotPixels <= 0 {
		s.SlotPixels = 40
	}
	return s
}

const rangeCacheSize = 100

type rangeKey struct {
	start int64
	end   int64
}

// CalculateRange resolves the boundary of the view anchored on ref.
//
// Day view runs from DayStartHour to DayEndHour on ref's day; an end hour of
// 24 or more rolls the boundary onto the following day(s) at the remaining
// hour's last second. Week view runs from the most recent WeekStartsOn at or
// before ref through end-of-day six days later. Month view covers ref's
// calendar month.
func (s *Scheduler) CalculateRange(ref time.Time, mode ViewMode) (start, end time.Time) {
	day := StartOfDay(ref)
	switch mode {
	case ViewWeek:
		offset := (int(day.Weekday()) - int(s.settings.WeekStartsOn) + 7) % 7
		start = day.AddDate(0, 0, -offset)
		end = EndOfDay(start.AddDate(0, 0, 6))
	case ViewMonth:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		end = EndOfDay(start.AddDate(0, 1, -1))
	default:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), s.settings.DayStartHour, 0, 0, 0, ref.Location())
		if h := s.settings.DayEndHour; h >= 24 {
			spill := day.AddDate(0, 0, h/24)
			end = time.Date(spill.Year(), spill.Month(), spill.Day(), h%24, 59, 59, int(999*time.Millisecond), spill.Location())
		} else {
			end = time.Date(ref.Year(), ref.Month(), ref.Day(), h, 0, 0, 0, ref.Location())
		}
	}
	return start, end
}

// EnumerateDays returns the local-midnight-normalized days from start to end
// inclusive. An end before start yields no days.
//
// Results are memoized by the resolved boundary pair, not by the original
// reference date and mode, since distinct references frequently resolve to
// the same week or month window. The cache is bounded; old windows fall out.
func (s *Scheduler) EnumerateDays(start, end time.Time) []time.Time {
	key := rangeKey{start: start.UnixMilli(), end: end.UnixMilli()}
	if days, ok := s.ranges.Get(key); ok {
		return days
	}
	days := []time.Time{}
	for d := StartOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	s.ranges.Add(key, days)
	return days
}
