package engine

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const dayKeyCacheSize = 512

// DayKeyer canonicalizes instants into local calendar-day keys, with a small
// bounded cache in front of the formatting work. The cache is internally
// locked, so a keyer can be shared between goroutines.
type DayKeyer struct {
	cache *lru.Cache[int64, string]
}

func NewDayKeyer() *DayKeyer {
	cache, err := lru.New[int64, string](dayKeyCacheSize)
	if err != nil {
		panic(err) // only possible with a non-positive size
	}
	return &DayKeyer{cache: cache}
}

// Key returns the YYYY-MM-DD key of t's local calendar day. Two instants on
// the same local day always produce the same key, and days on either side of
// a month or year boundary always produce distinct keys.
func (k *DayKeyer) Key(t time.Time) string {
	day := StartOfDay(t)
	unix := day.Unix()
	if key, ok := k.cache.Get(unix); ok {
		return key
	}
	key := day.Format("2006-01-02")
	k.cache.Add(unix, key)
	return key
}

// StartOfDay normalizes t to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last represented millisecond of t's calendar day,
// 23:59:59.999.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
