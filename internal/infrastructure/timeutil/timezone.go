package timeutil

import (
	"fmt"
	"sync"
	"time"
)

var locationCache sync.Map

// GetLocation loads an IANA timezone, caching the result.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// Today returns midnight of the current calendar day in loc.
func Today(clock Clock, loc *time.Location) time.Time {
	return StartOfDay(clock.Now().In(loc))
}

// StartOfDay returns 00:00:00 of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clearLocationCache is used by tests.
func clearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
