// Package tzdb resolves IANA zone names against the platform tz database.
//
// It is the default ZoneDB capability consumed by chronon zone resolution:
// given a zone name and a reference instant, it returns the UTC offset in
// effect at that instant plus the DST adjustment relative to the zone's
// standard offset. Loaded locations are cached per DB; the database itself
// is never reimplemented here, only queried through time.LoadLocation.
package tzdb

import (
	"fmt"
	"sync"
	"time"
)

// DB is a caching view over the platform tz database. Safe for concurrent
// use.
type DB struct {
	mu   sync.RWMutex
	locs map[string]*time.Location
}

// New creates an empty DB.
func New() *DB {
	return &DB{locs: make(map[string]*time.Location)}
}

// Lookup returns the UTC offset and DST adjustment, in seconds, of the named
// zone at ref. Unknown names fail with the underlying LoadLocation error.
func (db *DB) Lookup(name string, ref time.Time) (offsetSeconds, dstSeconds int, err error) {
	loc, err := db.location(name)
	if err != nil {
		return 0, 0, fmt.Errorf("lookup %q: %w", name, err)
	}
	_, off := ref.In(loc).Zone()
	dst := off - standardOffset(ref.Year(), loc)
	if dst < 0 {
		dst = 0
	}
	return off, dst, nil
}

func (db *DB) location(name string) (*time.Location, error) {
	db.mu.RLock()
	loc, ok := db.locs[name]
	db.mu.RUnlock()
	if ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	db.mu.Lock()
	db.locs[name] = loc
	db.mu.Unlock()
	return loc, nil
}

// standardOffset estimates the zone's non-DST offset for a year by taking the
// smaller of the January and July offsets, which covers both hemispheres.
func standardOffset(year int, loc *time.Location) int {
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
	if jul < jan {
		return jul
	}
	return jan
}
