// Package testutil provides deterministic clock and zone-database doubles
// for tests.
package testutil

import (
	"fmt"
	"time"
)

// FrozenClock returns a fixed instant from Now.
//
// Unlike the system clock, FrozenClock makes zone resolution and the Now
// constructors fully deterministic, so the same test scenario produces
// identical values on every run.
type FrozenClock struct {
	T time.Time
}

// Now returns the frozen instant.
func (c FrozenClock) Now() time.Time { return c.T }

// ZoneEntry is a fixed (offset, dst) pair served by StaticZoneDB.
type ZoneEntry struct {
	OffsetSeconds int
	DSTSeconds    int
}

// StaticZoneDB serves fixed offsets per zone name, independent of the
// reference instant. Lookups of absent names fail like an unknown zone.
type StaticZoneDB map[string]ZoneEntry

// Lookup implements the zone-database capability.
func (db StaticZoneDB) Lookup(name string, _ time.Time) (int, int, error) {
	e, ok := db[name]
	if !ok {
		return 0, 0, fmt.Errorf("zone %q not in static db", name)
	}
	return e.OffsetSeconds, e.DSTSeconds, nil
}
