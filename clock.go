package chronon

import (
	"sync"
	"time"

	"github.com/roach88/chronon/internal/tzdb"
)

// Clock supplies the current instant. Abstracted so tests and deterministic
// callers can freeze time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock via time.Now.
var SystemClock Clock = systemClock{}

// ZoneDB is the consumed zone-database capability: given a zone name and a
// reference instant, return the UTC offset and the DST adjustment in seconds.
type ZoneDB interface {
	Lookup(name string, ref time.Time) (offsetSeconds, dstSeconds int, err error)
}

// Context bundles the clock and zone database used for zone resolution and
// the Now constructors. Both collaborators are injectable; nothing is frozen
// at process start except the local UTC offset, which each Context computes
// once from its own clock.
type Context struct {
	Clock Clock
	DB    ZoneDB

	localOnce   sync.Once
	localOffset int
}

// NewContext creates a Context. A nil clock defaults to SystemClock; a nil
// db defaults to the platform tz database.
func NewContext(clock Clock, db ZoneDB) *Context {
	if clock == nil {
		clock = SystemClock
	}
	if db == nil {
		db = tzdb.New()
	}
	return &Context{Clock: clock, DB: db}
}

var defaultContext = sync.OnceValue(func() *Context {
	return NewContext(nil, nil)
})

// DefaultContext returns the process-wide Context backed by the system clock
// and the platform tz database.
func DefaultContext() *Context {
	return defaultContext()
}

// LocalOffsetSeconds returns the process's local UTC offset, computed once
// per Context at first use.
func (c *Context) LocalOffsetSeconds() int {
	c.localOnce.Do(func() {
		_, off := c.Clock.Now().Local().Zone()
		c.localOffset = off
	})
	return c.localOffset
}
