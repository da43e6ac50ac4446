package chronon

import (
	"math"
	"time"
)

// Moment is an exact instant paired with a resolved Zone. The zero value is
// the UTC epoch. Moments are immutable; every transformation returns a new
// value. Compare with Equal/Before/After, not ==.
type Moment struct {
	t    time.Time
	zone Zone
}

func momentAt(t time.Time, z Zone) Moment {
	return Moment{t: t.In(z.Location()), zone: z}
}

func momentFromWall(year int, month time.Month, day, hour, min, sec, nsec int, z Zone) Moment {
	return Moment{t: time.Date(year, month, day, hour, min, sec, nsec, z.Location()), zone: z}
}

func (c *Context) resolveOr(spec ZoneSpec, fallback ZoneSpec) (Zone, error) {
	if spec == nil {
		spec = fallback
	}
	return c.ResolveZone(spec, c.Clock.Now())
}

// Date constructs a Moment from explicit calendar fields. The composite must
// form a valid proleptic-Gregorian date/time in the supported year range;
// validity is checked atomically, so Feb 30 fails even though both fields
// are individually in range. A nil spec means UTC.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, spec ZoneSpec) (Moment, error) {
	return DefaultContext().Date(year, month, day, hour, min, sec, nsec, spec)
}

// Date constructs a Moment from explicit calendar fields using the context's
// clock and zone database.
func (c *Context) Date(year int, month time.Month, day, hour, min, sec, nsec int, spec ZoneSpec) (Moment, error) {
	zone, err := c.resolveOr(spec, UTC)
	if err != nil {
		return Moment{}, err
	}
	if year < minYear || year > maxYear || nsec < 0 || nsec > 999999999 {
		return Moment{}, newError(ErrCodeInvalidDateTime, "invalid datetime %04d-%02d-%02d %02d:%02d:%02d.%09d", year, month, day, hour, min, sec, nsec)
	}
	m := momentFromWall(year, month, day, hour, min, sec, nsec, zone)
	// time.Date normalizes out-of-range composites; a round-trip mismatch
	// means the input did not name a real wall-clock time.
	if m.t.Year() != year || m.t.Month() != month || m.t.Day() != day ||
		m.t.Hour() != hour || m.t.Minute() != min || m.t.Second() != sec {
		return Moment{}, newError(ErrCodeInvalidDateTime, "invalid datetime %04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, min, sec)
	}
	return m, nil
}

// Now captures the current instant in the given zone. A nil spec means the
// local zone.
func Now(spec ZoneSpec) (Moment, error) {
	return DefaultContext().Now(spec)
}

// Now captures the context clock's current instant in the given zone.
func (c *Context) Now(spec ZoneSpec) (Moment, error) {
	now := c.Clock.Now()
	if spec == nil {
		spec = ZoneName("local")
	}
	zone, err := c.ResolveZone(spec, now)
	if err != nil {
		return Moment{}, err
	}
	return momentAt(now, zone), nil
}

// UTCNow captures the current instant in UTC.
func UTCNow() Moment {
	return DefaultContext().UTCNow()
}

// UTCNow captures the context clock's current instant in UTC.
func (c *Context) UTCNow() Moment {
	return momentAt(c.Clock.Now(), UTC)
}

// FromTimestamp interprets seconds since the epoch, with up to nanosecond
// precision, in the given zone (nil spec means local). The float is
// decomposed by flooring so negative fractional inputs resolve to the
// correct instant.
func FromTimestamp(seconds float64, spec ZoneSpec) (Moment, error) {
	return DefaultContext().FromTimestamp(seconds, spec)
}

// FromTimestamp interprets seconds since the epoch in the given zone.
func (c *Context) FromTimestamp(seconds float64, spec ZoneSpec) (Moment, error) {
	zone, err := c.resolveOr(spec, ZoneName("local"))
	if err != nil {
		return Moment{}, err
	}
	return momentAt(timestampToTime(seconds), zone), nil
}

// UTCFromTimestamp interprets seconds since the epoch as UTC.
func UTCFromTimestamp(seconds float64) Moment {
	return momentAt(timestampToTime(seconds), UTC)
}

func timestampToTime(seconds float64) time.Time {
	secs := math.Floor(seconds)
	nsec := int64(math.Round((seconds - secs) * 1e9))
	if nsec >= 1e9 {
		secs++
		nsec = 0
	}
	return time.Unix(int64(secs), nsec)
}

// FromTime constructs a Moment from a host time.Time. With a nil spec the
// value's own zone offset is kept; otherwise the value's wall-clock fields
// are reinterpreted in the resolved zone.
func FromTime(t time.Time, spec ZoneSpec) (Moment, error) {
	return DefaultContext().FromTime(t, spec)
}

// FromTime constructs a Moment from a host time.Time.
func (c *Context) FromTime(t time.Time, spec ZoneSpec) (Moment, error) {
	if spec == nil {
		name, off := t.Zone()
		if off == 0 {
			return momentAt(t, UTC), nil
		}
		return momentAt(t, FixedZone(name, off)), nil
	}
	zone, err := c.ResolveZone(spec, c.Clock.Now())
	if err != nil {
		return Moment{}, err
	}
	return momentFromWall(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone), nil
}

// FromDate constructs the midnight Moment of a civil date in the given zone
// (nil spec means UTC).
func FromDate(year int, month time.Month, day int, spec ZoneSpec) (Moment, error) {
	return DefaultContext().Date(year, month, day, 0, 0, 0, 0, spec)
}

// FromOrdinal constructs the UTC midnight Moment of the 1-based ordinal day
// counted from 0001-01-01. Valid range is [1, 3652059].
func FromOrdinal(ordinal int64) (Moment, error) {
	if ordinal < minOrdinal || ordinal > maxOrdinal {
		return Moment{}, newError(ErrCodeOrdinalOutOfRange, "ordinal %d is out of range", ordinal)
	}
	t := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(ordinal-1))
	return Moment{t: t, zone: UTC}, nil
}

// Field accessors. All are pure derivations from the instant and the zone's
// fixed offset.

func (m Moment) Year() int         { return m.t.Year() }
func (m Moment) Month() time.Month { return m.t.Month() }
func (m Moment) Day() int          { return m.t.Day() }
func (m Moment) Hour() int         { return m.t.Hour() }
func (m Moment) Minute() int       { return m.t.Minute() }
func (m Moment) Second() int       { return m.t.Second() }
func (m Moment) Nanosecond() int   { return m.t.Nanosecond() }
func (m Moment) Microsecond() int  { return m.t.Nanosecond() / 1e3 }

// Quarter returns the calendar quarter, 1..4.
func (m Moment) Quarter() int {
	return (int(m.t.Month())-1)/3 + 1
}

// ISOWeek returns the ISO-8601 week-based year and week number.
func (m Moment) ISOWeek() (year, week int) {
	return m.t.ISOWeek()
}

// Week returns the ISO-8601 week number.
func (m Moment) Week() int {
	_, w := m.t.ISOWeek()
	return w
}

// Weekday returns the day of week with Monday == 0 .. Sunday == 6.
func (m Moment) Weekday() int {
	return (int(m.t.Weekday()) + 6) % 7
}

// ISOWeekday returns the ISO-8601 day of week with Monday == 1 .. Sunday == 7.
func (m Moment) ISOWeekday() int {
	return m.Weekday() + 1
}

// ISOCalendar returns the ISO-8601 (year, week, weekday) triple.
func (m Moment) ISOCalendar() (year, week, weekday int) {
	year, week = m.t.ISOWeek()
	return year, week, m.ISOWeekday()
}

// Ordinal returns the 1-based ordinal day counted from 0001-01-01.
func (m Moment) Ordinal() int64 {
	return daysFromCivil(m.t.Year(), m.t.Month(), m.t.Day()) + ordinalEpochShift
}

// Timestamp returns whole seconds since the epoch.
func (m Moment) Timestamp() int64 { return m.t.Unix() }

// FloatTimestamp returns seconds since the epoch including the fractional
// part.
func (m Moment) FloatTimestamp() float64 {
	return float64(m.t.Unix()) + float64(m.t.Nanosecond())/1e9
}

// Time renders the Moment as a host time.Time in the zone's location.
func (m Moment) Time() time.Time { return m.t }

// Zone returns the resolved zone.
func (m Moment) Zone() Zone { return m.zone }

// Comparisons are by instant only; zones are ignored.

func (m Moment) Equal(other Moment) bool  { return m.t.Equal(other.t) }
func (m Moment) Before(other Moment) bool { return m.t.Before(other.t) }
func (m Moment) After(other Moment) bool  { return m.t.After(other.t) }

// Compare returns -1, 0, or +1 ordering by instant.
func (m Moment) Compare(other Moment) int { return m.t.Compare(other.t) }

// Add shifts the Moment by a fixed duration.
func (m Moment) Add(d time.Duration) Moment {
	return Moment{t: m.t.Add(d), zone: m.zone}
}

// Sub returns the exact duration between two Moments.
func (m Moment) Sub(other Moment) time.Duration {
	return m.t.Sub(other.t)
}
