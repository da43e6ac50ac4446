package chronon

import "time"

// Shift applies a calendar Delta and returns the shifted Moment. The
// years/quarters/months portion is applied first as one calendar step,
// clamping end-of-month overflow (Jan 31 + 1 month is the last day of
// February); weeks/days and the time fields follow as fixed-duration
// additions; a target weekday, if set, rolls forward last.
func (m Moment) Shift(d Delta) (Moment, error) {
	if d.Weekday != nil && (*d.Weekday < Monday || *d.Weekday > Sunday) {
		return Moment{}, newError(ErrCodeInvalidWeekday, "weekday %d is out of range 0..6", *d.Weekday)
	}
	return m.shiftDelta(d), nil
}

// shiftDelta is Shift without weekday validation, for internal stepping with
// known-good deltas.
func (m Moment) shiftDelta(d Delta) Moment {
	out := m
	if months := d.totalMonths(); months != 0 {
		out = out.addMonths(months)
	}
	if days := d.totalDays(); days != 0 {
		out = Moment{t: out.t.AddDate(0, 0, int(days)), zone: out.zone}
	}
	dur := time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Nanoseconds)
	if dur != 0 {
		out = out.Add(dur)
	}
	if d.Weekday != nil {
		ahead := (int(*d.Weekday) - out.Weekday() + 7) % 7
		if ahead != 0 {
			out = Moment{t: out.t.AddDate(0, 0, ahead), zone: out.zone}
		}
	}
	return out
}

// addMonths performs the single calendar step, clamping the day-of-month to
// the target month's length.
func (m Moment) addMonths(months int64) Moment {
	y, mo, day := m.t.Date()
	total := int64(y)*12 + int64(mo) - 1 + months
	ny := int(floorDiv(total, 12))
	nmo := time.Month(total-floorDiv(total, 12)*12) + 1
	if max := daysInMonth(ny, nmo); day > max {
		day = max
	}
	h, mi, s := m.t.Clock()
	return momentFromWall(ny, nmo, day, h, mi, s, m.t.Nanosecond(), m.zone)
}

// To reinterprets the same instant under a new zone: the instant is
// unchanged, only the offset and display name change. The zone is resolved
// against this Moment's instant.
func (m Moment) To(spec ZoneSpec) (Moment, error) {
	return DefaultContext().To(m, spec)
}

// To reinterprets the Moment's instant under a zone resolved by this context.
func (c *Context) To(m Moment, spec ZoneSpec) (Moment, error) {
	zone, err := c.ResolveZone(spec, m.t)
	if err != nil {
		return Moment{}, err
	}
	return momentAt(m.t, zone), nil
}

// ReplaceOption assigns a single field in Replace.
type ReplaceOption func(*replaceFields)

type replaceFields struct {
	year, day, hour, minute, second, nsec *int
	month                                 *time.Month
	zone                                  ZoneSpec
}

func WithYear(year int) ReplaceOption { return func(r *replaceFields) { r.year = &year } }

func WithMonth(month time.Month) ReplaceOption {
	return func(r *replaceFields) { r.month = &month }
}

func WithDay(day int) ReplaceOption { return func(r *replaceFields) { r.day = &day } }

func WithHour(hour int) ReplaceOption { return func(r *replaceFields) { r.hour = &hour } }

func WithMinute(minute int) ReplaceOption { return func(r *replaceFields) { r.minute = &minute } }

func WithSecond(second int) ReplaceOption { return func(r *replaceFields) { r.second = &second } }

func WithNanosecond(nsec int) ReplaceOption { return func(r *replaceFields) { r.nsec = &nsec } }

func WithZone(spec ZoneSpec) ReplaceOption { return func(r *replaceFields) { r.zone = spec } }

// Replace sets individual calendar fields, validating each independently.
// Replacing only the zone re-bases the instant under the new offset, exactly
// like To; it does not hold the wall-clock fields fixed. When the zone is
// replaced together with other fields, the field replacements are applied in
// the current zone first and the result is then re-based.
func (m Moment) Replace(opts ...ReplaceOption) (Moment, error) {
	var r replaceFields
	for _, opt := range opts {
		opt(&r)
	}

	year, month, day := m.t.Date()
	hour, minute, second := m.t.Clock()
	nsec := m.t.Nanosecond()
	changed := false

	if r.year != nil {
		if *r.year < minYear || *r.year > maxYear {
			return Moment{}, newFieldError("year", "year %d is out of range %d..%d", *r.year, minYear, maxYear)
		}
		year, changed = *r.year, true
	}
	if r.month != nil {
		if *r.month < time.January || *r.month > time.December {
			return Moment{}, newFieldError("month", "month %d is out of range 1..12", *r.month)
		}
		month, changed = *r.month, true
	}
	if r.day != nil {
		day, changed = *r.day, true
	}
	if r.hour != nil {
		if *r.hour < 0 || *r.hour > 23 {
			return Moment{}, newFieldError("hour", "hour %d is out of range 0..23", *r.hour)
		}
		hour, changed = *r.hour, true
	}
	if r.minute != nil {
		if *r.minute < 0 || *r.minute > 59 {
			return Moment{}, newFieldError("minute", "minute %d is out of range 0..59", *r.minute)
		}
		minute, changed = *r.minute, true
	}
	if r.second != nil {
		if *r.second < 0 || *r.second > 59 {
			return Moment{}, newFieldError("second", "second %d is out of range 0..59", *r.second)
		}
		second, changed = *r.second, true
	}
	if r.nsec != nil {
		if *r.nsec < 0 || *r.nsec > 999999999 {
			return Moment{}, newFieldError("nanosecond", "nanosecond %d is out of range", *r.nsec)
		}
		nsec, changed = *r.nsec, true
	}
	// Day validity is checked against the resulting month, after year/month
	// replacements have landed.
	if r.day != nil {
		if day < 1 || day > daysInMonth(year, month) {
			return Moment{}, newFieldError("day", "day %d is out of range for %04d-%02d", day, year, month)
		}
	} else if day > daysInMonth(year, month) {
		return Moment{}, newError(ErrCodeInvalidDateTime, "day %d does not exist in %04d-%02d", day, year, month)
	}

	out := m
	if changed {
		out = momentFromWall(year, month, day, hour, minute, second, nsec, m.zone)
	}
	if r.zone != nil {
		return out.To(r.zone)
	}
	return out, nil
}
