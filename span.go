package chronon

import "time"

// Frame is a named calendar granularity used for flooring, ceiling, and
// stepping.
type Frame int

const (
	FrameYear Frame = iota
	FrameQuarter
	FrameMonth
	FrameWeek
	FrameDay
	FrameHour
	FrameMinute
	FrameSecond
	FrameMicrosecond
)

var frameNames = [...]string{"year", "quarter", "month", "week", "day", "hour", "minute", "second", "microsecond"}

func (f Frame) String() string {
	if f < FrameYear || f > FrameMicrosecond {
		return "frame(?)"
	}
	return frameNames[f]
}

// ParseFrame parses a frame name ("year", "quarter", ..., "microsecond").
func ParseFrame(s string) (Frame, error) {
	for i, name := range frameNames {
		if s == name {
			return Frame(i), nil
		}
	}
	return 0, newError(ErrCodeUnsupportedFrame, "unsupported frame %q", s)
}

// Step returns the frame's canonical Delta multiplied by n.
func (f Frame) Step(n int64) Delta {
	switch f {
	case FrameYear:
		return Delta{Years: n}
	case FrameQuarter:
		return Delta{Months: 3 * n}
	case FrameMonth:
		return Delta{Months: n}
	case FrameWeek:
		return Delta{Days: 7 * n}
	case FrameDay:
		return Delta{Days: n}
	case FrameHour:
		return Delta{Hours: n}
	case FrameMinute:
		return Delta{Minutes: n}
	case FrameSecond:
		return Delta{Seconds: n}
	case FrameMicrosecond:
		return Delta{Nanoseconds: 1000 * n}
	default:
		return Delta{}
	}
}

// Bounds selects which edges of an interval are inclusive. The zero value is
// BoundsStartInclusive ("[)").
type Bounds int

const (
	BoundsStartInclusive Bounds = iota // "[)"
	BoundsBothInclusive                // "[]"
	BoundsEndInclusive                 // "(]"
	BoundsBothExclusive                // "()"
)

var boundsText = map[Bounds]string{
	BoundsStartInclusive: "[)",
	BoundsBothInclusive:  "[]",
	BoundsEndInclusive:   "(]",
	BoundsBothExclusive:  "()",
}

func (b Bounds) String() string { return boundsText[b] }

func (b Bounds) startExclusive() bool {
	return b == BoundsEndInclusive || b == BoundsBothExclusive
}

func (b Bounds) endExclusive() bool {
	return b == BoundsStartInclusive || b == BoundsBothExclusive
}

// ParseBounds parses a textual bound policy: "[]", "()", "[)", or "(]".
func ParseBounds(s string) (Bounds, error) {
	for b, text := range boundsText {
		if s == text {
			return b, nil
		}
	}
	return 0, newError(ErrCodeInvalidBounds, "invalid bounds %q, want one of \"[]\", \"()\", \"[)\", \"(]\"", s)
}

// SpanOptions configures Span. Zero values mean: count 1, bounds "[)",
// non-exact, week start Monday (1).
type SpanOptions struct {
	Count     int
	Bounds    Bounds
	Exact     bool
	WeekStart int // 1 = Monday .. 7 = Sunday
}

// Span computes the (floor, ceil) interval enclosing the Moment at the given
// frame. Non-exact floors snap to the frame boundary; exact floors anchor at
// the Moment itself. The ceiling is floor plus count frame steps, and open
// ends under the bound policy are nudged inward by one nanosecond.
// FrameMicrosecond has no sub-frame span and is rejected.
func (m Moment) Span(f Frame, opts SpanOptions) (floor, ceil Moment, err error) {
	if f == FrameMicrosecond {
		return Moment{}, Moment{}, newError(ErrCodeUnsupportedFrame, "no span is defined for frame %q", f)
	}
	if f < FrameYear || f > FrameSecond {
		return Moment{}, Moment{}, newError(ErrCodeUnsupportedFrame, "unsupported frame %d", f)
	}
	count := int64(opts.Count)
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return Moment{}, Moment{}, newError(ErrCodeInvalidInterval, "count %d must be positive", count)
	}
	weekStart := opts.WeekStart
	if weekStart == 0 {
		weekStart = 1
	}
	if weekStart < 1 || weekStart > 7 {
		return Moment{}, Moment{}, newError(ErrCodeInvalidWeekStart, "week start %d is out of range 1..7", weekStart)
	}

	floor = m
	if !opts.Exact {
		floor = m.floorTo(f, weekStart)
	}
	ceil = floor.shiftDelta(f.Step(count))
	floor, ceil = applyBounds(floor, ceil, opts.Bounds)
	return floor, ceil, nil
}

// applyBounds nudges open ends inward by one nanosecond.
func applyBounds(floor, ceil Moment, b Bounds) (Moment, Moment) {
	if b.startExclusive() {
		floor = floor.Add(time.Nanosecond)
	}
	if b.endExclusive() {
		ceil = ceil.Add(-time.Nanosecond)
	}
	return floor, ceil
}

// floorTo resets every field at or below the frame's granularity to its
// minimum. Weeks floor to the most recent weekStart day at or before the
// Moment.
func (m Moment) floorTo(f Frame, weekStart int) Moment {
	y, mo, d := m.t.Date()
	h, mi, s := m.t.Clock()
	z := m.zone
	switch f {
	case FrameYear:
		return momentFromWall(y, time.January, 1, 0, 0, 0, 0, z)
	case FrameQuarter:
		first := time.Month((m.Quarter()-1)*3 + 1)
		return momentFromWall(y, first, 1, 0, 0, 0, 0, z)
	case FrameMonth:
		return momentFromWall(y, mo, 1, 0, 0, 0, 0, z)
	case FrameWeek:
		back := (m.Weekday() - (weekStart - 1) + 7) % 7
		midnight := momentFromWall(y, mo, d, 0, 0, 0, 0, z)
		if back == 0 {
			return midnight
		}
		return Moment{t: midnight.t.AddDate(0, 0, -back), zone: z}
	case FrameDay:
		return momentFromWall(y, mo, d, 0, 0, 0, 0, z)
	case FrameHour:
		return momentFromWall(y, mo, d, h, 0, 0, 0, z)
	case FrameMinute:
		return momentFromWall(y, mo, d, h, mi, 0, 0, z)
	case FrameSecond:
		return momentFromWall(y, mo, d, h, mi, s, 0, z)
	default:
		return m
	}
}

// Floor returns the start of the enclosing frame interval (the first element
// of the default start-inclusive span).
func (m Moment) Floor(f Frame) (Moment, error) {
	floor, _, err := m.Span(f, SpanOptions{})
	return floor, err
}

// Ceil returns the end of the enclosing frame interval (the second element
// of the default start-inclusive span).
func (m Moment) Ceil(f Frame) (Moment, error) {
	_, ceil, err := m.Span(f, SpanOptions{})
	return ceil, err
}

// IsBetween reports whether the Moment lies between start and end under the
// bound policy. Pure instant comparison; zones are ignored.
func (m Moment) IsBetween(start, end Moment, b Bounds) bool {
	afterStart := m.After(start) || (!b.startExclusive() && m.Equal(start))
	beforeEnd := m.Before(end) || (!b.endExclusive() && m.Equal(end))
	return afterStart && beforeEnd
}
