package chronon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spanFixture is 2013-02-15T03:41:22.008923 UTC, a Friday.
func spanFixture(t *testing.T) Moment {
	t.Helper()
	return mustDate(t, 2013, time.February, 15, 3, 41, 22, 8923000)
}

func TestSpan_Frames(t *testing.T) {
	m := spanFixture(t)

	cases := []struct {
		frame Frame
		floor Moment
		ceil  Moment
	}{
		{FrameYear, mustDate(t, 2013, time.January, 1, 0, 0, 0, 0), mustDate(t, 2013, time.December, 31, 23, 59, 59, 999999999)},
		{FrameQuarter, mustDate(t, 2013, time.January, 1, 0, 0, 0, 0), mustDate(t, 2013, time.March, 31, 23, 59, 59, 999999999)},
		{FrameMonth, mustDate(t, 2013, time.February, 1, 0, 0, 0, 0), mustDate(t, 2013, time.February, 28, 23, 59, 59, 999999999)},
		{FrameWeek, mustDate(t, 2013, time.February, 11, 0, 0, 0, 0), mustDate(t, 2013, time.February, 17, 23, 59, 59, 999999999)},
		{FrameDay, mustDate(t, 2013, time.February, 15, 0, 0, 0, 0), mustDate(t, 2013, time.February, 15, 23, 59, 59, 999999999)},
		{FrameHour, mustDate(t, 2013, time.February, 15, 3, 0, 0, 0), mustDate(t, 2013, time.February, 15, 3, 59, 59, 999999999)},
		{FrameMinute, mustDate(t, 2013, time.February, 15, 3, 41, 0, 0), mustDate(t, 2013, time.February, 15, 3, 41, 59, 999999999)},
		{FrameSecond, mustDate(t, 2013, time.February, 15, 3, 41, 22, 0), mustDate(t, 2013, time.February, 15, 3, 41, 22, 999999999)},
	}
	for _, tc := range cases {
		t.Run(tc.frame.String(), func(t *testing.T) {
			floor, ceil, err := m.Span(tc.frame, SpanOptions{})
			require.NoError(t, err)
			assert.True(t, floor.Equal(tc.floor), "floor %s != %s", floor, tc.floor)
			assert.True(t, ceil.Equal(tc.ceil), "ceil %s != %s", ceil, tc.ceil)
		})
	}
}

func TestSpan_WeekStart(t *testing.T) {
	m := spanFixture(t)

	cases := []struct {
		weekStart int
		floorDay  int
	}{
		{1, 11}, // Monday
		{2, 12}, // Tuesday
		{6, 9},  // Saturday
		{7, 10}, // Sunday
	}
	for _, tc := range cases {
		floor, _, err := m.Span(FrameWeek, SpanOptions{WeekStart: tc.weekStart})
		require.NoError(t, err)
		assert.Equal(t, tc.floorDay, floor.Day(), "week start %d", tc.weekStart)
		assert.Equal(t, 0, floor.Hour())
	}
}

func TestSpan_WeekFloorOnBoundary(t *testing.T) {
	// A Monday floors to itself under the default week start.
	mon := mustDate(t, 2013, time.February, 11, 5, 0, 0, 0)
	floor, _, err := mon.Span(FrameWeek, SpanOptions{})
	require.NoError(t, err)
	assert.Equal(t, 11, floor.Day())
}

func TestSpan_Bounds(t *testing.T) {
	m := spanFixture(t)
	closedFloor := mustDate(t, 2013, time.February, 15, 3, 0, 0, 0)
	closedCeil := mustDate(t, 2013, time.February, 15, 4, 0, 0, 0)

	cases := []struct {
		bounds Bounds
		floor  Moment
		ceil   Moment
	}{
		{BoundsBothInclusive, closedFloor, closedCeil},
		{BoundsStartInclusive, closedFloor, closedCeil.Add(-time.Nanosecond)},
		{BoundsEndInclusive, closedFloor.Add(time.Nanosecond), closedCeil},
		{BoundsBothExclusive, closedFloor.Add(time.Nanosecond), closedCeil.Add(-time.Nanosecond)},
	}
	for _, tc := range cases {
		t.Run(tc.bounds.String(), func(t *testing.T) {
			floor, ceil, err := m.Span(FrameHour, SpanOptions{Bounds: tc.bounds})
			require.NoError(t, err)
			assert.True(t, floor.Equal(tc.floor), "floor %s != %s", floor, tc.floor)
			assert.True(t, ceil.Equal(tc.ceil), "ceil %s != %s", ceil, tc.ceil)
		})
	}
}

func TestSpan_Exact(t *testing.T) {
	m := spanFixture(t)

	floor, ceil, err := m.Span(FrameHour, SpanOptions{Exact: true})
	require.NoError(t, err)
	assert.True(t, floor.Equal(m))
	assert.True(t, ceil.Equal(m.Add(time.Hour-time.Nanosecond)))

	floor, ceil, err = m.Span(FrameHour, SpanOptions{Exact: true, Bounds: BoundsBothInclusive})
	require.NoError(t, err)
	assert.True(t, floor.Equal(m))
	assert.True(t, ceil.Equal(m.Add(time.Hour)))
}

func TestSpan_Count(t *testing.T) {
	m := spanFixture(t)

	floor, ceil, err := m.Span(FrameHour, SpanOptions{Count: 2, Bounds: BoundsBothInclusive})
	require.NoError(t, err)
	assert.True(t, floor.Equal(mustDate(t, 2013, time.February, 15, 3, 0, 0, 0)))
	assert.True(t, ceil.Equal(mustDate(t, 2013, time.February, 15, 5, 0, 0, 0)))
}

func TestSpan_Errors(t *testing.T) {
	m := spanFixture(t)

	_, _, err := m.Span(FrameMicrosecond, SpanOptions{})
	assert.Equal(t, ErrCodeUnsupportedFrame, CodeOf(err))

	_, _, err = m.Span(FrameHour, SpanOptions{Count: -1})
	assert.Equal(t, ErrCodeInvalidInterval, CodeOf(err))

	_, _, err = m.Span(FrameWeek, SpanOptions{WeekStart: 55})
	assert.Equal(t, ErrCodeInvalidWeekStart, CodeOf(err))
}

func TestFloorCeil(t *testing.T) {
	m := spanFixture(t)

	floor, err := m.Floor(FrameDay)
	require.NoError(t, err)
	assert.Equal(t, "2013-02-15T00:00:00+00:00", floor.String())

	ceil, err := m.Ceil(FrameDay)
	require.NoError(t, err)
	assert.True(t, ceil.Equal(mustDate(t, 2013, time.February, 15, 23, 59, 59, 999999999)))
}

func TestParseFrame(t *testing.T) {
	f, err := ParseFrame("quarter")
	require.NoError(t, err)
	assert.Equal(t, FrameQuarter, f)
	assert.Equal(t, "quarter", f.String())

	_, err = ParseFrame("fortnight")
	assert.Equal(t, ErrCodeUnsupportedFrame, CodeOf(err))
}

func TestParseBounds(t *testing.T) {
	for want, text := range boundsText {
		got, err := ParseBounds(text)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseBounds("][")
	assert.Equal(t, ErrCodeInvalidBounds, CodeOf(err))
}

func TestIsBetween(t *testing.T) {
	start := mustDate(t, 2013, time.February, 15, 3, 0, 0, 0)
	end := mustDate(t, 2013, time.February, 15, 4, 0, 0, 0)
	inside := mustDate(t, 2013, time.February, 15, 3, 30, 0, 0)

	cases := []struct {
		name   string
		m      Moment
		bounds Bounds
		want   bool
	}{
		{"inside", inside, BoundsStartInclusive, true},
		{"before", start.Add(-time.Second), BoundsBothInclusive, false},
		{"after", end.Add(time.Second), BoundsBothInclusive, false},
		{"start closed", start, BoundsStartInclusive, true},
		{"start open", start, BoundsEndInclusive, false},
		{"end closed", end, BoundsEndInclusive, true},
		{"end open", end, BoundsStartInclusive, false},
		{"both open inside", inside, BoundsBothExclusive, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m.IsBetween(start, end, tc.bounds))
		})
	}
}
