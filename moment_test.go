package chronon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chronon/internal/testutil"
)

// mustDate builds a UTC Moment or fails the test.
func mustDate(t *testing.T, year int, month time.Month, day, hour, min, sec, nsec int) Moment {
	t.Helper()
	m, err := Date(year, month, day, hour, min, sec, nsec, nil)
	require.NoError(t, err)
	return m
}

func frozenContext(at time.Time) *Context {
	return NewContext(testutil.FrozenClock{T: at}, testutil.StaticZoneDB{})
}

func TestDate_Fields(t *testing.T) {
	m := mustDate(t, 2013, time.February, 3, 12, 30, 45, 1000)

	assert.Equal(t, 2013, m.Year())
	assert.Equal(t, time.February, m.Month())
	assert.Equal(t, 3, m.Day())
	assert.Equal(t, 12, m.Hour())
	assert.Equal(t, 30, m.Minute())
	assert.Equal(t, 45, m.Second())
	assert.Equal(t, 1000, m.Nanosecond())
	assert.Equal(t, 1, m.Microsecond())
	assert.Equal(t, "UTC", m.Zone().Name())
}

func TestDate_InvalidComposite(t *testing.T) {
	// Both fields are individually in range; the composite is not a date.
	_, err := Date(2013, time.February, 30, 0, 0, 0, 0, nil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))

	_, err = Date(2013, time.April, 31, 0, 0, 0, 0, nil)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))

	_, err = Date(2013, time.February, 3, 24, 0, 0, 0, nil)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))
}

func TestDate_YearRange(t *testing.T) {
	_, err := Date(0, time.January, 1, 0, 0, 0, 0, nil)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))

	_, err = Date(10000, time.January, 1, 0, 0, 0, 0, nil)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))

	m, err := Date(9999, time.December, 31, 23, 59, 59, 999999999, nil)
	require.NoError(t, err)
	assert.Equal(t, 9999, m.Year())
}

func TestDate_LeapDay(t *testing.T) {
	m := mustDate(t, 2012, time.February, 29, 0, 0, 0, 0)
	assert.Equal(t, 29, m.Day())

	_, err := Date(2013, time.February, 29, 0, 0, 0, 0, nil)
	assert.Equal(t, ErrCodeInvalidDateTime, CodeOf(err))
}

func TestNow_UsesContextClock(t *testing.T) {
	at := time.Date(2013, time.February, 3, 12, 30, 45, 0, time.UTC)
	c := frozenContext(at)

	m, err := c.Now(ZoneName("utc"))
	require.NoError(t, err)
	assert.Equal(t, int64(at.Unix()), m.Timestamp())

	u := c.UTCNow()
	assert.True(t, u.Equal(m))
	assert.Equal(t, "UTC", u.Zone().Name())
}

func TestFromTimestamp_Fractional(t *testing.T) {
	m := UTCFromTimestamp(1360153845.5)
	assert.Equal(t, int64(1360153845), m.Timestamp())
	assert.Equal(t, 500000000, m.Nanosecond())
}

func TestFromTimestamp_NegativeFractional(t *testing.T) {
	// -0.5 is half a second before the epoch, not after.
	m := UTCFromTimestamp(-0.5)
	assert.Equal(t, 1969, m.Year())
	assert.Equal(t, 500000000, m.Nanosecond())
	assert.InDelta(t, -0.5, m.FloatTimestamp(), 1e-6)
}

func TestFromTimestamp_Zone(t *testing.T) {
	c := frozenContext(time.Unix(1360153845, 0))

	m, err := c.FromTimestamp(1360153845, ZoneName("+04:00"))
	require.NoError(t, err)
	// Same instant, shifted wall clock.
	assert.Equal(t, int64(1360153845), m.Timestamp())
	assert.Equal(t, 4*3600, m.Zone().OffsetSeconds())
}

func TestFromTime_KeepsOffset(t *testing.T) {
	src := time.Date(2013, time.February, 3, 12, 30, 45, 0, time.FixedZone("", 3600))

	m, err := FromTime(src, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, m.Hour())
	assert.Equal(t, 3600, m.Zone().OffsetSeconds())
	assert.Equal(t, src.Unix(), m.Timestamp())
}

func TestFromTime_ReinterpretsWallClock(t *testing.T) {
	src := time.Date(2013, time.February, 3, 12, 30, 45, 0, time.UTC)

	m, err := FromTime(src, ZoneName("+02:00"))
	require.NoError(t, err)
	// Wall-clock fields survive; the instant moves.
	assert.Equal(t, 12, m.Hour())
	assert.Equal(t, src.Unix()-2*3600, m.Timestamp())
}

func TestFromDate_Midnight(t *testing.T) {
	m, err := FromDate(2013, time.February, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Hour())
	assert.Equal(t, 0, m.Nanosecond())
	assert.Equal(t, 3, m.Day())
}

func TestFromOrdinal(t *testing.T) {
	m, err := FromOrdinal(1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Year())
	assert.Equal(t, time.January, m.Month())
	assert.Equal(t, 1, m.Day())

	m, err = FromOrdinal(734902)
	require.NoError(t, err)
	assert.Equal(t, 2013, m.Year())
	assert.Equal(t, time.February, m.Month())
	assert.Equal(t, 3, m.Day())
}

func TestFromOrdinal_OutOfRange(t *testing.T) {
	_, err := FromOrdinal(0)
	assert.Equal(t, ErrCodeOrdinalOutOfRange, CodeOf(err))

	_, err = FromOrdinal(3652060)
	assert.Equal(t, ErrCodeOrdinalOutOfRange, CodeOf(err))
}

func TestOrdinal_RoundTrip(t *testing.T) {
	for _, ord := range []int64{1, 365, 366, 734902, 3652059} {
		m, err := FromOrdinal(ord)
		require.NoError(t, err)
		assert.Equal(t, ord, m.Ordinal(), "ordinal %d", ord)
	}
}

func TestQuarter(t *testing.T) {
	for month, want := range map[time.Month]int{
		time.January: 1, time.March: 1,
		time.April: 2, time.June: 2,
		time.July: 3, time.September: 3,
		time.October: 4, time.December: 4,
	} {
		m := mustDate(t, 2013, month, 15, 0, 0, 0, 0)
		assert.Equal(t, want, m.Quarter(), "month %s", month)
	}
}

func TestWeekday_MondayZero(t *testing.T) {
	// 2013-02-03 is a Sunday.
	m := mustDate(t, 2013, time.February, 3, 0, 0, 0, 0)
	assert.Equal(t, 6, m.Weekday())
	assert.Equal(t, 7, m.ISOWeekday())

	// 2013-02-04 is a Monday.
	m = mustDate(t, 2013, time.February, 4, 0, 0, 0, 0)
	assert.Equal(t, 0, m.Weekday())
	assert.Equal(t, 1, m.ISOWeekday())
}

func TestISOCalendar(t *testing.T) {
	m := mustDate(t, 2013, time.February, 3, 0, 0, 0, 0)
	year, week, weekday := m.ISOCalendar()
	assert.Equal(t, 2013, year)
	assert.Equal(t, 5, week)
	assert.Equal(t, 7, weekday)
	assert.Equal(t, 5, m.Week())
}

func TestComparisons_InstantOnly(t *testing.T) {
	utc := mustDate(t, 2013, time.February, 3, 12, 0, 0, 0)
	shifted, err := utc.To(ZoneName("+05:00"))
	require.NoError(t, err)

	// Same instant in different zones compares equal.
	assert.True(t, utc.Equal(shifted))
	assert.Equal(t, 0, utc.Compare(shifted))

	later := utc.Add(time.Second)
	assert.True(t, utc.Before(later))
	assert.True(t, later.After(utc))
	assert.Equal(t, -1, utc.Compare(later))
	assert.Equal(t, time.Second, later.Sub(utc))
}
