package chronon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	assert.True(t, isLeapYear(2012))
	assert.True(t, isLeapYear(2000))
	assert.False(t, isLeapYear(1900))
	assert.False(t, isLeapYear(2013))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, daysInMonth(2013, time.February))
	assert.Equal(t, 29, daysInMonth(2012, time.February))
	assert.Equal(t, 31, daysInMonth(2013, time.January))
	assert.Equal(t, 30, daysInMonth(2013, time.April))
}

func TestDaysFromCivil(t *testing.T) {
	assert.Equal(t, int64(0), daysFromCivil(1970, time.January, 1))
	assert.Equal(t, int64(1), daysFromCivil(1970, time.January, 2))
	assert.Equal(t, int64(-1), daysFromCivil(1969, time.December, 31))
	// 0001-01-01 is ordinal 1.
	assert.Equal(t, int64(1-ordinalEpochShift), daysFromCivil(1, time.January, 1))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), floorDiv(7, 3))
	assert.Equal(t, int64(-3), floorDiv(-7, 3))
	assert.Equal(t, int64(-1), floorDiv(-3, 3))
}
