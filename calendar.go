package chronon

import "time"

// Supported ordinal day range: 0001-01-01 through 9999-12-31.
const (
	minOrdinal int64 = 1
	maxOrdinal int64 = 3652059

	minYear = 1
	maxYear = 9999
)

// ordinalEpochShift converts a days-since-1970 count to a 1-based ordinal
// from 0001-01-01 (ordinal(1970-01-01) == 719163).
const ordinalEpochShift int64 = 719163

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(y int, m time.Month) int {
	if m == time.February && isLeapYear(y) {
		return 29
	}
	return monthDays[m-1]
}

// daysFromCivil returns the day count of a proleptic-Gregorian date relative
// to 1970-01-01. Direct field arithmetic is used instead of time.Time
// subtraction because a Duration cannot span the full year 1..9999 range.
func daysFromCivil(y int, m time.Month, d int) int64 {
	yy := int64(y)
	mm := int64(m)
	if mm <= 2 {
		yy--
	}
	era := floorDiv(yy, 400)
	yoe := yy - era*400
	mp := mm + 9
	if mm > 2 {
		mp = mm - 3
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
