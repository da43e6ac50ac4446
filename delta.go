package chronon

// Weekday numbers days Monday == 0 .. Sunday == 6, matching Moment.Weekday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(?)"
	}
	return weekdayNames[w]
}

// Ptr returns a pointer to w, for Delta.Weekday literals.
func (w Weekday) Ptr() *Weekday { return &w }

// Delta is a signed, composable calendar offset. Quarters are absorbed into
// months (x3) and weeks into days (x7) when applied. Years, quarters, and
// months together form a single calendar step with end-of-month clamping;
// the remaining fields are fixed-duration. Weekday, when set, rolls the
// result forward (never backward) to the next occurrence of that weekday,
// staying put if already on it.
//
// Delta addition is deliberately not commutative with itself: the calendar
// step is applied before the fixed-duration step, whatever the field order.
type Delta struct {
	Years       int64
	Quarters    int64
	Months      int64
	Weeks       int64
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	Nanoseconds int64

	Weekday *Weekday
}

// Negate negates every numeric field and preserves Weekday.
func (d Delta) Negate() Delta {
	return Delta{
		Years:       -d.Years,
		Quarters:    -d.Quarters,
		Months:      -d.Months,
		Weeks:       -d.Weeks,
		Days:        -d.Days,
		Hours:       -d.Hours,
		Minutes:     -d.Minutes,
		Seconds:     -d.Seconds,
		Nanoseconds: -d.Nanoseconds,
		Weekday:     d.Weekday,
	}
}

// totalMonths collapses years/quarters/months into the calendar step.
func (d Delta) totalMonths() int64 {
	return d.Years*12 + d.Quarters*3 + d.Months
}

// totalDays collapses weeks/days into the day step.
func (d Delta) totalDays() int64 {
	return d.Weeks*7 + d.Days
}

// IsZero reports whether applying the delta is a no-op.
func (d Delta) IsZero() bool {
	return d.totalMonths() == 0 && d.totalDays() == 0 &&
		d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0 && d.Nanoseconds == 0 &&
		d.Weekday == nil
}
