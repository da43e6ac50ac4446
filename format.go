package chronon

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// ISO format timespec options. "auto" renders seconds, plus the microsecond
// part when the sub-second field is non-zero.
const (
	TimespecAuto         = "auto"
	TimespecHours        = "hours"
	TimespecMinutes      = "minutes"
	TimespecSeconds      = "seconds"
	TimespecMilliseconds = "milliseconds"
	TimespecMicroseconds = "microseconds"
)

// ISOFormat renders the Moment in ISO-8601 form with the given date/time
// separator (default "T") and timespec truncation. An unrecognized timespec
// fails with UnknownTimespec.
func (m Moment) ISOFormat(sep, timespec string) (string, error) {
	if sep == "" {
		sep = "T"
	}
	ns := m.Nanosecond()
	var clock string
	switch timespec {
	case "", TimespecAuto:
		if ns == 0 {
			clock = fmt.Sprintf("%02d:%02d:%02d", m.Hour(), m.Minute(), m.Second())
		} else {
			clock = fmt.Sprintf("%02d:%02d:%02d.%06d", m.Hour(), m.Minute(), m.Second(), ns/1e3)
		}
	case TimespecHours:
		clock = fmt.Sprintf("%02d", m.Hour())
	case TimespecMinutes:
		clock = fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
	case TimespecSeconds:
		clock = fmt.Sprintf("%02d:%02d:%02d", m.Hour(), m.Minute(), m.Second())
	case TimespecMilliseconds:
		clock = fmt.Sprintf("%02d:%02d:%02d.%03d", m.Hour(), m.Minute(), m.Second(), ns/1e6)
	case TimespecMicroseconds:
		clock = fmt.Sprintf("%02d:%02d:%02d.%06d", m.Hour(), m.Minute(), m.Second(), ns/1e3)
	default:
		return "", newError(ErrCodeUnknownTimespec, "unknown timespec %q", timespec)
	}
	return fmt.Sprintf("%04d-%02d-%02d%s%s%s",
		m.Year(), m.Month(), m.Day(), sep, clock, formatOffset(m.zone.OffsetSeconds())), nil
}

// String renders the default RFC-3339-style form.
func (m Moment) String() string {
	s, _ := m.ISOFormat("T", TimespecAuto)
	return s
}

// Format renders the Moment through the strftime engine. An empty layout
// renders the default "YYYY-MM-DD HH:MM:SS±HH:MM" form.
func (m Moment) Format(layout string) string {
	if layout == "" {
		s, _ := m.ISOFormat(" ", TimespecSeconds)
		return s
	}
	return strftime.Format(layout, m.t)
}

// CTime renders the Moment in ctime form ("Mon Jan  2 15:04:05 2006").
func (m Moment) CTime() string {
	return m.t.Format(time.ANSIC)
}

// Parse extracts calendar fields from text using a strftime layout. Fields
// absent from the layout keep Go's zero-date defaults. Without an explicit
// zone, the offset parsed from the text (or zero) becomes a fixed-offset
// zone; with one, the text's wall-clock fields are interpreted in that zone.
func Parse(text, layout string, spec ZoneSpec) (Moment, error) {
	return DefaultContext().Parse(text, layout, spec)
}

// Parse extracts calendar fields from text using a strftime layout.
func (c *Context) Parse(text, layout string, spec ZoneSpec) (Moment, error) {
	goLayout, err := strftime.Layout(layout)
	if err != nil {
		return Moment{}, &Error{Code: ErrCodeParseFailure, Message: fmt.Sprintf("unsupported format %q", layout), Err: err}
	}
	if spec == nil {
		t, err := time.Parse(goLayout, text)
		if err != nil {
			return Moment{}, &Error{Code: ErrCodeParseFailure, Message: fmt.Sprintf("%q does not match format %q", text, layout), Err: err}
		}
		return c.FromTime(t, nil)
	}
	zone, err := c.ResolveZone(spec, c.Clock.Now())
	if err != nil {
		return Moment{}, err
	}
	t, err := time.ParseInLocation(goLayout, text, zone.Location())
	if err != nil {
		return Moment{}, &Error{Code: ErrCodeParseFailure, Message: fmt.Sprintf("%q does not match format %q", text, layout), Err: err}
	}
	return momentAt(t, zone), nil
}
