package chronon

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes validation and resolution failures.
type ErrorCode string

const (
	// ErrCodeInvalidDateTime indicates a field composite that does not form a
	// valid calendar date/time (e.g. Feb 30).
	ErrCodeInvalidDateTime ErrorCode = "INVALID_DATETIME"

	// ErrCodeInvalidField indicates a single out-of-range field during Replace.
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"

	// ErrCodeInvalidOffset indicates an unparsable fixed-offset specifier.
	ErrCodeInvalidOffset ErrorCode = "INVALID_OFFSET"

	// ErrCodeUnknownZoneName indicates a zone name absent from the zone database.
	ErrCodeUnknownZoneName ErrorCode = "UNKNOWN_ZONE_NAME"

	// ErrCodeZoneQueryFailed indicates an external zone provider that could not
	// supply offset information.
	ErrCodeZoneQueryFailed ErrorCode = "ZONE_QUERY_FAILED"

	// ErrCodeOrdinalOutOfRange indicates an ordinal day outside [1, 3652059].
	ErrCodeOrdinalOutOfRange ErrorCode = "ORDINAL_OUT_OF_RANGE"

	// ErrCodeInvalidWeekday indicates a target weekday outside Monday..Sunday.
	ErrCodeInvalidWeekday ErrorCode = "INVALID_WEEKDAY"

	// ErrCodeInvalidWeekStart indicates a week start outside 1..7.
	ErrCodeInvalidWeekStart ErrorCode = "INVALID_WEEK_START"

	// ErrCodeUnsupportedFrame indicates a frame with no defined span (or an
	// unrecognized frame name).
	ErrCodeUnsupportedFrame ErrorCode = "UNSUPPORTED_FRAME"

	// ErrCodeInvalidInterval indicates an interval or count below 1.
	ErrCodeInvalidInterval ErrorCode = "INVALID_INTERVAL"

	// ErrCodeRangeEndBeforeStart indicates a range whose end precedes its start.
	ErrCodeRangeEndBeforeStart ErrorCode = "RANGE_END_BEFORE_START"

	// ErrCodeUnknownTimespec indicates an unrecognized ISO format timespec.
	ErrCodeUnknownTimespec ErrorCode = "UNKNOWN_TIMESPEC"

	// ErrCodeInvalidBounds indicates a bound policy outside "[]", "()", "[)", "(]".
	ErrCodeInvalidBounds ErrorCode = "INVALID_BOUNDS"

	// ErrCodeParseFailure indicates text that does not match its format string.
	ErrCodeParseFailure ErrorCode = "PARSE_FAILURE"
)

// Error is the structured error type for all chronon failures.
//
// Every validation failure is surfaced immediately at the call that detected
// it; nothing is retried or silently corrected. Field names the offending
// field for ErrCodeInvalidField; ZoneName names the zone for resolution
// errors.
type Error struct {
	Code     ErrorCode
	Message  string
	Field    string
	ZoneName string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	case e.ZoneName != "":
		return fmt.Sprintf("%s: %s (zone=%s)", e.Code, e.Message, e.ZoneName)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying capability error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from an error. Returns "" for nil or foreign
// errors. Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func newFieldError(field, format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalidField, Message: fmt.Sprintf(format, args...), Field: field}
}

func newZoneError(code ErrorCode, zone string, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), ZoneName: zone, Err: err}
}
