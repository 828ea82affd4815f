package types

import (
	"cmp"
	"fmt"
	"time"
)

// Time represents a wall-clock time of day without a date or time zone.
type Time struct {
	Hour        uint8
	Minute      uint8
	Second      uint8
	Microsecond uint32
}

// NewTime returns the Time for hour, minute, second, and microsecond. It does
// not validate the fields.
func NewTime(hour, minute, second uint8, microsecond uint32) Time {
	return Time{Hour: hour, Minute: minute, Second: second, Microsecond: microsecond}
}

// TimeOf returns the time of day of t in t's location, truncated to
// microseconds.
func TimeOf(t time.Time) Time {
	return Time{
		Hour:        uint8(t.Hour()),   //nolint:gosec
		Minute:      uint8(t.Minute()), //nolint:gosec
		Second:      uint8(t.Second()), //nolint:gosec
		Microsecond: uint32(t.Nanosecond() / int(time.Microsecond)),
	}
}

// GoTime returns ts as a time.Time on 0000-01-01 UTC.
func (ts Time) GoTime() time.Time {
	return time.Date(
		0, 1, 1,
		int(ts.Hour), int(ts.Minute), int(ts.Second),
		int(ts.Microsecond)*int(time.Microsecond),
		time.UTC,
	)
}

// formatTime formats a time of day in the canonical "HH:MM:SS.ffffff"
// format.
func formatTime(hour, minute, second uint8, micro uint32) string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", hour, minute, second, micro)
}

// String returns the string representation of ts using the format
// "HH:MM:SS.ffffff".
func (ts Time) String() string {
	return formatTime(ts.Hour, ts.Minute, ts.Second, ts.Microsecond)
}

// Compare compares ts with u field by field. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts Time) Compare(u Time) int {
	if c := cmp.Compare(ts.Hour, u.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(ts.Minute, u.Minute); c != 0 {
		return c
	}
	if c := cmp.Compare(ts.Second, u.Second); c != 0 {
		return c
	}
	return cmp.Compare(ts.Microsecond, u.Microsecond)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string using the "HH:MM:SS.ffffff" format.
func (ts Time) MarshalJSON() ([]byte, error) {
	return quote(ts.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be a
// quoted string in the "HH:MM:SS[.ffffff]" format.
func (ts *Time) UnmarshalJSON(data []byte) error {
	str, err := unquote(data, "time")
	if err != nil {
		return err
	}
	tim, err := ParseTime(str)
	if err != nil {
		return err
	}
	*ts = tim
	return nil
}
