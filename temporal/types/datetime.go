package types

import (
	"time"
)

// DateTime represents a calendar date and time of day without a time zone.
// The engine stores DateTime values in UTC.
type DateTime struct {
	Year        int16
	Month       uint8
	Day         uint8
	Hour        uint8
	Minute      uint8
	Second      uint8
	Microsecond uint32
}

// NewDateTime returns the DateTime for the given fields. It does not validate
// the fields.
func NewDateTime(year int16, month, day, hour, minute, second uint8, microsecond uint32) DateTime {
	return DateTime{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Microsecond: microsecond,
	}
}

// Combine joins d and ts into a DateTime.
func Combine(d Date, ts Time) DateTime {
	return NewDateTime(d.Year, d.Month, d.Day, ts.Hour, ts.Minute, ts.Second, ts.Microsecond)
}

// DateTimeOf returns the DateTime of t in t's location, truncated to
// microseconds.
func DateTimeOf(t time.Time) DateTime {
	return Combine(DateOf(t), TimeOf(t))
}

// Date returns the date portion of dt.
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// Time returns the time-of-day portion of dt.
func (dt DateTime) Time() Time {
	return Time{Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second, Microsecond: dt.Microsecond}
}

// WithMicrosecond returns a copy of dt with its microsecond field set to
// micro.
func (dt DateTime) WithMicrosecond(micro uint32) DateTime {
	dt.Microsecond = micro
	return dt
}

// GoTime returns dt as a time.Time in UTC.
func (dt DateTime) GoTime() time.Time {
	return time.Date(
		int(dt.Year), time.Month(dt.Month), int(dt.Day),
		int(dt.Hour), int(dt.Minute), int(dt.Second),
		int(dt.Microsecond)*int(time.Microsecond),
		time.UTC,
	)
}

// String returns the string representation of dt using the format
// "YYYY-MM-DDTHH:MM:SS.ffffff".
func (dt DateTime) String() string {
	return formatDate(dt.Year, dt.Month, dt.Day) + "T" +
		formatTime(dt.Hour, dt.Minute, dt.Second, dt.Microsecond)
}

// Compare compares dt with u field by field. If dt is before u, it returns
// -1; if dt is after u, it returns +1; if they're the same, it returns 0.
func (dt DateTime) Compare(u DateTime) int {
	if c := dt.Date().Compare(u.Date()); c != 0 {
		return c
	}
	return dt.Time().Compare(u.Time())
}

// MarshalJSON implements the json.Marshaler interface. The value is a quoted
// string using the "YYYY-MM-DDTHH:MM:SS.ffffff" format.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return quote(dt.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must be
// a quoted string accepted by ParseDateTime.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	str, err := unquote(data, "datetime")
	if err != nil {
		return err
	}
	val, err := ParseDateTime(str)
	if err != nil {
		return err
	}
	*dt = val
	return nil
}
