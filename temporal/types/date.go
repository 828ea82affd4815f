package types

import (
	"cmp"
	"fmt"
	"time"
)

// Date represents a calendar date without a time of day or time zone.
type Date struct {
	Year  int16
	Month uint8
	Day   uint8
}

// NewDate returns the Date for year, month, and day. It does not validate
// the fields.
func NewDate(year int16, month, day uint8) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the Date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: int16(y), Month: uint8(m), Day: uint8(d)} //nolint:gosec
}

// GoTime returns d as a time.Time at midnight UTC.
func (d Date) GoTime() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}

// formatDate formats a date in the canonical "YYYY-MM-DD" format.
func formatDate(year int16, month, day uint8) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -int(year), month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// String returns the string representation of d using the format
// "YYYY-MM-DD".
func (d Date) String() string {
	return formatDate(d.Year, d.Month, d.Day)
}

// Compare compares d with u field by field. If d is before u, it returns -1;
// if d is after u, it returns +1; if they're the same, it returns 0.
func (d Date) Compare(u Date) int {
	if c := cmp.Compare(d.Year, u.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, u.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, u.Day)
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the "YYYY-MM-DD" format.
func (d Date) MarshalJSON() ([]byte, error) {
	return quote(d.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be a
// quoted string in the "YYYY-MM-DD" format.
func (d *Date) UnmarshalJSON(data []byte) error {
	str, err := unquote(data, "date")
	if err != nil {
		return err
	}
	date, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// quote wraps str in double quotes.
func quote(str string) []byte {
	b := make([]byte, 0, len(str)+len(`""`))
	b = append(b, '"')
	b = append(b, str...)
	b = append(b, '"')
	return b
}

// unquote strips the double quotes from JSON string data.
func unquote(data []byte, kind string) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("%w: Cannot parse %s as %v", ErrType, data, kind)
	}
	return string(data[1 : len(data)-1]), nil
}
