package types

import "fmt"

//nolint:gochecknoglobals
var (
	// daysSoFar holds the number of days before the start of each month in a
	// common year, indexed from 0 (before January) to 12 (whole year).
	daysSoFar = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

	// leapDaysSoFar is daysSoFar for leap years.
	leapDaysSoFar = [13]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysSoFar returns the number of days in year before the first day of month.
// Month 13 returns the length of the year.
func DaysSoFar(year, month int) int {
	if IsLeapYear(year) {
		return leapDaysSoFar[month-1]
	}
	return daysSoFar[month-1]
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year, month int) int {
	p := &daysSoFar
	if IsLeapYear(year) {
		p = &leapDaysSoFar
	}
	return p[month] - p[month-1]
}

// validDate reports whether day exists in month of year. Months outside 1-12
// are reported as invalid rather than indexing past the tables.
func validDate(year int16, month, day uint8) bool {
	return month >= 1 && month <= 12 && day >= 1 &&
		int(day) <= DaysInMonth(int(year), int(month))
}

// invalidDate returns an error wrapping ErrInvalidDate for the string
// representation of a value.
func invalidDate(str string) error {
	return fmt.Errorf("%w: %q is not a valid date", ErrInvalidDate, str)
}

// ValidateDate checks that day exists in month of year. It does not check
// the range of year.
func ValidateDate(year int16, month, day uint8) error {
	if !validDate(year, month, day) {
		return invalidDate(formatDate(year, month, day))
	}
	return nil
}

// Validate returns an error wrapping ErrInvalidDate if d is not a real
// calendar date, e.g., 2019-02-29.
func (d Date) Validate() error {
	if !validDate(d.Year, d.Month, d.Day) {
		return invalidDate(d.String())
	}
	return nil
}

// Validate returns an error wrapping ErrInvalidDate if the date portion of dt
// is not a real calendar date. The time-of-day fields are not checked.
func (dt DateTime) Validate() error {
	if !validDate(dt.Year, dt.Month, dt.Day) {
		return invalidDate(dt.String())
	}
	return nil
}
