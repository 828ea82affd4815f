// Package convert converts between UTC epoch seconds and civil calendar
// fields.
//
// Every function is pure and total over its documented domain: no time zone
// is consulted and nothing is validated. Callers apply an offset with the
// Shift functions and validate input with the types package. Microseconds
// are carried out of band; they never enter the integer-second values.
package convert

import (
	"github.com/nebula-contrib/graphtime/temporal/types"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97

	// epochShift is the number of days from 0000-03-01, the start of the
	// computational era, to 1970-01-01.
	epochShift = 719468
)

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// DaysFromCivil returns the number of days from 1970-01-01 to the given
// proleptic Gregorian date. Years are counted from March so that the leap
// day falls at the end of each computational year.
func DaysFromCivil(year, month, day int64) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400                  // [0, 399]
	mp := floorMod(month+9, 12)            // March is 0
	doy := (153*mp+2)/5 + day - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPer400Years + doe - epochShift
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int64) {
	z := days + epochShift
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/(daysPer400Years-1)) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153 // March is 0
	day = doy - (153*mp+2)/5 + 1
	month = mp + 3
	if month > 12 {
		month -= 12
	}
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

// Weekday returns the day of the week of the day days after 1970-01-01,
// where 0 is Sunday.
func Weekday(days int64) int {
	// 1970-01-01 was a Thursday.
	return int(floorMod(days+4, 7))
}

// DateTimeToSeconds returns the number of seconds from the epoch to dt,
// ignoring dt.Microsecond.
func DateTimeToSeconds(dt types.DateTime) int64 {
	return DaysFromCivil(int64(dt.Year), int64(dt.Month), int64(dt.Day))*secondsPerDay +
		TimeToSeconds(dt.Time())
}

// SecondsToDateTime returns the DateTime secs seconds after the epoch. The
// microsecond field is zero.
func SecondsToDateTime(secs int64) types.DateTime {
	return types.Combine(SecondsToDate(secs), SecondsToTime(secs))
}

// DateToSeconds returns the number of seconds from the epoch to midnight of
// d.
func DateToSeconds(d types.Date) int64 {
	return DaysFromCivil(int64(d.Year), int64(d.Month), int64(d.Day)) * secondsPerDay
}

// SecondsToDate returns the Date containing the instant secs seconds after
// the epoch.
func SecondsToDate(secs int64) types.Date {
	y, m, d := CivilFromDays(floorDiv(secs, secondsPerDay))
	return types.NewDate(int16(y), uint8(m), uint8(d)) //nolint:gosec
}

// TimeToSeconds returns the number of seconds since midnight of ts, ignoring
// ts.Microsecond. The result is in [0, 86400) for valid times.
func TimeToSeconds(ts types.Time) int64 {
	return int64(ts.Hour)*secondsPerHour + int64(ts.Minute)*secondsPerMinute + int64(ts.Second)
}

// SecondsToTime returns the time of day secs seconds after a midnight. The
// microsecond field is zero.
func SecondsToTime(secs int64) types.Time {
	rem := floorMod(secs, secondsPerDay)
	hour := rem / secondsPerHour
	minute := rem % secondsPerHour / secondsPerMinute
	second := rem % secondsPerMinute
	return types.NewTime(uint8(hour), uint8(minute), uint8(second), 0) //nolint:gosec
}

// DateTimeShift adds offset seconds to dt, carrying across day, month, and
// year boundaries. The microsecond field is preserved.
func DateTimeShift(dt types.DateTime, offset int64) types.DateTime {
	return SecondsToDateTime(DateTimeToSeconds(dt) + offset).WithMicrosecond(dt.Microsecond)
}

// TimeShift adds offset seconds to ts, wrapping modulo 24 hours with no date
// carry. The microsecond field is preserved.
func TimeShift(ts types.Time, offset int64) types.Time {
	shifted := SecondsToTime(TimeToSeconds(ts) + offset)
	shifted.Microsecond = ts.Microsecond
	return shifted
}
