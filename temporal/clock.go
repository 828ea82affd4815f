package temporal

import (
	"time"

	"github.com/nebula-contrib/graphtime/temporal/convert"
	"github.com/nebula-contrib/graphtime/temporal/types"
)

// offset returns the standard offset of the zone.
func (u *Utils) offset() int64 { return int64(u.zone.UTCOffsetSecs()) }

// offsetAt returns the offset in effect at unix, or the standard offset
// unless WithDST was specified.
func (u *Utils) offsetAt(unix int64) int64 {
	if !u.dst {
		return u.offset()
	}
	return int64(u.zone.OffsetAt(unix))
}

// DateTimeToUTC converts dt from local time to UTC, using
// utc = local - offset.
func (u *Utils) DateTimeToUTC(dt types.DateTime) types.DateTime {
	if !u.dst {
		return convert.DateTimeShift(dt, -u.offset())
	}

	// Guess with the standard offset, then take the offset in effect at
	// the guessed instant. Local times skipped or repeated by a transition
	// resolve to standard time.
	local := convert.DateTimeToSeconds(dt)
	off := u.offsetAt(local - u.offset())
	off = u.offsetAt(local - off)
	return convert.DateTimeShift(dt, -off)
}

// UTCToDateTime converts dt from UTC to local time, using
// local = utc + offset.
func (u *Utils) UTCToDateTime(dt types.DateTime) types.DateTime {
	return convert.DateTimeShift(dt, u.offsetAt(convert.DateTimeToSeconds(dt)))
}

// TimeToUTC converts ts from local time to UTC, wrapping around midnight.
func (u *Utils) TimeToUTC(ts types.Time) types.Time {
	return convert.TimeShift(ts, -u.offset())
}

// UTCToTime converts ts from UTC to local time, wrapping around midnight.
func (u *Utils) UTCToTime(ts types.Time) types.Time {
	return convert.TimeShift(ts, u.offset())
}

// clock reads the wall clock and returns the Unix seconds and the
// microseconds within the second.
func (u *Utils) clock() (int64, uint32) {
	now := u.now()
	return now.Unix(), uint32(now.Nanosecond() / int(time.Microsecond)) //nolint:gosec
}

// LocalDateTime returns the current date and time in the zone of u.
func (u *Utils) LocalDateTime() types.DateTime {
	secs, micro := u.clock()
	return convert.SecondsToDateTime(secs + u.offsetAt(secs)).WithMicrosecond(micro)
}

// UTCDateTime returns the current date and time in UTC.
func (u *Utils) UTCDateTime() types.DateTime {
	secs, micro := u.clock()
	return convert.SecondsToDateTime(secs).WithMicrosecond(micro)
}

// LocalDate returns the current date in the zone of u.
func (u *Utils) LocalDate() types.Date {
	secs, _ := u.clock()
	return convert.SecondsToDate(secs + u.offsetAt(secs))
}

// UTCDate returns the current date in UTC.
func (u *Utils) UTCDate() types.Date {
	secs, _ := u.clock()
	return convert.SecondsToDate(secs)
}

// LocalTime returns the current time of day in the zone of u.
func (u *Utils) LocalTime() types.Time {
	secs, micro := u.clock()
	ts := convert.SecondsToTime(secs + u.offsetAt(secs))
	ts.Microsecond = micro
	return ts
}

// UTCTime returns the current time of day in UTC.
func (u *Utils) UTCTime() types.Time {
	secs, micro := u.clock()
	ts := convert.SecondsToTime(secs)
	ts.Microsecond = micro
	return ts
}
