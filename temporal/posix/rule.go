package posix

import (
	"fmt"
	"strings"

	"github.com/nebula-contrib/graphtime/temporal/convert"
	"github.com/nebula-contrib/graphtime/temporal/types"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// defaultTransitionTime is the local time of a transition with no
	// explicit "/time" suffix.
	defaultTransitionTime = 2 * secondsPerHour
)

// Kind identifies the form of a Transition.
type Kind uint8

const (
	// Julian is the "Jn" form: day n of the year, 1-365, never counting
	// February 29.
	Julian Kind = iota + 1

	// ZeroJulian is the "n" form: zero-based day n of the year, 0-365,
	// counting February 29 in leap years.
	ZeroJulian

	// MonthWeekDay is the "Mm.w.d" form: weekday d (0 is Sunday) of week w
	// (5 is the last) of month m.
	MonthWeekDay
)

// String returns the name of the transition form.
func (k Kind) String() string {
	switch k {
	case Julian:
		return "julian"
	case ZeroJulian:
		return "zero-julian"
	case MonthWeekDay:
		return "month-week-day"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Transition is a rule for the day and time of a daylight saving time
// change.
type Transition struct {
	Kind Kind

	// Day is the day of the year for Julian and ZeroJulian transitions.
	Day int

	// Month, Week, and Weekday describe MonthWeekDay transitions.
	Month   int
	Week    int
	Weekday int

	// Time is the local wall-clock time of the change in seconds after
	// midnight. It may be negative or exceed one day.
	Time int32
}

// dayOfYear returns the zero-based day of year on which t falls in year.
func (t Transition) dayOfYear(year int) int {
	switch t.Kind {
	case Julian:
		// J60 is March 1 in every year.
		d := t.Day - 1
		if types.IsLeapYear(year) && t.Day >= 31+29 {
			d++
		}
		return d
	case ZeroJulian:
		return t.Day
	default:
		first := convert.DaysFromCivil(int64(year), int64(t.Month), 1)
		mday := 1 + (t.Weekday-convert.Weekday(first)+7)%7 + (t.Week-1)*7
		if dim := types.DaysInMonth(year, t.Month); mday > dim {
			// Week 5 means the last such weekday, which may be in week 4.
			mday -= 7
		}
		return types.DaysSoFar(year, t.Month) + mday - 1
	}
}

// YearOffset returns the number of seconds from local midnight on January 1
// of year to the transition, measured in the local time in effect before
// the transition.
func (t Transition) YearOffset(year int) int64 {
	return int64(t.dayOfYear(year))*secondsPerDay + int64(t.Time)
}

// String returns the POSIX representation of t, including the time suffix
// only when it differs from the 02:00:00 default.
func (t Transition) String() string {
	var b strings.Builder
	switch t.Kind {
	case Julian:
		fmt.Fprintf(&b, "J%d", t.Day)
	case ZeroJulian:
		fmt.Fprintf(&b, "%d", t.Day)
	default:
		fmt.Fprintf(&b, "M%d.%d.%d", t.Month, t.Week, t.Weekday)
	}
	if t.Time != defaultTransitionTime {
		b.WriteByte('/')
		b.WriteString(formatOffset(t.Time, false))
	}
	return b.String()
}

// Rule is a parsed time zone rule. Offsets are in seconds east of UTC, so
// that local = utc + offset, regardless of the sign convention of the
// source string.
type Rule struct {
	StdName   string
	StdOffset int32

	// DSTName is empty when the zone has no daylight saving time.
	DSTName   string
	DSTOffset int32

	// Start and End are the transitions into and out of daylight saving
	// time. Both are nil when DSTName is empty.
	Start *Transition
	End   *Transition
}

// HasDST reports whether r observes daylight saving time.
func (r *Rule) HasDST() bool {
	return r.DSTName != "" && r.Start != nil && r.End != nil
}

// Lookup returns the abbreviation and offset in effect at the instant unix
// seconds after the epoch, and whether daylight saving time is in effect.
func (r *Rule) Lookup(unix int64) (name string, offset int32, isDST bool) {
	if !r.HasDST() {
		return r.StdName, r.StdOffset, false
	}

	year, _, _ := convert.CivilFromDays(floorDiv(unix+int64(r.StdOffset), secondsPerDay))
	yearStart := convert.DaysFromCivil(year, 1, 1) * secondsPerDay

	// Start is written in standard time and End in daylight saving time.
	start := yearStart + r.Start.YearOffset(int(year)) - int64(r.StdOffset)
	end := yearStart + r.End.YearOffset(int(year)) - int64(r.DSTOffset)

	if start < end {
		isDST = start <= unix && unix < end
	} else {
		// Southern hemisphere: DST spans the new year.
		isDST = unix < end || start <= unix
	}
	if isDST {
		return r.DSTName, r.DSTOffset, true
	}
	return r.StdName, r.StdOffset, false
}

// String returns r in the engine's configuration format, which Parse
// accepts: offsets east of UTC and the daylight saving offset as the
// adjustment to standard time.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(formatName(r.StdName))
	b.WriteString(formatOffset(r.StdOffset, true))
	if r.DSTName == "" {
		return b.String()
	}
	b.WriteString(formatName(r.DSTName))
	b.WriteString(formatOffset(r.DSTOffset-r.StdOffset, true))
	r.writeTransitions(&b)
	return b.String()
}

// POSIXString returns r in the POSIX TZ environment format, which Parse
// accepts with WithPOSIXSign: offsets west of UTC and the daylight saving
// offset as an absolute offset.
func (r *Rule) POSIXString() string {
	var b strings.Builder
	b.WriteString(formatName(r.StdName))
	b.WriteString(formatOffset(-r.StdOffset, false))
	if r.DSTName == "" {
		return b.String()
	}
	b.WriteString(formatName(r.DSTName))
	if r.DSTOffset != r.StdOffset+secondsPerHour {
		b.WriteString(formatOffset(-r.DSTOffset, false))
	}
	r.writeTransitions(&b)
	return b.String()
}

func (r *Rule) writeTransitions(b *strings.Builder) {
	if r.Start == nil || r.End == nil {
		return
	}
	b.WriteByte(',')
	b.WriteString(r.Start.String())
	b.WriteByte(',')
	b.WriteString(r.End.String())
}

// formatName quotes name in angle brackets unless it is all letters.
func formatName(name string) string {
	for _, r := range name {
		if !isNameRune(r) {
			return "<" + name + ">"
		}
	}
	return name
}

// formatOffset formats secs as [-]hh:mm:ss. The long form always includes a
// sign and all three fields; the short form drops a "+" sign and zero
// trailing fields.
func formatOffset(secs int32, long bool) string {
	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	} else if long {
		sign = "+"
	}
	h, m, s := secs/secondsPerHour, secs%secondsPerHour/secondsPerMinute, secs%secondsPerMinute
	switch {
	case long || s != 0:
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	case m != 0:
		return fmt.Sprintf("%s%d:%02d", sign, h, m)
	default:
		return fmt.Sprintf("%s%d", sign, h)
	}
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
