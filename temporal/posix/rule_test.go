package posix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionYearOffset(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		tr    Transition
		year  int
		day   int
		secs  int64
		print string
	}{
		{
			name:  "second_sunday_march",
			tr:    *mwd(3, 2, 0, defaultTransitionTime),
			year:  2021,
			day:   72, // March 14
			print: "M3.2.0",
		},
		{
			name:  "first_sunday_november",
			tr:    *mwd(11, 1, 0, defaultTransitionTime),
			year:  2021,
			day:   310, // November 7
			print: "M11.1.0",
		},
		{
			name:  "last_sunday_october",
			tr:    *mwd(10, 5, 0, defaultTransitionTime),
			year:  2021,
			day:   303, // October 31
			print: "M10.5.0",
		},
		{
			name:  "last_sunday_falls_in_week_four",
			tr:    *mwd(4, 5, 0, defaultTransitionTime),
			year:  2021,
			day:   114, // April 25
			print: "M4.5.0",
		},
		{
			name:  "first_sunday_april_3am",
			tr:    *mwd(4, 1, 0, 3*secondsPerHour),
			year:  2021,
			day:   93, // April 4
			secs:  secondsPerHour,
			print: "M4.1.0/3",
		},
		{
			name:  "julian_leap",
			tr:    Transition{Kind: Julian, Day: 60, Time: defaultTransitionTime},
			year:  2020,
			day:   60, // March 1
			print: "J60",
		},
		{
			name:  "julian_common",
			tr:    Transition{Kind: Julian, Day: 60, Time: defaultTransitionTime},
			year:  2021,
			day:   59, // March 1
			print: "J60",
		},
		{
			name:  "zero_julian_leap_day",
			tr:    Transition{Kind: ZeroJulian, Day: 59, Time: 0},
			year:  2020,
			day:   59, // February 29
			secs:  -defaultTransitionTime,
			print: "59/0",
		},
		{
			name:  "negative_time",
			tr:    Transition{Kind: ZeroJulian, Day: 0, Time: -secondsPerHour},
			year:  2021,
			day:   0,
			secs:  -3 * secondsPerHour,
			print: "0/-1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.day, tc.tr.dayOfYear(tc.year))
			a.Equal(
				int64(tc.day)*secondsPerDay+defaultTransitionTime+tc.secs,
				tc.tr.YearOffset(tc.year),
			)
			a.Equal(tc.print, tc.tr.String())
		})
	}
}

func TestRuleLookup(t *testing.T) {
	t.Parallel()

	us := MustParse("EST5EDT,M3.2.0,M11.1.0", WithPOSIXSign())
	au := MustParse("AEST-10AEDT,M10.1.0,M4.1.0/3", WithPOSIXSign())
	cst := MustParse("CST+08:00:00")

	const (
		usStart = 1615705200 // 2021-03-14T07:00:00Z
		usEnd   = 1636264800 // 2021-11-07T06:00:00Z
		auStart = 1633190400 // 2021-10-02T16:00:00Z
		auEnd   = 1617465600 // 2021-04-03T16:00:00Z
		jan     = 1610668800 // 2021-01-15T00:00:00Z
		jul     = 1625097600 // 2021-07-01T00:00:00Z
	)

	for _, tc := range []struct {
		name   string
		rule   *Rule
		unix   int64
		abbrev string
		offset int32
		dst    bool
	}{
		{"us_winter", us, jan, "EST", -5 * secondsPerHour, false},
		{"us_summer", us, jul, "EDT", -4 * secondsPerHour, true},
		{"us_before_start", us, usStart - 1, "EST", -5 * secondsPerHour, false},
		{"us_at_start", us, usStart, "EDT", -4 * secondsPerHour, true},
		{"us_before_end", us, usEnd - 1, "EDT", -4 * secondsPerHour, true},
		{"us_at_end", us, usEnd, "EST", -5 * secondsPerHour, false},
		{"au_summer", au, jan, "AEDT", 11 * secondsPerHour, true},
		{"au_winter", au, jul, "AEST", 10 * secondsPerHour, false},
		{"au_before_end", au, auEnd - 1, "AEDT", 11 * secondsPerHour, true},
		{"au_at_end", au, auEnd, "AEST", 10 * secondsPerHour, false},
		{"au_before_start", au, auStart - 1, "AEST", 10 * secondsPerHour, false},
		{"au_at_start", au, auStart, "AEDT", 11 * secondsPerHour, true},
		{"fixed", cst, jul, "CST", 8 * secondsPerHour, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			abbrev, offset, dst := tc.rule.Lookup(tc.unix)
			a.Equal(tc.abbrev, abbrev)
			a.Equal(tc.offset, offset)
			a.Equal(tc.dst, dst)
		})
	}
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		src   string
		posix bool
		str   string
		pstr  string
	}{
		{
			name: "engine",
			src:  "EST-05:00:00EDT+01:00:00,M4.1.0/02:00:00,M10.5.0/02:00:00",
			str:  "EST-05:00:00EDT+01:00:00,M4.1.0,M10.5.0",
			pstr: "EST5EDT,M4.1.0,M10.5.0",
		},
		{
			name:  "posix",
			src:   "NZST-12NZDT,M9.5.0,M4.1.0/3",
			posix: true,
			str:   "NZST+12:00:00NZDT+01:00:00,M9.5.0,M4.1.0/3",
			pstr:  "NZST-12NZDT,M9.5.0,M4.1.0/3",
		},
		{
			name:  "half_hour_dst",
			src:   "LHST-10:30LHDT-11,M10.1.0,M4.1.0",
			posix: true,
			str:   "LHST+10:30:00LHDT+00:30:00,M10.1.0,M4.1.0",
			pstr:  "LHST-10:30LHDT-11,M10.1.0,M4.1.0",
		},
		{
			name:  "quoted",
			src:   "<+0545>-5:45",
			posix: true,
			str:   "<+0545>+05:45:00",
			pstr:  "<+0545>-5:45",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			var opts []Option
			if tc.posix {
				opts = append(opts, WithPOSIXSign())
			}
			r := MustParse(tc.src, opts...)
			a.Equal(tc.str, r.String())
			a.Equal(tc.pstr, r.POSIXString())
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	a.Equal("julian", Julian.String())
	a.Equal("zero-julian", ZeroJulian.String())
	a.Equal("month-week-day", MonthWeekDay.String())
	a.Equal("Kind(9)", Kind(9).String())
}
