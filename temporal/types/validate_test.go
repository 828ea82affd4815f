package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for year, leap := range map[int]bool{
		1900: false,
		1970: false,
		1996: true,
		2000: true,
		2019: false,
		2020: true,
		2100: false,
		2400: true,
	} {
		a.Equal(leap, IsLeapYear(year), "year %d", year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(31, DaysInMonth(2021, 1))
	a.Equal(28, DaysInMonth(2021, 2))
	a.Equal(29, DaysInMonth(2020, 2))
	a.Equal(30, DaysInMonth(2021, 4))
	a.Equal(31, DaysInMonth(2021, 12))
	a.Equal(59, DaysSoFar(2021, 3))
	a.Equal(60, DaysSoFar(2020, 3))
	a.Equal(365, DaysSoFar(2021, 13))
	a.Equal(366, DaysSoFar(2020, 13))
}

func TestValidateDate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		date Date
		err  string
	}{
		{
			name: "leap_day_2020",
			date: NewDate(2020, 2, 29),
		},
		{
			name: "leap_day_2019",
			date: NewDate(2019, 2, 29),
			err:  `invalid date: "2019-02-29" is not a valid date`,
		},
		{
			name: "leap_day_2000",
			date: NewDate(2000, 2, 29),
		},
		{
			name: "leap_day_1900",
			date: NewDate(1900, 2, 29),
			err:  `invalid date: "1900-02-29" is not a valid date`,
		},
		{
			name: "april_31",
			date: NewDate(2021, 4, 31),
			err:  `invalid date: "2021-04-31" is not a valid date`,
		},
		{
			name: "december_31",
			date: NewDate(2021, 12, 31),
		},
		{
			name: "day_zero",
			date: NewDate(2021, 1, 0),
			err:  `invalid date: "2021-01-00" is not a valid date`,
		},
		{
			name: "month_thirteen",
			date: NewDate(2021, 13, 1),
			err:  `invalid date: "2021-13-01" is not a valid date`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			err := tc.date.Validate()
			dtErr := Combine(tc.date, NewTime(12, 0, 0, 0)).Validate()
			fieldErr := ValidateDate(tc.date.Year, tc.date.Month, tc.date.Day)
			if tc.err == "" {
				r.NoError(err)
				r.NoError(dtErr)
				r.NoError(fieldErr)
				return
			}
			r.EqualError(err, tc.err)
			r.ErrorIs(err, ErrInvalidDate)
			r.EqualError(fieldErr, tc.err)
			r.ErrorIs(dtErr, ErrInvalidDate)
			r.Contains(dtErr.Error(), "T12:00:00.000000")
		})
	}
}
