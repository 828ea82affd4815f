package temporal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula-contrib/graphtime/temporal/posix"
	"github.com/nebula-contrib/graphtime/temporal/types"
	"github.com/nebula-contrib/graphtime/temporal/zone"
)

func mustZone(t *testing.T, name string, opt ...posix.Option) *zone.Zone {
	t.Helper()
	z, err := zone.Resolve(zone.Name(name), opt...)
	require.NoError(t, err)
	return z
}

func TestNew(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Same(zone.UTC(), New(nil).Zone())
	sh := mustZone(t, "Asia/Shanghai")
	a.Same(sh, New(sh).Zone())

	ctx := zone.ContextWithZone(context.Background(), sh)
	a.Same(sh, FromContext(ctx).Zone())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	u := New(nil)

	a.NoError(u.ValidateDate(types.NewDate(2020, 2, 29)))
	a.ErrorIs(u.ValidateDate(types.NewDate(2019, 2, 29)), types.ErrInvalidDate)
	a.NoError(u.ValidateDate(types.NewDate(2000, 2, 29)))
	a.ErrorIs(u.ValidateDate(types.NewDate(1900, 2, 29)), types.ErrInvalidDate)

	a.NoError(u.ValidateDateTime(types.NewDateTime(2020, 2, 29, 23, 59, 59, 0)))
	a.EqualError(
		u.ValidateDateTime(types.NewDateTime(2021, 4, 31, 12, 0, 0, 0)),
		`invalid date: "2021-04-31T12:00:00.000000" is not a valid date`,
	)
}

func TestParse(t *testing.T) {
	t.Parallel()
	u := New(nil)

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		d, err := u.ParseDate("2003-03-04")
		a.NoError(err)
		a.Equal(types.NewDate(2003, 3, 4), d)

		d, err = u.ParseDate("2021-02-29")
		a.ErrorIs(err, types.ErrInvalidDate)
		a.Zero(d)

		d, err = u.ParseDate("2021-02-")
		a.ErrorIs(err, types.ErrParse)
		a.Zero(d)
	})

	t.Run("time", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		ts, err := u.ParseTime("14:02:04.5")
		a.NoError(err)
		a.Equal(types.NewTime(14, 2, 4, 500000), ts)

		ts, err = u.ParseTime("24:00:00")
		a.ErrorIs(err, types.ErrParse)
		a.Zero(ts)
	})

	t.Run("datetime", func(t *testing.T) {
		t.Parallel()
		a := assert.New(t)
		dt, err := u.ParseDateTime("2020-09-17T01:35:18")
		a.NoError(err)
		a.Equal(types.NewDateTime(2020, 9, 17, 1, 35, 18, 0), dt)

		dt, err = u.ParseDateTime("2020-09-31T01:35:18")
		a.ErrorIs(err, types.ErrInvalidDate)
		a.Zero(dt)

		dt, err = u.ParseDateTime("2020-09-17X01:35:18")
		a.ErrorIs(err, types.ErrParse)
		a.Zero(dt)
	})
}

func TestFromContextGlobal(t *testing.T) {
	zone.ResetForTesting()
	t.Cleanup(zone.ResetForTesting)
	a := assert.New(t)
	r := require.New(t)

	r.NoError(zone.Init("Asia/Tokyo"))
	u := FromContext(context.Background(), WithClock(func() time.Time {
		return time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	a.Equal("Asia/Tokyo", u.Zone().Name())
	a.Equal(types.NewDateTime(2021, 1, 1, 9, 0, 0, 0), u.LocalDateTime())
}
