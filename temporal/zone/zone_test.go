package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula-contrib/graphtime/temporal/posix"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   Name
		opts   []posix.Option
		abbrev string
		offset int32
		rule   bool
		dst    bool
	}{
		{name: "UTC", abbrev: "UTC"},
		{name: "Asia/Shanghai", abbrev: "CST", offset: 8 * 60 * 60},
		{name: "America/New_York", abbrev: "EST", offset: -5 * 60 * 60},
		{name: "EST-05:00:00", abbrev: "EST", offset: -5 * 60 * 60, rule: true},
		{name: "CST+08:00:00", abbrev: "CST", offset: 8 * 60 * 60, rule: true},
		{
			name:   "EST-05:00:00EDT+01:00:00,M4.1.0/02:00:00,M10.5.0/02:00:00",
			abbrev: "EST",
			offset: -5 * 60 * 60,
			rule:   true,
			dst:    true,
		},
		{
			name:   "EST5EDT,M3.2.0,M11.1.0",
			opts:   []posix.Option{posix.WithPOSIXSign()},
			abbrev: "EST",
			offset: -5 * 60 * 60,
			rule:   true,
			dst:    true,
		},
	} {
		t.Run(string(tc.name), func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			z, err := Resolve(tc.name, tc.opts...)
			r.NoError(err)
			a.Equal(string(tc.name), z.Name())
			a.Equal(string(tc.name), z.String())
			a.Equal(tc.abbrev, z.Abbreviation())
			a.Equal(tc.offset, z.UTCOffsetSecs())
			if tc.rule {
				r.NotNil(z.Rule())
				a.Equal(tc.dst, z.Rule().HasDST())
			} else {
				a.Nil(z.Rule())
			}
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []Name{"", "Mars/Olympus_Mons", "233333333333", "utc", "EST5EDT,M3.2.0"} {
		t.Run(string(name), func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			z, err := Resolve(name)
			r.Nil(z)
			r.ErrorIs(err, ErrUnsupportedTimezone)
			r.EqualError(err, `unsupported timezone: "`+string(name)+`"`)
		})
	}
}

func TestOffsetAt(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	const (
		jan = 1610668800 // 2021-01-15T00:00:00Z
		jul = 1625097600 // 2021-07-01T00:00:00Z
	)

	us, err := Resolve("EST5EDT,M3.2.0,M11.1.0", posix.WithPOSIXSign())
	r.NoError(err)
	a.Equal(int32(-5*60*60), us.OffsetAt(jan))
	a.Equal(int32(-4*60*60), us.OffsetAt(jul))
	a.Equal("EST", us.AbbreviationAt(jan))
	a.Equal("EDT", us.AbbreviationAt(jul))

	// The standard offset does not change with the season.
	a.Equal(int32(-5*60*60), us.UTCOffsetSecs())

	sh, err := Resolve("Asia/Shanghai")
	r.NoError(err)
	a.Equal(int32(8*60*60), sh.OffsetAt(jan))
	a.Equal(int32(8*60*60), sh.OffsetAt(jul))
	a.Equal("CST", sh.AbbreviationAt(jul))
}

func TestFixed(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	z := Fixed("Local", "LMT", 3600)
	a.Equal("Local", z.Name())
	a.Equal("LMT", z.Abbreviation())
	a.Equal(int32(3600), z.UTCOffsetSecs())
	a.Equal(int32(3600), z.OffsetAt(0))
	a.Nil(z.Rule())

	a.Same(UTC(), UTC())
	a.Equal("UTC", UTC().Name())
	a.Equal(int32(0), UTC().UTCOffsetSecs())
}
