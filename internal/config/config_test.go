package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula-contrib/graphtime/temporal/zone"
)

// Tests in this file set environment variables and so do not run in
// parallel.

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvTimezone, "")

	for _, tc := range []struct {
		name string
		body string
		exp  *Config
	}{
		{
			name: "name_only",
			body: "timezone_name: Asia/Shanghai\n",
			exp:  &Config{TimezoneName: "Asia/Shanghai"},
		},
		{
			name: "posix",
			body: "timezone_name: EST5EDT,M3.2.0,M11.1.0\nposix_sign: true\ndst: true\n",
			exp:  &Config{TimezoneName: "EST5EDT,M3.2.0,M11.1.0", POSIXSign: true, DST: true},
		},
		{
			name: "empty",
			body: "",
			exp:  DefaultConfig(),
		},
		{
			name: "unknown_keys",
			body: "listen: 127.0.0.1:8080\ntimezone_name: UTC\n",
			exp:  &Config{TimezoneName: "UTC"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.exp, cfg)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvTimezone, "")
	a := assert.New(t)
	r := require.New(t)

	cfg, err := Load("")
	r.NoError(err)
	a.Equal(&Config{TimezoneName: "UTC"}, cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "nonesuch.yaml"))
	r.NoError(err)
	a.Equal(DefaultConfig(), cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvTimezone, "Asia/Tokyo")
	a := assert.New(t)
	r := require.New(t)

	cfg, err := Load("")
	r.NoError(err)
	a.Equal("Asia/Tokyo", cfg.TimezoneName)

	cfg, err = Load(writeFile(t, "timezone_name: Asia/Shanghai\ndst: true\n"))
	r.NoError(err)
	a.Equal(&Config{TimezoneName: "Asia/Tokyo", DST: true}, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvTimezone, "")
	r := require.New(t)

	path := writeFile(t, "timezone_name: [nope\n")
	cfg, err := Load(path)
	r.Nil(cfg)
	r.ErrorContains(err, "config: "+path)

	cfg, err = Load(t.TempDir())
	r.Nil(cfg)
	r.Error(err)
}

func TestSave(t *testing.T) {
	t.Setenv(EnvTimezone, "")
	a := assert.New(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "etc", "graphtime.yaml")
	exp := &Config{TimezoneName: "CST+08:00:00", DST: true}
	r.NoError(Save(path, exp))

	info, err := os.Stat(path)
	r.NoError(err)
	a.Equal(os.FileMode(0o600), info.Mode().Perm())

	cfg, err := Load(path)
	r.NoError(err)
	a.Equal(exp, cfg)

	r.EqualError(Save("", exp), "config path is empty")
	r.EqualError(Save(path, nil), "config is nil")

	// Save normalizes.
	empty := &Config{}
	r.NoError(Save(path, empty))
	a.Equal("UTC", empty.TimezoneName)
}

func TestResolve(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	z, err := (&Config{TimezoneName: "EST5EDT,M3.2.0,M11.1.0", POSIXSign: true}).Resolve()
	r.NoError(err)
	a.Equal(int32(-5*60*60), z.UTCOffsetSecs())

	// Without POSIXSign the same string reads as east of UTC.
	z, err = (&Config{TimezoneName: "EST5EDT,M3.2.0,M11.1.0"}).Resolve()
	r.NoError(err)
	a.Equal(int32(5*60*60), z.UTCOffsetSecs())

	_, err = (&Config{TimezoneName: "Mars/Olympus_Mons"}).Resolve()
	r.ErrorIs(err, zone.ErrUnsupportedTimezone)
}

func TestInitGlobal(t *testing.T) {
	zone.ResetForTesting()
	t.Cleanup(zone.ResetForTesting)
	r := require.New(t)

	r.NoError((&Config{TimezoneName: "Asia/Shanghai"}).InitGlobal())
	r.Equal(int32(8*60*60), zone.Global().UTCOffsetSecs())
	r.ErrorIs((&Config{TimezoneName: "UTC"}).InitGlobal(), zone.ErrAlreadyInitialized)
}
