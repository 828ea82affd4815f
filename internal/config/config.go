// Package config loads the time zone configuration of the engine from a
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nebula-contrib/graphtime/temporal/posix"
	"github.com/nebula-contrib/graphtime/temporal/zone"
)

// EnvTimezone names the environment variable that overrides the configured
// time zone.
const EnvTimezone = "GRAPHTIME_TIMEZONE"

// DefaultTimezone is the time zone used when none is configured.
const DefaultTimezone = "UTC"

// Config is the time zone configuration.
type Config struct {
	// TimezoneName is a POSIX rule string, such as
	// "CST+08:00:00", or the name of a zone in the built-in database, such
	// as "Asia/Shanghai".
	TimezoneName string `yaml:"timezone_name" json:"timezone_name"`

	// POSIXSign parses TimezoneName with the POSIX sign convention, in which
	// positive offsets are west of UTC, as in the TZ environment variable.
	POSIXSign bool `yaml:"posix_sign" json:"posix_sign"`

	// DST applies the daylight saving time rules of TimezoneName when
	// converting date times. By default only the standard offset is used.
	DST bool `yaml:"dst" json:"dst"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{TimezoneName: DefaultTimezone}
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	if c.TimezoneName == "" {
		c.TimezoneName = DefaultTimezone
	}
}

// Load loads configuration from the YAML file at path and applies the
// environment override. A missing file or empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Use defaults.
		case err != nil:
			return nil, err
		default:
			cfg = &Config{}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if tz := os.Getenv(EnvTimezone); tz != "" {
		cfg.TimezoneName = tz
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes cfg to path as YAML with 0600 permissions, creating the parent
// directory if needed. It writes to a temporary file and renames it over
// path.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".graphtime-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ParseOptions returns the options for parsing TimezoneName as a POSIX rule.
func (c *Config) ParseOptions() []posix.Option {
	if c.POSIXSign {
		return []posix.Option{posix.WithPOSIXSign()}
	}
	return nil
}

// Resolve resolves TimezoneName to a zone.
func (c *Config) Resolve() (*zone.Zone, error) {
	return zone.Resolve(zone.Name(c.TimezoneName), c.ParseOptions()...)
}

// InitGlobal installs the configured zone as the global zone.
func (c *Config) InitGlobal() error {
	return zone.Init(zone.Name(c.TimezoneName), c.ParseOptions()...)
}
