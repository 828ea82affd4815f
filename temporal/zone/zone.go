// Package zone resolves time zone names and holds the process-wide time
// zone used to interpret local temporal values.
//
// A zone name is either a POSIX rule string, such as
// "EST-05:00:00EDT+01:00:00,M4.1.0,M10.5.0", or the name of a zone in the
// built-in database, such as "Asia/Shanghai". Rule strings take precedence.
package zone

import (
	"errors"
	"fmt"

	"github.com/nebula-contrib/graphtime/temporal/posix"
	"github.com/nebula-contrib/graphtime/temporal/tzdb"
)

// ErrUnsupportedTimezone wraps errors returned when a name is neither a
// valid POSIX rule string nor a known zone.
var ErrUnsupportedTimezone = errors.New("unsupported timezone")

// Name is an unresolved time zone name. Resolve it to get a Zone.
type Name string

// Zone is a resolved time zone. The zero value is not usable; create Zones
// with Resolve or Fixed. A Zone is immutable and safe for concurrent use.
type Zone struct {
	name   string
	abbrev string
	offset int32
	rule   *posix.Rule
}

//nolint:gochecknoglobals
var utc = Fixed("UTC", "UTC", 0)

// UTC returns the UTC zone.
func UTC() *Zone { return utc }

// Fixed returns a zone named name that is always offset seconds east of UTC.
func Fixed(name, abbrev string, offset int32) *Zone {
	return &Zone{name: name, abbrev: abbrev, offset: offset}
}

// Resolve resolves name to a Zone. It first parses name as a POSIX rule
// string, passing opt to posix.Parse, and then looks it up in the built-in
// database. Returns an error wrapping ErrUnsupportedTimezone if both fail.
func Resolve(name Name, opt ...posix.Option) (*Zone, error) {
	str := string(name)
	if rule, err := posix.Parse(str, opt...); err == nil {
		return &Zone{
			name:   str,
			abbrev: rule.StdName,
			offset: rule.StdOffset,
			rule:   rule,
		}, nil
	}

	if e, ok := tzdb.Lookup(str); ok {
		return &Zone{name: str, abbrev: e.Abbreviation, offset: e.Offset}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTimezone, str)
}

// Name returns the name z was resolved from.
func (z *Zone) Name() string { return z.name }

// Abbreviation returns the standard-time abbreviation of z.
func (z *Zone) Abbreviation() string { return z.abbrev }

// UTCOffsetSecs returns the standard-time offset of z in seconds east of
// UTC. Conversions between local and UTC temporal values use this offset.
func (z *Zone) UTCOffsetSecs() int32 { return z.offset }

// Rule returns the POSIX rule z was parsed from, or nil if z came from the
// database or Fixed.
func (z *Zone) Rule() *posix.Rule { return z.rule }

// OffsetAt returns the offset of z in seconds east of UTC at the instant
// unix seconds after the epoch, taking daylight saving time into account
// when z has a rule that observes it.
func (z *Zone) OffsetAt(unix int64) int32 {
	if z.rule == nil {
		return z.offset
	}
	_, off, _ := z.rule.Lookup(unix)
	return off
}

// AbbreviationAt returns the abbreviation in effect in z at the instant unix
// seconds after the epoch.
func (z *Zone) AbbreviationAt(unix int64) string {
	if z.rule == nil {
		return z.abbrev
	}
	name, _, _ := z.rule.Lookup(unix)
	return name
}

// String returns the name of z.
func (z *Zone) String() string { return z.name }
