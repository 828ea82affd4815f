// Package temporal interprets calendar values in a time zone. The graph
// engine stores temporal values in UTC; Utils converts them to and from the
// local time of a zone, parses and validates textual and map-based input,
// and reads the wall clock.
//
// Utils values are immutable and safe for concurrent use. Create one per
// zone with New, or use FromContext to get one for the zone carried by a
// context or, failing that, the global zone.
package temporal

import (
	"context"
	"errors"
	"time"

	"github.com/nebula-contrib/graphtime/temporal/types"
	"github.com/nebula-contrib/graphtime/temporal/zone"
)

var (
	// ErrNotTemporal wraps errors returned when a value cannot be
	// interpreted as a point in time.
	ErrNotTemporal = errors.New("not a temporal value")

	// ErrTimestampRange wraps errors returned for timestamps outside
	// [0, MaxTimestamp].
	ErrTimestampRange = errors.New("timestamp out of range")

	// ErrFieldRange wraps errors returned when a map-based constructor gets
	// an integral value too large or small for its field.
	ErrFieldRange = errors.New("field value out of range")
)

// MaxTimestamp is the largest timestamp, in seconds, whose nanosecond count
// fits in an int64.
const MaxTimestamp = int64(1<<63-1) / int64(time.Second)

// Utils converts temporal values between UTC and the local time of a zone.
type Utils struct {
	zone *zone.Zone
	now  func() time.Time
	dst  bool
}

// Option specifies a Utils option.
type Option func(*Utils)

// WithClock replaces the wall clock read by the Local* and UTC* functions.
func WithClock(now func() time.Time) Option { return func(u *Utils) { u.now = now } }

// WithDST applies daylight saving time when converting DateTime values and
// reading the wall clock, for zones with a POSIX rule that observes it. By
// default all conversions use the standard offset of the zone. Time values
// carry no date and always use the standard offset.
func WithDST() Option { return func(u *Utils) { u.dst = true } }

// New returns a Utils for z. If z is nil it uses zone.UTC.
func New(z *zone.Zone, opt ...Option) *Utils {
	if z == nil {
		z = zone.UTC()
	}
	u := &Utils{zone: z, now: time.Now}
	for _, o := range opt {
		o(u)
	}
	return u
}

// FromContext returns a Utils for the zone in ctx, as returned by
// zone.FromContext. Like zone.Global, it panics if ctx carries no zone and
// the global zone has not been initialized.
func FromContext(ctx context.Context, opt ...Option) *Utils {
	return New(zone.FromContext(ctx), opt...)
}

// Zone returns the zone of u.
func (u *Utils) Zone() *zone.Zone { return u.zone }

// ValidateDate returns an error wrapping types.ErrInvalidDate if d is not a
// real calendar date.
func (*Utils) ValidateDate(d types.Date) error { return d.Validate() }

// ValidateDateTime returns an error wrapping types.ErrInvalidDate if the
// date portion of dt is not a real calendar date.
func (*Utils) ValidateDateTime(dt types.DateTime) error { return dt.Validate() }

// ParseDate parses str as a date and validates it. Returns an error wrapping
// types.ErrParse if str is malformed or types.ErrInvalidDate if it names a
// day that does not exist, such as 2021-02-29.
func (*Utils) ParseDate(str string) (types.Date, error) {
	d, err := types.ParseDate(str)
	if err != nil {
		return types.Date{}, err
	}
	if err := d.Validate(); err != nil {
		return types.Date{}, err
	}
	return d, nil
}

// ParseTime parses str as a time of day.
func (*Utils) ParseTime(str string) (types.Time, error) {
	return types.ParseTime(str)
}

// ParseDateTime parses str as a date and time and validates the date.
func (*Utils) ParseDateTime(str string) (types.DateTime, error) {
	dt, err := types.ParseDateTime(str)
	if err != nil {
		return types.DateTime{}, err
	}
	if err := dt.Validate(); err != nil {
		return types.DateTime{}, err
	}
	return dt, nil
}
