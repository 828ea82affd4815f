package temporal

import (
	"fmt"

	"github.com/nebula-contrib/graphtime/temporal/convert"
	"github.com/nebula-contrib/graphtime/temporal/types"
)

// ToTimestamp converts v to seconds since the Unix epoch. It accepts:
//
//   - Integers and json.Number integers, which are returned as is
//   - Strings, which are parsed as local date times and converted to UTC
//   - types.DateTime and types.Date values, which hold UTC
//
// Returns an error wrapping ErrNotTemporal for any other value, and
// ErrTimestampRange if the result is negative or greater than MaxTimestamp.
func (u *Utils) ToTimestamp(v any) (int64, error) {
	var secs int64
	switch v := v.(type) {
	case string:
		dt, err := u.ParseDateTime(v)
		if err != nil {
			return 0, err
		}
		secs = convert.DateTimeToSeconds(u.DateTimeToUTC(dt))
	case types.DateTime:
		secs = convert.DateTimeToSeconds(v)
	case types.Date:
		secs = convert.DateToSeconds(v)
	case float32, float64:
		// Only integers are timestamps, even when the float is integral.
		return 0, fmt.Errorf("%w: cannot convert %T to timestamp", ErrNotTemporal, v)
	default:
		n, err := integer("timestamp", v)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot convert %T to timestamp", ErrNotTemporal, v)
		}
		secs = n
	}

	if secs < 0 || secs > MaxTimestamp {
		return 0, fmt.Errorf(
			"%w: %d not in [0, %d]", ErrTimestampRange, secs, MaxTimestamp,
		)
	}
	return secs, nil
}
