package temporal

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/nebula-contrib/graphtime/temporal/types"
)

// Keys recognized by the map-based constructors.
const (
	KeyYear        = "year"
	KeyMonth       = "month"
	KeyDay         = "day"
	KeyHour        = "hour"
	KeyMinute      = "minute"
	KeySecond      = "second"
	KeyMicrosecond = "microsecond"
)

// integer converts v to an int64. It accepts Go integer types, floats with
// no fractional part, and json.Number values holding integers.
func integer(key string, v any) (int64, error) {
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), nil
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), nil
		}
	case float32:
		return integer(key, float64(v))
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), nil
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v value %v (%T) is not an integer", types.ErrType, key, v, v)
}

// fields extracts integral values from a map.
type fields struct {
	m    map[string]any
	kind string
}

// get returns the value of key in [lo, hi]. If key is missing it returns def,
// or an error wrapping types.ErrMissingField if required is true.
func (f fields) get(key string, lo, hi, def int64, required bool) (int64, error) {
	v, ok := f.m[key]
	if !ok {
		if required {
			return 0, fmt.Errorf("%w: %v requires %q", types.ErrMissingField, f.kind, key)
		}
		return def, nil
	}
	n, err := integer(key, v)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %v %d not in [%d, %d]", ErrFieldRange, key, n, lo, hi)
	}
	return n, nil
}

func (f fields) date() (types.Date, error) {
	year, err := f.get(KeyYear, math.MinInt16, math.MaxInt16, 0, true)
	if err != nil {
		return types.Date{}, err
	}
	month, err := f.get(KeyMonth, 1, 12, 0, true)
	if err != nil {
		return types.Date{}, err
	}
	day, err := f.get(KeyDay, 1, 31, 0, true)
	if err != nil {
		return types.Date{}, err
	}
	//nolint:gosec // ranges checked above
	return types.NewDate(int16(year), uint8(month), uint8(day)), nil
}

func (f fields) time() (types.Time, error) {
	hour, err := f.get(KeyHour, 0, 23, 0, true)
	if err != nil {
		return types.Time{}, err
	}
	minute, err := f.get(KeyMinute, 0, 59, 0, false)
	if err != nil {
		return types.Time{}, err
	}
	second, err := f.get(KeySecond, 0, 59, 0, false)
	if err != nil {
		return types.Time{}, err
	}
	micro, err := f.get(KeyMicrosecond, 0, 999_999, 0, false)
	if err != nil {
		return types.Time{}, err
	}
	//nolint:gosec // ranges checked above
	return types.NewTime(uint8(hour), uint8(minute), uint8(second), uint32(micro)), nil
}

// DateFromMap builds a Date from the year, month, and day keys of m and
// validates it. Other keys are ignored. Returns an error wrapping
// types.ErrMissingField if a key is missing, types.ErrType if a value is
// not an integer, ErrFieldRange if a value does not fit its field, or
// types.ErrInvalidDate if the day does not exist.
func (*Utils) DateFromMap(m map[string]any) (types.Date, error) {
	d, err := fields{m, "date"}.date()
	if err != nil {
		return types.Date{}, err
	}
	if err := d.Validate(); err != nil {
		return types.Date{}, err
	}
	return d, nil
}

// TimeFromMap builds a Time from the hour, minute, second, and microsecond
// keys of m. Only hour is required; the others default to zero.
func (*Utils) TimeFromMap(m map[string]any) (types.Time, error) {
	return fields{m, "time"}.time()
}

// DateTimeFromMap builds a DateTime from the keys recognized by DateFromMap
// and TimeFromMap. The date keys are required; the time keys default to
// zero.
func (*Utils) DateTimeFromMap(m map[string]any) (types.DateTime, error) {
	f := fields{m, "datetime"}
	d, err := f.date()
	if err != nil {
		return types.DateTime{}, err
	}

	ts := types.Time{}
	if _, ok := m[KeyHour]; ok {
		if ts, err = f.time(); err != nil {
			return types.DateTime{}, err
		}
	} else {
		for _, key := range []string{KeyMinute, KeySecond, KeyMicrosecond} {
			if _, ok := m[key]; ok {
				return types.DateTime{}, fmt.Errorf(
					"%w: datetime with %q requires %q",
					types.ErrMissingField, key, KeyHour,
				)
			}
		}
	}

	dt := types.Combine(d, ts)
	if err := dt.Validate(); err != nil {
		return types.DateTime{}, err
	}
	return dt, nil
}
