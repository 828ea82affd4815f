package types

import (
	"fmt"
	"math"
)

// The text parser checks only the shape of each field: month 1-12, day 1-31,
// hour 0-23, minute and second 0-59. Whether the day exists in the month is
// left to Validate, so "2021-04-31" parses but does not validate.

// scanner walks a temporal literal one byte at a time.
type scanner struct {
	src string
	pos int
}

// errorf returns an error wrapping ErrParse that reports the current
// position in the source.
func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf(
		"%w: %v at position %d in %q",
		ErrParse, fmt.Sprintf(format, args...), s.pos, s.src,
	)
}

// done reports whether the scanner consumed all of the source.
func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

// peek returns the next byte without consuming it, or 0 at the end.
func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

// expect consumes ch or returns an error.
func (s *scanner) expect(ch byte, what string) error {
	if s.peek() != ch {
		return s.errorf("expected %v", what)
	}
	s.pos++
	return nil
}

// digits consumes between minLen and maxLen decimal digits and returns their
// value and count.
func (s *scanner) digits(minLen, maxLen int, what string) (int, int, error) {
	start := s.pos
	num := 0
	for !s.done() && s.pos-start < maxLen {
		ch := s.src[s.pos]
		if ch < '0' || ch > '9' {
			break
		}
		num = num*10 + int(ch-'0')
		s.pos++
	}
	if n := s.pos - start; n < minLen {
		s.pos = start
		return 0, 0, s.errorf("expected %v", what)
	}
	return num, s.pos - start, nil
}

// field consumes exactly width digits whose value must be in [lo, hi].
func (s *scanner) field(width, lo, hi int, what string) (uint8, error) {
	start := s.pos
	num, _, err := s.digits(width, width, what)
	if err != nil {
		return 0, err
	}
	if num < lo || num > hi {
		s.pos = start
		return 0, s.errorf("%v %d out of range [%d, %d]", what, num, lo, hi)
	}
	return uint8(num), nil //nolint:gosec
}

// date scans "[-]YYYY-MM-DD".
func (s *scanner) date() (Date, error) {
	neg := false
	if s.peek() == '-' {
		neg = true
		s.pos++
	}
	start := s.pos
	year, _, err := s.digits(4, 5, "year")
	if err != nil {
		return Date{}, err
	}
	if neg {
		year = -year
	}
	if year < math.MinInt16 || year > math.MaxInt16 {
		s.pos = start
		return Date{}, s.errorf("year %d out of range", year)
	}

	if err := s.expect('-', `"-" after year`); err != nil {
		return Date{}, err
	}
	month, err := s.field(2, 1, 12, "month")
	if err != nil {
		return Date{}, err
	}
	if err := s.expect('-', `"-" after month`); err != nil {
		return Date{}, err
	}
	day, err := s.field(2, 1, 31, "day")
	if err != nil {
		return Date{}, err
	}
	return Date{Year: int16(year), Month: month, Day: day}, nil
}

// time scans "HH:MM:SS[.ffffff]".
func (s *scanner) time() (Time, error) {
	hour, err := s.field(2, 0, 23, "hour")
	if err != nil {
		return Time{}, err
	}
	if err := s.expect(':', `":" after hour`); err != nil {
		return Time{}, err
	}
	minute, err := s.field(2, 0, 59, "minute")
	if err != nil {
		return Time{}, err
	}
	if err := s.expect(':', `":" after minute`); err != nil {
		return Time{}, err
	}
	second, err := s.field(2, 0, 59, "second")
	if err != nil {
		return Time{}, err
	}

	var micro uint32
	if s.peek() == '.' {
		s.pos++
		frac, n, err := s.digits(1, 6, "fractional seconds")
		if err != nil {
			return Time{}, err
		}
		for ; n < 6; n++ {
			frac *= 10
		}
		micro = uint32(frac) //nolint:gosec
	}
	return Time{Hour: hour, Minute: minute, Second: second, Microsecond: micro}, nil
}

// end returns an error unless the whole source has been consumed.
func (s *scanner) end() error {
	if !s.done() {
		return s.errorf("unexpected trailing text")
	}
	return nil
}

// ParseDate parses src in the format "YYYY-MM-DD". It checks the shape of
// each field but not whether the day exists in the month.
func ParseDate(src string) (Date, error) {
	s := &scanner{src: src}
	d, err := s.date()
	if err != nil {
		return Date{}, err
	}
	if err := s.end(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// ParseTime parses src in the format "HH:MM:SS[.ffffff]", with one to six
// digits of fractional seconds.
func ParseTime(src string) (Time, error) {
	s := &scanner{src: src}
	t, err := s.time()
	if err != nil {
		return Time{}, err
	}
	if err := s.end(); err != nil {
		return Time{}, err
	}
	return t, nil
}

// ParseDateTime parses src as a date, optionally followed by "T" or a space
// and a time in the format accepted by ParseTime. A date alone parses as
// midnight. It checks the shape of each field but not whether the day exists
// in the month.
func ParseDateTime(src string) (DateTime, error) {
	s := &scanner{src: src}
	d, err := s.date()
	if err != nil {
		return DateTime{}, err
	}
	if s.done() {
		return Combine(d, Time{}), nil
	}
	if ch := s.peek(); ch != 'T' && ch != ' ' {
		return DateTime{}, s.errorf(`expected "T" or space after date`)
	}
	s.pos++
	t, err := s.time()
	if err != nil {
		return DateTime{}, err
	}
	if err := s.end(); err != nil {
		return DateTime{}, err
	}
	return Combine(d, t), nil
}
