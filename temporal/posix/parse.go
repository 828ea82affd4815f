// Package posix parses time zone rule strings in the POSIX TZ format and
// resolves the daylight saving time rules they describe.
//
// The engine's configuration strings follow the dialect used by its original
// C++ runtime, in which offsets are written east of UTC and the daylight
// saving offset is the adjustment to standard time:
//
//	EST-05:00:00EDT+01:00:00,M4.1.0/02:00:00,M10.5.0/02:00:00
//
// Strings in the classic TZ environment format, where offsets are written
// west of UTC and the daylight saving offset is absolute, parse with the
// WithPOSIXSign option:
//
//	EST5EDT,M3.2.0,M11.1.0
//
// Either way the resulting Rule holds offsets east of UTC.
package posix

import (
	"fmt"
	"unicode/utf8"

	"github.com/nebula-contrib/graphtime/temporal/types"
	"github.com/smasher164/xid"
)

// ErrSyntax wraps errors returned for malformed rule strings.
var ErrSyntax = fmt.Errorf("%w: posix tz", types.ErrParse)

const (
	// maxOffsetHour is the largest hour allowed in a zone offset.
	maxOffsetHour = 24

	// maxRuleHour is the largest hour allowed in a transition time. POSIX
	// stops at 24, but tzcode allows up to a week less one hour.
	maxRuleHour = 24*7 - 1

	// minNameLen is the shortest allowed zone abbreviation.
	minNameLen = 3
)

// defaultRules are the transitions used when a rule string names a daylight
// saving zone but omits the rules, as in tzcode.
//
//nolint:gochecknoglobals
var defaultRules = [2]Transition{
	{Kind: MonthWeekDay, Month: 3, Week: 2, Weekday: 0, Time: defaultTransitionTime},
	{Kind: MonthWeekDay, Month: 11, Week: 1, Weekday: 0, Time: defaultTransitionTime},
}

// Option configures Parse.
type Option func(*parser)

// WithPOSIXSign parses offsets with the POSIX sign convention: positive
// offsets are west of UTC and the daylight saving offset is absolute.
func WithPOSIXSign() Option { return func(p *parser) { p.posixSign = true } }

// parser scans a rule string.
type parser struct {
	src       string
	pos       int
	posixSign bool
}

// Parse parses src into a Rule. It performs no global mutation.
func Parse(src string, opt ...Option) (*Rule, error) {
	p := &parser{src: src}
	for _, o := range opt {
		o(p)
	}
	return p.parse()
}

// MustParse is like Parse but panics on parse failure.
func MustParse(src string, opt ...Option) *Rule {
	r, err := Parse(src, opt...)
	if err != nil {
		panic(err)
	}
	return r
}

// errorf returns an error wrapping ErrSyntax that reports the current
// position in the source.
func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf(
		"%w: %v at position %d in %q",
		ErrSyntax, fmt.Sprintf(format, args...), p.pos, p.src,
	)
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

// normalize converts an offset as written to seconds east of UTC. This is
// the only place where the sign convention of the source matters.
func (p *parser) normalize(written int32) int32 {
	if p.posixSign {
		return -written
	}
	return written
}

func (p *parser) parse() (*Rule, error) {
	r := &Rule{}
	var err error

	if r.StdName, err = p.name("standard"); err != nil {
		return nil, err
	}
	off, err := p.offset(maxOffsetHour, "standard offset")
	if err != nil {
		return nil, err
	}
	r.StdOffset = p.normalize(off)

	if p.done() {
		// Fixed-offset zone.
		return r, nil
	}

	if r.DSTName, err = p.name("daylight saving"); err != nil {
		return nil, err
	}

	// Daylight saving time defaults to one hour ahead of standard time.
	r.DSTOffset = r.StdOffset + secondsPerHour
	if ch := p.peek(); ch != 0 && ch != ',' && ch != ';' {
		off, err := p.offset(maxOffsetHour, "daylight saving offset")
		if err != nil {
			return nil, err
		}
		if p.posixSign {
			r.DSTOffset = p.normalize(off)
		} else {
			r.DSTOffset = r.StdOffset + off
		}
	}

	if p.done() {
		start, end := defaultRules[0], defaultRules[1]
		r.Start, r.End = &start, &end
		return r, nil
	}

	// tzcode also accepts ';' before the rules.
	if ch := p.peek(); ch != ',' && ch != ';' {
		return nil, p.errorf(`expected "," before start rule`)
	}
	p.pos++
	if r.Start, err = p.transition("start"); err != nil {
		return nil, err
	}
	if p.peek() != ',' {
		return nil, p.errorf(`expected "," before end rule`)
	}
	p.pos++
	if r.End, err = p.transition("end"); err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.errorf("unexpected trailing text")
	}
	return r, nil
}

// isNameRune reports whether r may appear in an unquoted abbreviation:
// an ASCII letter. Other abbreviations must be quoted.
func isNameRune(r rune) bool {
	return r < utf8.RuneSelf && r != '_' && xid.Start(r)
}

// isQuotedNameRune reports whether r may appear in an abbreviation quoted
// in angle brackets.
func isQuotedNameRune(r rune) bool {
	return r == '+' || r == '-' || (r != '_' && xid.Continue(r))
}

// name scans an abbreviation: three or more ASCII letters, or three or more
// letters, digits, "+", or "-" quoted in angle brackets.
func (p *parser) name(what string) (string, error) {
	start := p.pos
	quoted := p.peek() == '<'
	if quoted {
		p.pos++
	}
	nameStart := p.pos
	count := 0
	for !p.done() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if quoted && !isQuotedNameRune(r) || !quoted && !isNameRune(r) {
			break
		}
		p.pos += size
		count++
	}
	name := p.src[nameStart:p.pos]

	if quoted {
		if p.peek() != '>' {
			return "", p.errorf("unterminated %v name", what)
		}
		p.pos++
	}
	if count < minNameLen {
		p.pos = start
		return "", p.errorf("%v name must have at least %d characters", what, minNameLen)
	}
	return name, nil
}

// num scans between one and maxLen digits with a value in [lo, hi].
func (p *parser) num(maxLen, lo, hi int, what string) (int, error) {
	start := p.pos
	n := 0
	for !p.done() && p.pos-start < maxLen {
		ch := p.src[p.pos]
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected %v", what)
	}
	if n < lo || n > hi {
		p.pos = start
		return 0, p.errorf("%v %d out of range [%d, %d]", what, n, lo, hi)
	}
	return n, nil
}

// offset scans [+|-]hh[:mm[:ss]] and returns it in seconds, with the sign
// as written. The magnitude may not exceed maxHour hours.
func (p *parser) offset(maxHour int, what string) (int32, error) {
	start := p.pos
	neg := false
	switch p.peek() {
	case '-':
		neg = true
		p.pos++
	case '+':
		p.pos++
	}

	hours, err := p.num(3, 0, maxHour, what+" hours")
	if err != nil {
		return 0, err
	}
	secs := hours * secondsPerHour
	if p.peek() == ':' {
		p.pos++
		mins, err := p.num(2, 0, 59, what+" minutes")
		if err != nil {
			return 0, err
		}
		secs += mins * secondsPerMinute
		if p.peek() == ':' {
			p.pos++
			s, err := p.num(2, 0, 59, what+" seconds")
			if err != nil {
				return 0, err
			}
			secs += s
		}
	}
	if secs > maxHour*secondsPerHour {
		p.pos = start
		return 0, p.errorf("%v exceeds %d hours", what, maxHour)
	}
	if neg {
		secs = -secs
	}
	return int32(secs), nil //nolint:gosec
}

// transition scans Jn, n, or Mm.w.d with an optional /time suffix.
func (p *parser) transition(what string) (*Transition, error) {
	t := &Transition{Time: defaultTransitionTime}
	var err error

	switch ch := p.peek(); {
	case ch == 'J':
		p.pos++
		t.Kind = Julian
		if t.Day, err = p.num(3, 1, 365, what+" julian day"); err != nil {
			return nil, err
		}
	case ch == 'M':
		p.pos++
		t.Kind = MonthWeekDay
		if t.Month, err = p.num(2, 1, 12, what+" month"); err != nil {
			return nil, err
		}
		if p.peek() != '.' {
			return nil, p.errorf(`expected "." after %v month`, what)
		}
		p.pos++
		if t.Week, err = p.num(1, 1, 5, what+" week"); err != nil {
			return nil, err
		}
		if p.peek() != '.' {
			return nil, p.errorf(`expected "." after %v week`, what)
		}
		p.pos++
		if t.Weekday, err = p.num(1, 0, 6, what+" weekday"); err != nil {
			return nil, err
		}
	case ch >= '0' && ch <= '9':
		t.Kind = ZeroJulian
		if t.Day, err = p.num(3, 0, 365, what+" day"); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected %v rule", what)
	}

	if p.peek() == '/' {
		p.pos++
		if t.Time, err = p.offset(maxRuleHour, what+" time"); err != nil {
			return nil, err
		}
	}
	return t, nil
}
