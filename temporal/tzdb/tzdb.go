// Package tzdb provides the built-in database of named time zones. The
// database maps IANA zone identifiers to a standard-time abbreviation and
// UTC offset. It records neither historical changes nor daylight saving
// time; zones that need DST are configured with a POSIX rule string.
package tzdb

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"golang.org/x/exp/maps"
)

// Entry describes a named zone.
type Entry struct {
	// Abbreviation is the standard-time abbreviation, e.g., "CST".
	Abbreviation string

	// Offset is the standard-time offset in seconds east of UTC.
	Offset int32
}

const hour = 60 * 60

// zones lists the database entries.
//
//nolint:gochecknoglobals
var zones = []struct {
	name   string
	abbrev string
	offset int32
}{
	{"UTC", "UTC", 0},
	{"GMT", "GMT", 0},
	{"Etc/UTC", "UTC", 0},
	{"Etc/GMT", "GMT", 0},
	{"Etc/Universal", "UTC", 0},
	{"Etc/Zulu", "UTC", 0},

	{"Africa/Abidjan", "GMT", 0},
	{"Africa/Accra", "GMT", 0},
	{"Africa/Addis_Ababa", "EAT", 3 * hour},
	{"Africa/Algiers", "CET", 1 * hour},
	{"Africa/Cairo", "EET", 2 * hour},
	{"Africa/Casablanca", "WET", 0},
	{"Africa/Johannesburg", "SAST", 2 * hour},
	{"Africa/Lagos", "WAT", 1 * hour},
	{"Africa/Nairobi", "EAT", 3 * hour},
	{"Africa/Tripoli", "EET", 2 * hour},
	{"Africa/Tunis", "CET", 1 * hour},

	{"America/Anchorage", "AKST", -9 * hour},
	{"America/Argentina/Buenos_Aires", "ART", -3 * hour},
	{"America/Bogota", "COT", -5 * hour},
	{"America/Caracas", "VET", -4 * hour},
	{"America/Chicago", "CST", -6 * hour},
	{"America/Denver", "MST", -7 * hour},
	{"America/Edmonton", "MST", -7 * hour},
	{"America/Halifax", "AST", -4 * hour},
	{"America/Havana", "CST", -5 * hour},
	{"America/Lima", "PET", -5 * hour},
	{"America/Los_Angeles", "PST", -8 * hour},
	{"America/Mexico_City", "CST", -6 * hour},
	{"America/Montevideo", "UYT", -3 * hour},
	{"America/New_York", "EST", -5 * hour},
	{"America/Phoenix", "MST", -7 * hour},
	{"America/Regina", "CST", -6 * hour},
	{"America/Santiago", "CLT", -4 * hour},
	{"America/Sao_Paulo", "BRT", -3 * hour},
	{"America/St_Johns", "NST", -3*hour - 30*60},
	{"America/Toronto", "EST", -5 * hour},
	{"America/Vancouver", "PST", -8 * hour},
	{"America/Winnipeg", "CST", -6 * hour},

	{"Asia/Almaty", "ALMT", 5 * hour},
	{"Asia/Baghdad", "AST", 3 * hour},
	{"Asia/Bangkok", "ICT", 7 * hour},
	{"Asia/Colombo", "IST", 5*hour + 30*60},
	{"Asia/Dhaka", "BST", 6 * hour},
	{"Asia/Dubai", "GST", 4 * hour},
	{"Asia/Ho_Chi_Minh", "ICT", 7 * hour},
	{"Asia/Hong_Kong", "HKT", 8 * hour},
	{"Asia/Jakarta", "WIB", 7 * hour},
	{"Asia/Jerusalem", "IST", 2 * hour},
	{"Asia/Kabul", "AFT", 4*hour + 30*60},
	{"Asia/Karachi", "PKT", 5 * hour},
	{"Asia/Kathmandu", "NPT", 5*hour + 45*60},
	{"Asia/Kolkata", "IST", 5*hour + 30*60},
	{"Asia/Kuala_Lumpur", "MYT", 8 * hour},
	{"Asia/Manila", "PHT", 8 * hour},
	{"Asia/Riyadh", "AST", 3 * hour},
	{"Asia/Seoul", "KST", 9 * hour},
	{"Asia/Shanghai", "CST", 8 * hour},
	{"Asia/Singapore", "SGT", 8 * hour},
	{"Asia/Taipei", "CST", 8 * hour},
	{"Asia/Tehran", "IRST", 3*hour + 30*60},
	{"Asia/Tokyo", "JST", 9 * hour},
	{"Asia/Yangon", "MMT", 6*hour + 30*60},

	{"Atlantic/Azores", "AZOT", -1 * hour},
	{"Atlantic/Reykjavik", "GMT", 0},

	{"Australia/Adelaide", "ACST", 9*hour + 30*60},
	{"Australia/Brisbane", "AEST", 10 * hour},
	{"Australia/Darwin", "ACST", 9*hour + 30*60},
	{"Australia/Hobart", "AEST", 10 * hour},
	{"Australia/Melbourne", "AEST", 10 * hour},
	{"Australia/Perth", "AWST", 8 * hour},
	{"Australia/Sydney", "AEST", 10 * hour},

	{"Europe/Amsterdam", "CET", 1 * hour},
	{"Europe/Athens", "EET", 2 * hour},
	{"Europe/Berlin", "CET", 1 * hour},
	{"Europe/Brussels", "CET", 1 * hour},
	{"Europe/Bucharest", "EET", 2 * hour},
	{"Europe/Budapest", "CET", 1 * hour},
	{"Europe/Dublin", "GMT", 0},
	{"Europe/Helsinki", "EET", 2 * hour},
	{"Europe/Istanbul", "TRT", 3 * hour},
	{"Europe/Kyiv", "EET", 2 * hour},
	{"Europe/Lisbon", "WET", 0},
	{"Europe/London", "GMT", 0},
	{"Europe/Madrid", "CET", 1 * hour},
	{"Europe/Moscow", "MSK", 3 * hour},
	{"Europe/Oslo", "CET", 1 * hour},
	{"Europe/Paris", "CET", 1 * hour},
	{"Europe/Prague", "CET", 1 * hour},
	{"Europe/Rome", "CET", 1 * hour},
	{"Europe/Stockholm", "CET", 1 * hour},
	{"Europe/Vienna", "CET", 1 * hour},
	{"Europe/Warsaw", "CET", 1 * hour},
	{"Europe/Zurich", "CET", 1 * hour},

	{"Pacific/Auckland", "NZST", 12 * hour},
	{"Pacific/Chatham", "CHAST", 12*hour + 45*60},
	{"Pacific/Fiji", "FJT", 12 * hour},
	{"Pacific/Guam", "ChST", 10 * hour},
	{"Pacific/Honolulu", "HST", -10 * hour},
	{"Pacific/Kiritimati", "LINT", 14 * hour},
	{"Pacific/Pago_Pago", "SST", -11 * hour},
}

// db is built from zones at package initialization and never modified.
//
//nolint:gochecknoglobals
var db = func() map[string]Entry {
	m := make(map[string]Entry, len(zones))
	for _, z := range zones {
		m[z.name] = Entry{Abbreviation: z.abbrev, Offset: z.offset}
	}
	return m
}()

// Lookup returns the entry for the zone named name.
func Lookup(name string) (Entry, bool) {
	e, ok := db[name]
	return e, ok
}

// Names returns the names of all zones in the database in sorted order.
func Names() []string {
	names := maps.Keys(db)
	slices.Sort(names)
	return names
}

// Len returns the number of zones in the database.
func Len() int { return len(db) }

// ValidName reports whether name has the shape of an IANA zone identifier:
// one or more "/"-separated components, each starting with a letter and
// continuing with letters, digits, "_", "-", or "+". It does not report
// whether the zone exists; use Lookup for that.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if !validComponent(part) {
			return false
		}
	}
	return true
}

func validComponent(part string) bool {
	first, size := utf8.DecodeRuneInString(part)
	if size == 0 || !xid.Start(first) {
		return false
	}
	for _, r := range part[size:] {
		if r != '-' && r != '+' && !xid.Continue(r) {
			return false
		}
	}
	return true
}
