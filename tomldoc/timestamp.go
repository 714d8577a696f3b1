package tomldoc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joshuapare/tomlkit/internal/parsetree"
)

// TimestampKind discriminates the four TOML date-time forms. The values are
// the one-character codes exposed to embedding layers.
type TimestampKind byte

const (
	OffsetDateTime TimestampKind = parsetree.KindOffsetDateTime
	LocalDateTime  TimestampKind = parsetree.KindLocalDateTime
	LocalDate      TimestampKind = parsetree.KindLocalDate
	LocalTime      TimestampKind = parsetree.KindLocalTime
)

func (k TimestampKind) String() string {
	switch k {
	case OffsetDateTime:
		return "offset datetime"
	case LocalDateTime:
		return "local datetime"
	case LocalDate:
		return "local date"
	case LocalTime:
		return "local time"
	default:
		return fmt.Sprintf("TimestampKind(%q)", byte(k))
	}
}

// Timestamp is a decoded TOML date-time. Fields that do not apply to Kind
// are zero. It holds no reference to the document it came from.
type Timestamp struct {
	Kind        TimestampKind
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int

	zone string
}

func newTimestamp(ts *parsetree.Timestamp) Timestamp {
	return Timestamp{
		Kind:        TimestampKind(ts.Kind),
		Year:        ts.Year,
		Month:       ts.Month,
		Day:         ts.Day,
		Hour:        ts.Hour,
		Minute:      ts.Minute,
		Second:      ts.Second,
		Millisecond: ts.Millisec,
		zone:        ts.Z,
	}
}

// Zone returns the UTC offset as written ("Z" or "+hh:mm"/"-hh:mm"). ok is
// false for local date-times, dates and times.
func (ts Timestamp) Zone() (string, bool) {
	return ts.zone, ts.zone != ""
}

// Seconds returns the seconds field with the milliseconds as a fraction.
func (ts Timestamp) Seconds() float64 {
	return float64(ts.Second) + float64(ts.Millisecond)/1000.0
}

// String formats the timestamp in TOML syntax with millisecond precision.
func (ts Timestamp) String() string {
	switch ts.Kind {
	case LocalDate:
		return fmt.Sprintf("%d-%02d-%02d", ts.Year, ts.Month, ts.Day)
	case LocalTime:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", ts.Hour, ts.Minute, ts.Second, ts.Millisecond)
	case LocalDateTime:
		return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d.%03d",
			ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Millisecond)
	default:
		return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d.%03d%s",
			ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Millisecond, ts.zone)
	}
}

// Describe returns the one-line summary used by interactive hosts, e.g.
// "TOML Timestamp (local date): 1979-05-27".
func (ts Timestamp) Describe() string {
	return fmt.Sprintf("TOML Timestamp (%s): %s", ts.Kind, ts)
}

// Time converts the timestamp to a time.Time. Offset date-times carry their
// offset as a fixed zone; the local forms are placed in loc (time.Local
// when nil). A local time is anchored on 0000-01-01.
func (ts Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	if ts.Kind == OffsetDateTime {
		loc = zoneLocation(ts.zone)
	}
	year, month, day := ts.Year, ts.Month, ts.Day
	if ts.Kind == LocalTime {
		year, month, day = 0, 1, 1
	}
	return time.Date(year, time.Month(month), day,
		ts.Hour, ts.Minute, ts.Second, ts.Millisecond*int(time.Millisecond), loc)
}

func zoneLocation(z string) *time.Location {
	if z == "" || z == "Z" || len(z) != len("+00:00") {
		return time.UTC
	}
	h, errH := strconv.Atoi(z[1:3])
	m, errM := strconv.Atoi(z[4:6])
	if errH != nil || errM != nil {
		return time.UTC
	}
	off := h*3600 + m*60
	if z[0] == '-' {
		off = -off
	}
	if off == 0 {
		return time.UTC
	}
	return time.FixedZone(z, off)
}
