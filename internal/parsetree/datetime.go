package parsetree

import (
	"fmt"
	"time"
)

// Timestamp kinds, matching the one-character discriminants used by the
// date-time probe.
const (
	KindOffsetDateTime = 'd'
	KindLocalDateTime  = 'l'
	KindLocalDate      = 'D'
	KindLocalTime      = 't'
)

// Location names the decoder attaches to local date-times.
const (
	locDatetimeLocal = "datetime-local"
	locDateLocal     = "date-local"
	locTimeLocal     = "time-local"
)

// Timestamp is the decoded form of a date-time slot. Z holds the zone
// offset text and is only set for offset date-times.
type Timestamp struct {
	Kind     byte
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Second   int
	Millisec int
	Z        string
}

// datetime is the stored form of a date-time slot.
type datetime struct {
	t    time.Time
	kind byte
}

func newDatetime(t time.Time) *datetime {
	kind := byte(KindOffsetDateTime)
	switch t.Location().String() {
	case locDatetimeLocal:
		kind = KindLocalDateTime
	case locDateLocal:
		kind = KindLocalDate
	case locTimeLocal:
		kind = KindLocalTime
	}
	return &datetime{t: t, kind: kind}
}

// zone renders the offset as written in TOML: "Z" for UTC, otherwise ±hh:mm.
func (d *datetime) zone() string {
	if d.kind != KindOffsetDateTime {
		return ""
	}
	if d.t.Location() == time.UTC {
		return "Z"
	}
	return d.t.Format("-07:00")
}

// decode materializes the timestamp. size is the number of bytes of its
// canonical text form, which is what a probe is charged against the budget.
func (d *datetime) decode() (*Timestamp, int) {
	ts := &Timestamp{Kind: d.kind}
	switch d.kind {
	case KindOffsetDateTime, KindLocalDateTime, KindLocalDate:
		ts.Year, ts.Month, ts.Day = d.t.Year(), int(d.t.Month()), d.t.Day()
	}
	switch d.kind {
	case KindOffsetDateTime, KindLocalDateTime, KindLocalTime:
		ts.Hour, ts.Minute, ts.Second = d.t.Hour(), d.t.Minute(), d.t.Second()
		ts.Millisec = d.t.Nanosecond() / int(time.Millisecond)
	}
	ts.Z = d.zone()
	return ts, len(ts.text())
}

func (ts *Timestamp) text() string {
	switch ts.Kind {
	case KindLocalDate:
		return fmt.Sprintf("%d-%02d-%02d", ts.Year, ts.Month, ts.Day)
	case KindLocalTime:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", ts.Hour, ts.Minute, ts.Second, ts.Millisec)
	default:
		return fmt.Sprintf("%d-%02d-%02dT%02d:%02d:%02d.%03d%s",
			ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Millisec, ts.Z)
	}
}
