package models

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultZone is the civil timezone all dates are read and displayed in.
const DefaultZone = "Pacific/Auckland"

// LoadZone resolves a timezone name using the embedded tz database when the
// host has none.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Location names the TOML decoder uses for values written without an offset.
var floatingZones = map[string]struct{}{
	"datetime-local": {},
	"date-local":     {},
}

// timeOnlyZone marks a TOML local time, which has no date.
const timeOnlyZone = "time-local"

var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05 -0700",
	}
	floatingLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// Timestamp is an optional point in time. Floating timestamps were written
// without an offset and take their meaning from the display timezone.
type Timestamp struct {
	Time     time.Time
	Floating bool
}

// IsZero reports whether the timestamp is absent.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero()
}

// In pins the timestamp to loc. Floating values keep their wall clock, fixed
// values keep their instant. Applying In twice yields the same value.
func (t Timestamp) In(loc *time.Location) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	if !t.Floating {
		return Timestamp{Time: t.Time.In(loc)}
	}
	w := t.Time
	return Timestamp{Time: time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc)}
}

// Compare orders present timestamps chronologically. Absent timestamps
// compare equal to each other.
func (t Timestamp) Compare(u Timestamp) int {
	return t.Time.Compare(u.Time)
}

// ParseTimestamp parses an ISO-8601 date or date-time string.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range offsetLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: v}, nil
		}
	}
	for _, layout := range floatingLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: v, Floating: true}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised date %q", s)
}

// UnmarshalTOML accepts native TOML dates and date-times as well as strings.
func (t *Timestamp) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		if v.Location().String() == timeOnlyZone {
			return fmt.Errorf("expected a date, got the time of day %s", v.Format("15:04:05"))
		}
		_, floating := floatingZones[v.Location().String()]
		*t = Timestamp{Time: v, Floating: floating}
	case string:
		ts, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = ts
	default:
		return fmt.Errorf("expected a date, got %T", v)
	}
	return nil
}
