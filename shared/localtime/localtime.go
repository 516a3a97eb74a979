package localtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format for scheduling times: a local
// wall-clock timestamp with no timezone designator. The same string must
// round-trip unchanged through JSON, the database and back; no UTC
// conversion is ever applied.
const Layout = "2006-01-02T15:04:05"

// LocalTime is a wall-clock timestamp with local-time semantics.
// It wraps a time.Time pinned to time.UTC purely as a neutral carrier
// location; the instant it represents is whatever the wall clock reads.
type LocalTime struct {
	t time.Time
}

func New(year int, month time.Month, day, hour, minute, second int) LocalTime {
	return LocalTime{t: time.Date(year, month, day, hour, minute, second, 0, time.UTC)}
}

// FromTime strips the location from t, keeping only the wall-clock reading.
func FromTime(t time.Time) LocalTime {
	return LocalTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Parse parses a Layout-formatted string.
func Parse(value string) (LocalTime, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return LocalTime{}, fmt.Errorf("invalid local datetime %q: %w", value, err)
	}

	return LocalTime{t: t}, nil
}

func (lt LocalTime) String() string {
	return lt.t.Format(Layout)
}

func (lt LocalTime) IsZero() bool {
	return lt.t.IsZero()
}

func (lt LocalTime) Before(other LocalTime) bool {
	return lt.t.Before(other.t)
}

func (lt LocalTime) After(other LocalTime) bool {
	return lt.t.After(other.t)
}

func (lt LocalTime) Equal(other LocalTime) bool {
	return lt.t.Equal(other.t)
}

// SameDate reports whether both timestamps fall on the same calendar date.
func (lt LocalTime) SameDate(other LocalTime) bool {
	y1, m1, d1 := lt.t.Date()
	y2, m2, d2 := other.t.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of the timestamp's calendar date.
func (lt LocalTime) StartOfDay() LocalTime {
	y, m, d := lt.t.Date()

	return LocalTime{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (lt LocalTime) AddDays(days int) LocalTime {
	return LocalTime{t: lt.t.AddDate(0, 0, days)}
}

func (lt LocalTime) Weekday() time.Weekday {
	return lt.t.Weekday()
}

// Clock returns the wall-clock portion formatted as "15:04".
func (lt LocalTime) Clock() string {
	return lt.t.Format("15:04")
}

// WithClock keeps the date and replaces the time-of-day with hh:mm:ss.
func (lt LocalTime) WithClock(hour, minute, second int) LocalTime {
	y, m, d := lt.t.Date()

	return LocalTime{t: time.Date(y, m, d, hour, minute, second, 0, time.UTC)}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + lt.String() + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		*lt = LocalTime{}

		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*lt = parsed

	return nil
}

// Value stores the timestamp as a naked wall-clock string so the database
// column (timestamp without time zone) preserves it bit-for-bit.
func (lt LocalTime) Value() (driver.Value, error) {
	if lt.t.IsZero() {
		return nil, nil
	}

	return lt.String(), nil
}

func (lt *LocalTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*lt = LocalTime{}

		return nil
	case time.Time:
		*lt = FromTime(v)

		return nil
	case []byte:
		parsed, err := Parse(strings.TrimSuffix(string(v), "Z"))
		if err != nil {
			return err
		}

		*lt = parsed

		return nil
	case string:
		parsed, err := Parse(strings.TrimSuffix(v, "Z"))
		if err != nil {
			return err
		}

		*lt = parsed

		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", src)
	}
}
