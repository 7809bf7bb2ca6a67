package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a venue day.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned when a string is not HH:MM or HH:MM:SS.
var ErrInvalidTimeFormat = errors.New("invalid time string format")

// TimeString is a wall-clock time within a single day, always stored
// normalized as "HH:MM". The zero value ("") means "not set".
type TimeString string

// NewTimeString takes the hour and minute of t.
func NewTimeString(t time.Time) TimeString {
	return FromMinutes(t.Hour()*60 + t.Minute())
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" and normalizes to "HH:MM".
// Seconds are accepted but dropped.
func NewTimeStringFromString(s string) (TimeString, error) {
	m, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(m), nil
}

// MustTimeString is NewTimeStringFromString for literals; it panics on bad input.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromMinutes builds a TimeString from minutes since midnight, wrapping into 0..1439.
func FromMinutes(m int) TimeString {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		values[i] = v
	}

	return values[0]*60 + values[1], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String returns the normalized "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the time is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that t holds a well-formed time.
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes returns minutes since midnight. Malformed values return 0; call
// Validate at the boundary where raw strings enter.
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return 0
	}
	return m
}

// AddMinutes shifts t by delta minutes, wrapping within the day.
// Ranges are never expected to cross midnight; wrapping is not an error.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return FromMinutes(m + delta), nil
}

// Compare returns -1, 0 or 1.
func Compare(a, b TimeString) int {
	am, bm := a.Minutes(), b.Minutes()
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}

func (t TimeString) IsBefore(other TimeString) bool {
	return Compare(t, other) < 0
}

func (t TimeString) IsAfter(other TimeString) bool {
	return Compare(t, other) > 0
}

func (t TimeString) Equal(other TimeString) bool {
	return Compare(t, other) == 0
}

// Scan implements sql.Scanner for TIME / TEXT columns.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.set(v)
	case []byte:
		return t.set(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) set(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	return t.set(s)
}
