package calendardomain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTime is returned for timestamps in none of the accepted layouts.
var ErrInvalidTime = errors.New("invalid datetime")

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime accepts RFC 3339 timestamps, or wall-clock values without an
// offset which are read in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidTime
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, value)
}

// FormatDuration renders minutes as HH:MM. Zero or negative yields "".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// LoadLocation resolves name, falling back to fallback when name is empty.
func LoadLocation(name string, fallback *time.Location) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		if fallback == nil {
			return time.UTC, nil
		}
		return fallback, nil
	}
	return time.LoadLocation(name)
}
