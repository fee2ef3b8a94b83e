// Package biztime provides UTC time helpers shared by the domain and the
// persistence layer.
//
// Rules:
//   - All storage and transport use UTC
//   - Textual timestamps must carry an explicit offset; offset-less text is a
//     naive timestamp and is rejected, never assumed to be UTC
//   - The zero time.Time means "unset" and is never persisted as a value
//
// The business timezone is only used for cron expressions and display.
package biztime

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"

	// StorageLayout is the fixed-width layout used for persisted timestamps.
	// Fixed width keeps lexical order equal to chronological order.
	StorageLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNaiveTimestamp is returned when a timestamp carries no timezone information.
var ErrNaiveTimestamp = errors.New("timestamp is not timezone-aware")

// naiveLayouts are never accepted. They only tell a naive timestamp apart
// from malformed input.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing it with the
// default timezone if Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// RequireAware rejects the zero time and normalizes everything else to UTC.
func RequireAware(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrNaiveTimestamp
	}
	return t.UTC(), nil
}

// ParseAware parses an RFC 3339 timestamp with a mandatory offset and returns
// it in UTC. Offset-less input yields ErrNaiveTimestamp.
func ParseAware(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t.UTC(), nil
	}

	for _, layout := range naiveLayouts {
		if _, naiveErr := time.Parse(layout, s); naiveErr == nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrNaiveTimestamp, s)
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp format %q: %w", s, err)
}

// FormatStorage formats t for storage in UTC using StorageLayout.
func FormatStorage(t time.Time) string {
	return t.UTC().Format(StorageLayout)
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
