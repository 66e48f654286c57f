package utils

import "time"

// ISOLayout matches JavaScript's Date.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Now is swappable in tests.
var Now = time.Now

// NowISO returns the current UTC time as an ISO-8601 string with millisecond precision.
func NowISO() string {
	return FormatISO(Now())
}

// FormatISO formats t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO accepts ISOLayout and plain RFC3339 timestamps.
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// LaterISO returns NowISO, never earlier than any of the given timestamps.
func LaterISO(floors ...string) string {
	now := Now().UTC().Truncate(time.Millisecond)
	for _, f := range floors {
		if f == "" {
			continue
		}
		if t, err := ParseISO(f); err == nil && t.After(now) {
			now = t
		}
	}
	return FormatISO(now)
}
