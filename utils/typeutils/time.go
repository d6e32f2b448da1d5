package typeutils

import (
	"fmt"
	"time"
)

// timestampLayouts are tried in order when parsing cursor values; the API is
// inconsistent about zone suffixes and sub-second precision across endpoints.
var timestampLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.000-07:00",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// zoneless layouts resolve in UTC
var zonelessLayouts = map[string]bool{
	"2006-01-02T15:04:05": true,
	"2006-01-02 15:04:05": true,
	"2006-01-02":          true,
}

// ParseTimestamp parses a timestamp in any of the accepted layouts. Layouts
// without zone information are interpreted as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		loc := time.UTC
		if !zonelessLayouts[layout] {
			loc = time.Local
		}
		if ts, err := time.ParseInLocation(layout, value, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// FormatTimestamp renders a time the way the API expects bound parameters,
// second precision with a numeric zone offset.
func FormatTimestamp(ts time.Time) string {
	return ts.Truncate(time.Second).Format("2006-01-02T15:04:05-07:00")
}
