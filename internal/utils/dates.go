package utils

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical UTC timestamp used in API responses.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate normalizes a client-supplied date to UTC. An empty string means
// "not provided" and yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", value)
}

// FormatTimestamp renders t in the canonical layout, e.g. 2024-03-01T00:00:00.000Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
