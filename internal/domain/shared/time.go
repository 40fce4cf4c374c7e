package shared

import (
	"fmt"
	"strings"
	"time"
)

// ISOTimestampLayout renders timestamps with millisecond precision in UTC,
// e.g. 2024-01-15T00:00:00.000Z.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// TimestampPrecision is the finest unit kept for parsed and generated
// timestamps, so stored values render back unchanged.
const TimestampPrecision = time.Millisecond

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Clock returns the current time. Tests replace it to pin "now".
type Clock func() time.Time

// SystemClock returns the current time in UTC, truncated to TimestampPrecision.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(TimestampPrecision)
}

// ParseTimestamp parses an ISO-8601 timestamp, normalizes it to UTC and
// truncates it to TimestampPrecision. Values without a zone are treated as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, NewValidationError("Timestamp cannot be empty")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Truncate(TimestampPrecision), nil
		}
	}
	return time.Time{}, NewValidationError(fmt.Sprintf("Invalid timestamp %q, expected ISO-8601", raw))
}

// FormatTimestamp renders t in UTC using ISOTimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// Timestamp is a time.Time that decodes from any layout ParseTimestamp accepts.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return NewValidationError("Timestamp must be a string")
	}
	parsed, err := ParseTimestamp(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + FormatTimestamp(t.Time) + `"`), nil
}
