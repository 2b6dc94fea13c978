package models

import (
	"bytes"
	"fmt"
	"time"
)

// apiTimeLayout is the only timestamp form the service emits and accepts:
// millisecond precision is always three digits and the zone offset carries
// no colon ("2024-01-15T09:00:00.000+0000").
const apiTimeLayout = "2006-01-02T15:04:05.000-0700"

// apiTimeParseLayouts lists the forms tolerated on input. The service is
// consistent, but exported calendars and older clients occasionally drop
// the millisecond part or use a "Z" zone designator.
var apiTimeParseLayouts = []string{
	apiTimeLayout,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05Z07:00",
}

// Time wraps time.Time with the service's JSON timestamp encoding.
// Use *Time for optional timestamp fields so omitted values stay nil.
type Time struct {
	time.Time
}

// NewTime converts a standard time.Time into the wire representation.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// MarshalJSON renders the timestamp in the service's canonical layout.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(apiTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts any of the tolerated layouts. JSON null and the
// empty string leave the value at its zero time.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		return nil
	}

	for _, layout := range apiTimeParseLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", raw)
}

// DateStamp renders the time as the YYYYMMDD stamp used by habit check-ins.
func (t Time) DateStamp() string {
	return t.Format("20060102")
}

// ParseDateStamp parses a YYYYMMDD stamp back into a Time.
func ParseDateStamp(stamp string) (Time, error) {
	parsed, err := time.Parse("20060102", stamp)
	if err != nil {
		return Time{}, fmt.Errorf("invalid date stamp %q: %w", stamp, err)
	}
	return Time{Time: parsed}, nil
}

// QueryParam renders the time in the space-separated form the range query
// parameters (from, to) accept.
func (t Time) QueryParam() string {
	return t.Format("2006-01-02 15:04:05")
}
