// Package timeutil provides the countdown duration value and helpers for
// working with time-related operations.
package timeutil

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Clock formats an hour, minute, second triple as "HH:MM:SS".
func Clock(h, m, s int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses a natural language date such as "yesterday" or
// "2 hours ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// keyLayout is RFC 3339 with a fixed-width fraction so keys sort by byte.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt. Keys are in UTC
// and order chronologically.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
