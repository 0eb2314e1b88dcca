package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 13, 45, 10, 500, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), RoundToStart(ts))
	assert.Equal(t, time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC), RoundToEnd(ts))
}

func TestFromStrAbsoluteDate(t *testing.T) {
	now := time.Date(2024, time.March, 9, 13, 45, 0, 0, time.UTC)

	got, err := FromStr("2024-01-02", now)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())
}

func TestFromStrRejectsGarbage(t *testing.T) {
	_, err := FromStr("not a date at all", time.Now())

	assert.Error(t, err)
}

func TestToKeyOrdersChronologically(t *testing.T) {
	a := time.Date(2024, time.March, 9, 8, 0, 0, 0, time.UTC)
	b := a.Add(time.Minute)
	c := a.Add(500 * time.Millisecond)
	d := a.Add(500*time.Millisecond + time.Microsecond)

	assert.Less(t, string(ToKey(a)), string(ToKey(b)))
	assert.Less(t, string(ToKey(c)), string(ToKey(d)))

	// offsets are normalised
	lagos := time.FixedZone("WAT", 3600)
	assert.Equal(t, ToKey(a), ToKey(a.In(lagos)))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "99:05:00", Clock(99, 5, 0))
}
