package timeutil

import (
	"cmp"
	"time"

	"github.com/ayoisaiah/countdown/internal/apperr"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// ErrNegativeComponent is returned by FromTriple for negative components.
var ErrNegativeComponent = &apperr.Error{
	Message: "%s cannot be negative (got %d)",
}

// Value is a non-negative duration counted in whole milliseconds. The zero
// value is a valid zero duration.
type Value struct {
	ms int64
}

// Millis constructs a Value from milliseconds, clamping negatives to zero.
func Millis(ms int64) Value {
	return Value{ms: max(ms, 0)}
}

// FromDuration converts d to a Value, truncating to milliseconds.
func FromDuration(d time.Duration) Value {
	return Millis(d.Milliseconds())
}

// FromTriple builds a Value from an hours, minutes, seconds triple.
// Components larger than their display range are carried over, so
// FromTriple(0, 0, 90) equals FromTriple(0, 1, 30).
func FromTriple(h, m, s int64) (Value, error) {
	for _, c := range []struct {
		name string
		v    int64
	}{{"hours", h}, {"minutes", m}, {"seconds", s}} {
		if c.v < 0 {
			return Value{}, ErrNegativeComponent.Fmt(c.name, c.v)
		}
	}

	return Value{ms: h*msPerHour + m*msPerMinute + s*msPerSecond}, nil
}

// Millis returns the value in milliseconds.
func (v Value) Millis() int64 {
	return v.ms
}

// Duration returns the value as a time.Duration.
func (v Value) Duration() time.Duration {
	return time.Duration(v.ms) * time.Millisecond
}

// Triple decomposes the value for display. Hours are not wrapped.
func (v Value) Triple() (h, m, s int64) {
	h = v.ms / msPerHour
	m = (v.ms / msPerMinute) % 60
	s = (v.ms / msPerSecond) % 60

	return h, m, s
}

// SubtractElapsed returns the value reduced by elapsed milliseconds. The
// result never drops below zero.
func (v Value) SubtractElapsed(elapsed int64) Value {
	return Millis(v.ms - max(elapsed, 0))
}

// IsZero reports whether no time is left.
func (v Value) IsZero() bool {
	return v.ms == 0
}

// Compare returns -1, 0 or +1 depending on whether v is shorter than, equal
// to or longer than o.
func (v Value) Compare(o Value) int {
	return cmp.Compare(v.ms, o.ms)
}

// Less reports whether v is shorter than o.
func (v Value) Less(o Value) bool {
	return v.ms < o.ms
}

// Fraction returns v divided by total, clamped to [0, 1]. A zero total
// yields zero.
func (v Value) Fraction(total Value) float64 {
	if total.ms == 0 {
		return 0
	}

	return min(max(float64(v.ms)/float64(total.ms), 0), 1)
}

func (v Value) String() string {
	return Clock(v.Triple())
}
