package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the input and display format of show and availability times.
const TimestampLayout = "2006-01-02 15:04:05"

// Interval is a closed range [Start, End] over timezone-naive timestamps.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the interval [start, end]. It does not check ordering; see Ordered.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// ParseInterval parses both bounds with TimestampLayout.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return Interval{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseTimestamp(end)
	if err != nil {
		return Interval{}, fmt.Errorf("end: %w", err)
	}
	return NewInterval(s, e), nil
}

// ParseTimestamp parses value as exactly TimestampLayout. time.Parse also
// accepts fractional seconds and unpadded fields, so the result must format
// back to the input.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrParse, value, err)
	}
	if FormatTimestamp(t) != value {
		return time.Time{}, fmt.Errorf("%w: %q is not in %s form", ErrParse, value, TimestampLayout)
	}
	return t, nil
}

// Ordered reports whether Start is not after End.
func (i Interval) Ordered() bool {
	return !i.Start.After(i.End)
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return !i.Start.After(other.Start) && !i.End.Before(other.End)
}

// covers reports whether instant t lies within i, bounds included.
func (i Interval) covers(t time.Time) bool {
	return !i.Start.After(t) && !i.End.Before(t)
}

// Overlaps reports whether i and other share at least one instant. Touching
// bounds count as overlap. The test is the disjunction of: i contains other,
// other contains i, other covers the start of i, other covers the end of i.
func (i Interval) Overlaps(other Interval) bool {
	return i.Contains(other) ||
		other.Contains(i) ||
		other.covers(i.Start) ||
		other.covers(i.End)
}

// OverlapsAny reports whether candidate overlaps any of the given intervals.
func OverlapsAny(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Naive drops the location of t and keeps its wall clock, expressed in UTC.
// Stored timestamps carry no zone, so "now" must be compared the same way.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
