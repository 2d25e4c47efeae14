package clock

import "time"

// Clock abstracts time so "today" stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in the configured location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
