package domain

import "time"

const DayLayout = "2006-01-02"

// Stat is a single review-count answer. Error marks a placeholder produced
// after the counter could not be reached.
type Stat struct {
	Today   int
	Error   bool
	Message string
}

func Failed(reason string) Stat {
	return Stat{Today: 0, Error: true, Message: reason}
}

type DayCount struct {
	Day   time.Time
	Count int
}
