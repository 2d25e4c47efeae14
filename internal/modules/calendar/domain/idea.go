package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Idea is one hand-written calendar entry.
type Idea struct {
	Date string `json:"date"`
	Idea string `json:"idea"`
	Link string `json:"link,omitempty"`
}

// Day parses Date as a calendar day in UTC.
func (i Idea) Day() (time.Time, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(i.Date))
	if err != nil {
		return time.Time{}, fmt.Errorf("idea date %q: %w", i.Date, err)
	}
	return day, nil
}

func (i Idea) Validate() error {
	if _, err := i.Day(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Idea) == "" {
		return fmt.Errorf("idea text is required for %s", i.Date)
	}
	return nil
}
