package dto

import (
	"fmt"
	"strings"
	"time"

	apperrors "homedash/internal/platform/errors"
)

const MonthLayout = "2006-01"

// ParseMonth reads a YYYY-MM value. An empty value is the zero MonthInput,
// which selects the current month.
func ParseMonth(value string) (MonthInput, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return MonthInput{}, nil
	}
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return MonthInput{}, fmt.Errorf("month %q must be YYYY-MM: %w", value, apperrors.ErrInvalidInput)
	}
	return MonthInput{Year: t.Year(), Month: int(t.Month())}, nil
}
