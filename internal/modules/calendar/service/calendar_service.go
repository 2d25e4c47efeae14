package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"homedash/internal/modules/calendar/domain"
	calendarout "homedash/internal/modules/calendar/port/out"
	"homedash/internal/platform/clock"
	apperrors "homedash/internal/platform/errors"
)

type CalendarService struct {
	clock clock.Clock
	store calendarout.IdeaStore
}

func NewCalendarService(clock clock.Clock, store calendarout.IdeaStore) *CalendarService {
	return &CalendarService{clock: clock, store: store}
}

// Month builds the grid for year/month. A zero year or month means the
// clock's current month.
func (s *CalendarService) Month(ctx context.Context, year int, month time.Month) (domain.Grid, error) {
	now := s.clock.Now()
	if year == 0 && month == 0 {
		year, month = now.Year(), now.Month()
	}
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return domain.Grid{}, fmt.Errorf("month %04d-%02d: %w", year, int(month), apperrors.ErrInvalidInput)
	}
	ideas, err := s.valid(ctx)
	if err != nil {
		return domain.Grid{}, err
	}
	return domain.BuildMonth(ideas, year, month, now), nil
}

func (s *CalendarService) Ideas(ctx context.Context) ([]domain.Idea, error) {
	ideas, err := s.valid(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortByDate(ideas), nil
}

// valid drops entries that fail validation. A missing idea file is an empty
// calendar, not an error.
func (s *CalendarService) valid(ctx context.Context) ([]domain.Idea, error) {
	ideas, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("calendar: %v", err)
			return nil, nil
		}
		return nil, err
	}
	out := make([]domain.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if err := idea.Validate(); err != nil {
			log.Printf("calendar: skipping entry: %v", err)
			continue
		}
		out = append(out, idea)
	}
	return out, nil
}
