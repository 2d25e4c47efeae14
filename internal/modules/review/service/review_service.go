package service

import (
	"context"
	"fmt"
	"log"

	"homedash/internal/modules/review/domain"
	reviewout "homedash/internal/modules/review/port/out"
	"homedash/internal/platform/clock"
	apperrors "homedash/internal/platform/errors"
)

const maxHistoryDays = 366

type ReviewService struct {
	clock   clock.Clock
	counter reviewout.ReviewCounter
	history reviewout.HistoryProjector
}

func NewReviewService(clock clock.Clock, counter reviewout.ReviewCounter, history reviewout.HistoryProjector) *ReviewService {
	return &ReviewService{clock: clock, counter: counter, history: history}
}

// Today forwards one request to the counter. Failures become a zeroed,
// error-flagged stat; history recording is best effort.
func (s *ReviewService) Today(ctx context.Context) domain.Stat {
	if s.counter == nil {
		return domain.Failed("review counter is not configured")
	}
	count, err := s.counter.ReviewedToday(ctx)
	if err != nil {
		log.Printf("review: counter failed: %v", err)
		return domain.Failed(err.Error())
	}
	if s.history != nil {
		if err := s.history.Record(ctx, s.clock.Now(), count); err != nil {
			log.Printf("review: record history: %v", err)
		}
	}
	return domain.Stat{Today: count}
}

func (s *ReviewService) History(ctx context.Context, days int) ([]domain.DayCount, error) {
	if days <= 0 || days > maxHistoryDays {
		return nil, fmt.Errorf("days must be between 1 and %d: %w", maxHistoryDays, apperrors.ErrInvalidInput)
	}
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, days)
}
