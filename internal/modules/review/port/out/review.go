package out

import (
	"context"
	"time"

	"homedash/internal/modules/review/domain"
)

// ReviewCounter asks the flashcard service how many cards were reviewed today.
type ReviewCounter interface {
	ReviewedToday(ctx context.Context) (int, error)
}

// HistoryProjector keeps one count per day for later display.
type HistoryProjector interface {
	Record(ctx context.Context, day time.Time, count int) error
	Recent(ctx context.Context, limit int) ([]domain.DayCount, error)
}
