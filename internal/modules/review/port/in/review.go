package in

import (
	"context"

	"homedash/internal/modules/review/dto"
)

type Usecase interface {
	// Today never fails; a failed lookup yields an error-flagged zero count.
	Today(ctx context.Context) dto.ReviewOutput
	History(ctx context.Context, input dto.HistoryInput) ([]dto.DayOutput, error)
}
