package in

import (
	"context"

	"homedash/internal/modules/calendar/dto"
)

type Usecase interface {
	Month(ctx context.Context, input dto.MonthInput) (dto.GridOutput, error)
	Ideas(ctx context.Context) ([]dto.IdeaOutput, error)
}
