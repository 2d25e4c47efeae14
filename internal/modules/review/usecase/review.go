package usecase

import (
	"context"

	"homedash/internal/modules/review/domain"
	"homedash/internal/modules/review/dto"
	reviewin "homedash/internal/modules/review/port/in"
	"homedash/internal/modules/review/service"
)

type Interactor struct {
	svc *service.ReviewService
}

func NewInteractor(svc *service.ReviewService) reviewin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Today(ctx context.Context) dto.ReviewOutput {
	stat := i.svc.Today(ctx)
	return dto.ReviewOutput{Today: stat.Today, Error: stat.Error, Message: stat.Message}
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.DayOutput, error) {
	days, err := i.svc.History(ctx, input.Days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayOutput, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayOutput{Date: d.Day.Format(domain.DayLayout), Count: d.Count})
	}
	return out, nil
}
