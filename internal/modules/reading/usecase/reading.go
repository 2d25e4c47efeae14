package usecase

import (
	"context"

	"homedash/internal/modules/reading/domain"
	"homedash/internal/modules/reading/dto"
	readingin "homedash/internal/modules/reading/port/in"
	"homedash/internal/modules/reading/service"
)

type Interactor struct {
	svc *service.ReadingService
}

func NewInteractor(svc *service.ReadingService) readingin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resolve(ctx context.Context) dto.ReadingOutput {
	res := i.svc.Resolve(ctx)
	out := dto.ReadingOutput{
		Source: string(res.Source),
		State:  string(res.State),
	}
	if res.Source == domain.SourceFallback {
		out.Message = res.Reason
	}
	if res.Book != nil {
		out.Book = &dto.BookOutput{
			Title:    res.Book.Title,
			Progress: res.Book.Progress,
			Pages:    res.Book.Pages,
			Current:  res.Book.Current,
		}
	}
	return out
}
