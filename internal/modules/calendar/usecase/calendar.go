package usecase

import (
	"context"
	"fmt"
	"time"

	"homedash/internal/modules/calendar/domain"
	"homedash/internal/modules/calendar/dto"
	calendarin "homedash/internal/modules/calendar/port/in"
	"homedash/internal/modules/calendar/service"
)

type Interactor struct {
	svc *service.CalendarService
}

func NewInteractor(svc *service.CalendarService) calendarin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Month(ctx context.Context, input dto.MonthInput) (dto.GridOutput, error) {
	grid, err := i.svc.Month(ctx, input.Year, time.Month(input.Month))
	if err != nil {
		return dto.GridOutput{}, err
	}
	out := dto.GridOutput{
		Year:  grid.Year,
		Month: int(grid.Month),
		Title: fmt.Sprintf("%s %d", grid.Month, grid.Year),
		Prev:  grid.Prev().Format("2006-01"),
		Next:  grid.Next().Format("2006-01"),
		Weeks: make([][]dto.CellOutput, 0, domain.GridWeeks),
	}
	for _, week := range grid.Weeks() {
		row := make([]dto.CellOutput, 0, len(week))
		for _, c := range week {
			row = append(row, dto.CellOutput{
				Day:     c.Day,
				Date:    c.Date,
				Padding: c.Padding,
				Empty:   c.Empty,
				Today:   c.Today,
				Ideas:   toIdeaOutputs(c.Ideas),
			})
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out, nil
}

func (i *Interactor) Ideas(ctx context.Context) ([]dto.IdeaOutput, error) {
	ideas, err := i.svc.Ideas(ctx)
	if err != nil {
		return nil, err
	}
	return toIdeaOutputs(ideas), nil
}

func toIdeaOutputs(ideas []domain.Idea) []dto.IdeaOutput {
	if len(ideas) == 0 {
		return nil
	}
	out := make([]dto.IdeaOutput, 0, len(ideas))
	for _, idea := range ideas {
		out = append(out, dto.IdeaOutput{Date: idea.Date, Idea: idea.Idea, Link: idea.Link})
	}
	return out
}
