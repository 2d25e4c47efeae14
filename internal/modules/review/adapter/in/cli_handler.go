package in

import (
	"context"

	"homedash/internal/modules/review/dto"
	reviewin "homedash/internal/modules/review/port/in"
)

type CLIHandler struct {
	usecase reviewin.Usecase
}

func NewCLIHandler(usecase reviewin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) dto.ReviewOutput {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) History(ctx context.Context, days int) ([]dto.DayOutput, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Days: days})
}
