package in

import (
	"context"

	"homedash/internal/modules/reading/dto"
	readingin "homedash/internal/modules/reading/port/in"
)

type CLIHandler struct {
	usecase readingin.Usecase
}

func NewCLIHandler(usecase readingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context) dto.ReadingOutput {
	return h.usecase.Resolve(ctx)
}
