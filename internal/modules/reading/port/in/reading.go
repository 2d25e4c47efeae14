package in

import (
	"context"

	"homedash/internal/modules/reading/dto"
)

// Usecase never fails: every failure degrades to the fallback record.
type Usecase interface {
	Resolve(ctx context.Context) dto.ReadingOutput
}
