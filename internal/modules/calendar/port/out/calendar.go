package out

import (
	"context"

	"homedash/internal/modules/calendar/domain"
)

// IdeaStore loads the hand-edited idea list in file order.
type IdeaStore interface {
	Load(ctx context.Context) ([]domain.Idea, error)
}
