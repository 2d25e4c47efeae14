package out

import (
	"context"

	"homedash/internal/modules/reading/domain"
)

// ShelfClient lists the books on the remote "currently reading" shelf.
type ShelfClient interface {
	CurrentlyReading(ctx context.Context) ([]domain.Book, error)
}

// BookStore loads the hand-maintained fallback records.
type BookStore interface {
	Load(ctx context.Context) ([]domain.Book, error)
}
