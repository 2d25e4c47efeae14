package service

import (
	"context"
	"log"

	"homedash/internal/modules/reading/domain"
	readingout "homedash/internal/modules/reading/port/out"
)

type ReadingService struct {
	shelf    readingout.ShelfClient
	fallback readingout.BookStore
}

func NewReadingService(shelf readingout.ShelfClient, fallback readingout.BookStore) *ReadingService {
	return &ReadingService{shelf: shelf, fallback: fallback}
}

// Resolve asks the remote shelf first and falls back to the local records on
// any failure. An empty remote shelf is an answer, not a failure.
func (s *ReadingService) Resolve(ctx context.Context) domain.Resolution {
	reason := "remote shelf is not configured"
	if s.shelf != nil {
		books, err := s.shelf.CurrentlyReading(ctx)
		if err == nil {
			if len(books) == 0 {
				return domain.NoActiveBook(domain.SourceGoodreads)
			}
			book := books[0].Normalized()
			book.Progress = 0
			book.Current = true
			return domain.Reading(domain.SourceGoodreads, book)
		}
		log.Printf("reading: remote shelf failed, using fallback: %v", err)
		reason = err.Error()
	}
	res := s.fromFallback(ctx)
	if res.Reason == "" {
		res.Reason = reason
	}
	return res
}

func (s *ReadingService) fromFallback(ctx context.Context) domain.Resolution {
	if s.fallback == nil {
		res := domain.NoActiveBook(domain.SourceFallback)
		res.Reason = "fallback store is not configured"
		return res
	}
	books, err := s.fallback.Load(ctx)
	if err != nil {
		log.Printf("reading: fallback store failed: %v", err)
		res := domain.NoActiveBook(domain.SourceFallback)
		res.Reason = err.Error()
		return res
	}
	book, ok := domain.CurrentBook(books)
	if !ok {
		return domain.NoActiveBook(domain.SourceFallback)
	}
	return domain.Reading(domain.SourceFallback, book)
}
