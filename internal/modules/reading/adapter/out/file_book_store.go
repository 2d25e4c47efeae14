package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"homedash/internal/modules/reading/domain"
	readingout "homedash/internal/modules/reading/port/out"
	apperrors "homedash/internal/platform/errors"
)

type FileBookStore struct {
	path string
}

func NewFileBookStore(path string) readingout.BookStore {
	return &FileBookStore{path: path}
}

func (s *FileBookStore) Load(_ context.Context) ([]domain.Book, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fallback books %s: %w", s.path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read fallback books: %w", err)
	}
	books := []domain.Book{}
	if err := json.Unmarshal(payload, &books); err != nil {
		return nil, fmt.Errorf("decode fallback books: %w", err)
	}
	return books, nil
}
