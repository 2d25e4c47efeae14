package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"homedash/internal/modules/calendar/domain"
	calendarout "homedash/internal/modules/calendar/port/out"
	apperrors "homedash/internal/platform/errors"
)

type FileIdeaStore struct {
	path string
}

func NewFileIdeaStore(path string) calendarout.IdeaStore {
	return &FileIdeaStore{path: path}
}

func (s *FileIdeaStore) Load(_ context.Context) ([]domain.Idea, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("music ideas %s: %w", s.path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read music ideas: %w", err)
	}
	ideas := []domain.Idea{}
	if err := json.Unmarshal(payload, &ideas); err != nil {
		return nil, fmt.Errorf("decode music ideas: %w", err)
	}
	return ideas, nil
}
