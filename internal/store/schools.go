package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sipengawas/internal/model"
)

// GetSchools returns the user's schools in insertion order.
func (s *fileStore) GetSchools(ctx context.Context, userID string) ([]model.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schools := []model.School{}
	for _, school := range s.db.Schools {
		if school.UserID == userID {
			schools = append(schools, school)
		}
	}
	return schools, nil
}

// CreateSchool assigns id and createdAt, appends and persists.
func (s *fileStore) CreateSchool(ctx context.Context, school *model.School) (*model.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	school.ID = uuid.NewString()
	school.CreatedAt = time.Now()

	s.db.Schools = append(s.db.Schools, *school)
	if err := s.persistLocked(); err != nil {
		s.db.Schools = s.db.Schools[:len(s.db.Schools)-1]
		return nil, err
	}
	return school, nil
}

// DeleteSchool removes the school with the given id; a missing id is a
// no-op. Supervisions of the school are deliberately kept.
func (s *fileStore) DeleteSchool(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db.Schools
	kept := make([]model.School, 0, len(prev))
	for _, school := range prev {
		if school.ID != id {
			kept = append(kept, school)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}

	s.db.Schools = kept
	if err := s.persistLocked(); err != nil {
		s.db.Schools = prev
		return err
	}
	return nil
}
