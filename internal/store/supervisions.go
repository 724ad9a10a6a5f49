package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sipengawas/internal/model"
)

// GetSupervisions returns the user's supervision visits in insertion order.
func (s *fileStore) GetSupervisions(ctx context.Context, userID string) ([]model.Supervision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sups := []model.Supervision{}
	for _, sup := range s.db.Supervisions {
		if sup.UserID == userID {
			sups = append(sups, sup)
		}
	}
	return sups, nil
}

// GetSupervisionsBySchool returns the user's supervisions of one school.
// Scoping by user as well as school keeps one supervisor's visits invisible
// to another even if school ids were ever shared.
func (s *fileStore) GetSupervisionsBySchool(ctx context.Context, userID, schoolID string) ([]model.Supervision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sups := []model.Supervision{}
	for _, sup := range s.db.Supervisions {
		if sup.UserID == userID && sup.SchoolID != nil && *sup.SchoolID == schoolID {
			sups = append(sups, sup)
		}
	}
	return sups, nil
}

// CreateSupervision assigns id and createdAt, defaults the date to now when
// unset, appends and persists.
func (s *fileStore) CreateSupervision(ctx context.Context, sup *model.Supervision) (*model.Supervision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup.ID = uuid.NewString()
	sup.CreatedAt = time.Now()
	if sup.Date.IsZero() {
		sup.Date = sup.CreatedAt
	}

	s.db.Supervisions = append(s.db.Supervisions, *sup)
	if err := s.persistLocked(); err != nil {
		s.db.Supervisions = s.db.Supervisions[:len(s.db.Supervisions)-1]
		return nil, err
	}
	return sup, nil
}

// DeleteSupervision removes the supervision with the given id; a missing id
// is a no-op.
func (s *fileStore) DeleteSupervision(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db.Supervisions
	kept := make([]model.Supervision, 0, len(prev))
	for _, sup := range prev {
		if sup.ID != id {
			kept = append(kept, sup)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}

	s.db.Supervisions = kept
	if err := s.persistLocked(); err != nil {
		s.db.Supervisions = prev
		return err
	}
	return nil
}
