package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sipengawas/internal/model"
)

// GetAdditionalTasks returns the user's additional activities in insertion order.
func (s *fileStore) GetAdditionalTasks(ctx context.Context, userID string) ([]model.AdditionalTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []model.AdditionalTask{}
	for _, task := range s.db.AdditionalTasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// CreateAdditionalTask assigns id and createdAt, defaults the date to now
// when unset, appends and persists.
func (s *fileStore) CreateAdditionalTask(ctx context.Context, task *model.AdditionalTask) (*model.AdditionalTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = uuid.NewString()
	task.CreatedAt = time.Now()
	if task.Date.IsZero() {
		task.Date = task.CreatedAt
	}

	s.db.AdditionalTasks = append(s.db.AdditionalTasks, *task)
	if err := s.persistLocked(); err != nil {
		s.db.AdditionalTasks = s.db.AdditionalTasks[:len(s.db.AdditionalTasks)-1]
		return nil, err
	}
	return task, nil
}

// DeleteAdditionalTask removes the activity with the given id; a missing id
// is a no-op.
func (s *fileStore) DeleteAdditionalTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db.AdditionalTasks
	kept := make([]model.AdditionalTask, 0, len(prev))
	for _, task := range prev {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}

	s.db.AdditionalTasks = kept
	if err := s.persistLocked(); err != nil {
		s.db.AdditionalTasks = prev
		return err
	}
	return nil
}
