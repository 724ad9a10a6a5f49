package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sipengawas/internal/errors"
	"sipengawas/internal/model"
)

// GetTasks returns the user's tasks in insertion order.
func (s *fileStore) GetTasks(ctx context.Context, userID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []model.Task{}
	for _, task := range s.db.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// CreateTask assigns id and createdAt, defaults the date to now when unset,
// appends and persists.
func (s *fileStore) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = uuid.NewString()
	task.CreatedAt = time.Now()
	if task.Date.IsZero() {
		task.Date = task.CreatedAt
	}

	s.db.Tasks = append(s.db.Tasks, *task)
	if err := s.persistLocked(); err != nil {
		s.db.Tasks = s.db.Tasks[:len(s.db.Tasks)-1]
		return nil, err
	}
	return task, nil
}

// UpdateTask shallow-merges the non-nil patch fields onto the task with the
// given id and persists. Returns ErrTaskNotFound when the id is unknown.
func (s *fileStore) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.db.Tasks {
		if s.db.Tasks[i].ID != id {
			continue
		}

		prev := s.db.Tasks[i]
		merged := prev
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Category != nil {
			merged.Category = *patch.Category
		}
		if patch.Date != nil {
			merged.Date = *patch.Date
		}
		if patch.Description != nil {
			merged.Description = patch.Description
		}
		if patch.Photo1 != nil {
			merged.Photo1 = patch.Photo1
		}
		if patch.Photo2 != nil {
			merged.Photo2 = patch.Photo2
		}
		if patch.Completed != nil {
			merged.Completed = *patch.Completed
		}

		s.db.Tasks[i] = merged
		if err := s.persistLocked(); err != nil {
			s.db.Tasks[i] = prev
			return nil, err
		}
		return &merged, nil
	}
	return nil, errors.ErrTaskNotFound
}

// DeleteTask removes the task with the given id; a missing id is a no-op.
func (s *fileStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.db.Tasks
	kept := make([]model.Task, 0, len(prev))
	for _, task := range prev {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(prev) {
		return nil
	}

	s.db.Tasks = kept
	if err := s.persistLocked(); err != nil {
		s.db.Tasks = prev
		return err
	}
	return nil
}
