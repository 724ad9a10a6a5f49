package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sipengawas/internal/errors"
	"sipengawas/internal/model"
)

// GetUser returns the user with the given id.
func (s *fileStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.db.Users {
		if s.db.Users[i].ID == id {
			user := s.db.Users[i]
			return &user, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

// GetUserByUsername returns the first user with the given username.
func (s *fileStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.db.Users {
		if s.db.Users[i].Username == username {
			user := s.db.Users[i]
			return &user, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

// CreateUser assigns id and createdAt, defaults the role to pengawas,
// appends and persists. Username uniqueness is the caller's responsibility.
func (s *fileStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = model.RolePengawas
	}

	s.db.Users = append(s.db.Users, *user)
	if err := s.persistLocked(); err != nil {
		s.db.Users = s.db.Users[:len(s.db.Users)-1]
		return nil, err
	}
	return user, nil
}
