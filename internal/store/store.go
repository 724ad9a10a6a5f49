// Package store implements the durable record store backing the whole
// application. All state lives in memory and is mirrored to a single
// pretty-printed JSON file after every mutation. Writes go to a temp file
// in the same directory and are renamed over the backing file, so a crash
// mid-write never truncates existing data.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"sipengawas/internal/errors"
	"sipengawas/internal/model"
)

// Store holds the five record collections and answers filtered and
// aggregated queries scoped by owning user.
//
// Username uniqueness is a caller precondition on CreateUser: the auth
// service checks GetUserByUsername first. The store does not enforce it.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// Schools
	GetSchools(ctx context.Context, userID string) ([]model.School, error)
	CreateSchool(ctx context.Context, school *model.School) (*model.School, error)
	DeleteSchool(ctx context.Context, id string) error

	// Tasks
	GetTasks(ctx context.Context, userID string) ([]model.Task, error)
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Supervisions
	GetSupervisions(ctx context.Context, userID string) ([]model.Supervision, error)
	GetSupervisionsBySchool(ctx context.Context, userID, schoolID string) ([]model.Supervision, error)
	CreateSupervision(ctx context.Context, sup *model.Supervision) (*model.Supervision, error)
	DeleteSupervision(ctx context.Context, id string) error

	// Additional tasks
	GetAdditionalTasks(ctx context.Context, userID string) ([]model.AdditionalTask, error)
	CreateAdditionalTask(ctx context.Context, task *model.AdditionalTask) (*model.AdditionalTask, error)
	DeleteAdditionalTask(ctx context.Context, id string) error

	// Reports
	GetMonthlyStats(ctx context.Context, userID string, year, month int) (*model.MonthlyStats, error)
	GetYearlyStats(ctx context.Context, userID string, year int) (*model.YearlyStats, error)

	// Close flushes state to the backing file.
	Close() error
}

// database is the serialized shape of the backing file: one object with
// five named arrays. Missing fields in older files unmarshal as zero values.
type database struct {
	Users           []model.User           `json:"users"`
	Schools         []model.School         `json:"schools"`
	Tasks           []model.Task           `json:"tasks"`
	Supervisions    []model.Supervision    `json:"supervisions"`
	AdditionalTasks []model.AdditionalTask `json:"additionalTasks"`
}

type fileStore struct {
	path string

	mu sync.RWMutex
	db database
}

// Open loads the backing file at path and returns a ready store. An absent
// or unreadable file degrades to an empty store with a logged warning; it
// is an intentional recovery, not an error.
func Open(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	s := &fileStore{path: path}
	s.load()
	return s, nil
}

func (s *fileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read %s, starting empty: %v", s.path, err)
		}
		s.db = emptyDatabase()
		return
	}

	var db database
	if err := json.Unmarshal(data, &db); err != nil {
		log.Printf("warning: cannot parse %s, starting empty: %v", s.path, err)
		s.db = emptyDatabase()
		return
	}

	// Collections absent from older files must still marshal as arrays.
	if db.Users == nil {
		db.Users = []model.User{}
	}
	if db.Schools == nil {
		db.Schools = []model.School{}
	}
	if db.Tasks == nil {
		db.Tasks = []model.Task{}
	}
	if db.Supervisions == nil {
		db.Supervisions = []model.Supervision{}
	}
	if db.AdditionalTasks == nil {
		db.AdditionalTasks = []model.AdditionalTask{}
	}
	s.db = db
}

func emptyDatabase() database {
	return database{
		Users:           []model.User{},
		Schools:         []model.School{},
		Tasks:           []model.Task{},
		Supervisions:    []model.Supervision{},
		AdditionalTasks: []model.AdditionalTask{},
	}
}

// persistLocked serializes the whole state and atomically replaces the
// backing file. Callers must hold the write lock and roll their in-memory
// mutation back if an error comes back, so memory and disk never diverge.
func (s *fileStore) persistLocked() error {
	data, err := json.MarshalIndent(&s.db, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal state: %v", errors.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", errors.ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write temp file: %v", errors.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close temp file: %v", errors.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace backing file: %v", errors.ErrStorageUnavailable, err)
	}
	return nil
}

// Close flushes the current state to disk.
func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}
