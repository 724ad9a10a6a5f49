package model

import "time"

// Task is a supervisor's main work item.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
	Photo1      *string   `json:"photo1"`
	Photo2      *string   `json:"photo2"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
// An explicit JSON null is indistinguishable from an absent key here, so
// clearing a field (for example removing a photo) is not supported through
// PATCH; send an empty string instead.
type TaskPatch struct {
	Title       *string    `json:"title"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	Photo1      *string    `json:"photo1"`
	Photo2      *string    `json:"photo2"`
	Completed   *bool      `json:"completed"`
}
