package model

import "time"

// AdditionalTask is an extra activity outside the main supervision duties,
// such as attending a workshop or committee meeting.
type AdditionalTask struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Description *string   `json:"description"`
	Photo1      *string   `json:"photo1"`
	Photo2      *string   `json:"photo2"`
	CreatedAt   time.Time `json:"createdAt"`
}
