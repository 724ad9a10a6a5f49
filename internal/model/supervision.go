package model

import "time"

// Supervision types as shown in the UI.
const (
	SupervisionAkademik   = "Akademik"
	SupervisionManajerial = "Manajerial"
)

// Supervision records a supervision visit to a school. School holds the
// display name; SchoolID links to a registered School record when known.
type Supervision struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	SchoolID        *string   `json:"schoolId"`
	School          string    `json:"school"`
	Type            string    `json:"type"`
	Date            time.Time `json:"date"`
	Findings        string    `json:"findings"`
	Recommendations *string   `json:"recommendations"`
	Photo1          *string   `json:"photo1"`
	Photo2          *string   `json:"photo2"`
	CreatedAt       time.Time `json:"createdAt"`
}
