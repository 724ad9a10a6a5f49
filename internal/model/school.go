package model

import "time"

// School is a school under a supervisor's guidance.
type School struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Contact       string    `json:"contact"`
	PrincipalName *string   `json:"principalName"`
	PrincipalNip  *string   `json:"principalNip"`
	CreatedAt     time.Time `json:"createdAt"`
}
