package model

import "time"

// Roles a user can hold. Pengawas (school supervisor) is the default for
// self-registered accounts.
const (
	RoleAdmin    = "admin"
	RolePengawas = "pengawas"
)

// User represents an authenticated supervisor or administrator.
// Password holds the bcrypt hash; it is persisted to the backing file but
// must never be exposed through the API (handlers return sanitized views).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
