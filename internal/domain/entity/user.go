package entity

import (
	"time"
)

// User is an account with a role.
// Email is unique case-insensitively (unique index on lower(email)).
// Accounts are never deleted, only deactivated in place.
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
