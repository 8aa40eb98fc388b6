package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasRole is the single authorization check: admins may do everything a
// regular user may.
func HasRole(userRole, required string) bool {
	if required == RoleAdmin {
		return userRole == RoleAdmin
	}
	return userRole == RoleUser || userRole == RoleAdmin
}
