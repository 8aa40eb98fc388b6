package model

import (
	"time"
)

// Token is one issued access/refresh pair. Records are soft-revoked via
// LoggedOut and never deleted; LoggedOut is terminal once set.
type Token struct {
	ID           string    `json:"id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	LoggedOut    bool      `json:"logged_out"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
