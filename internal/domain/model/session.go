package model

import (
	"time"
)

type UserSession struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      string    `json:"user_id"`
	SessionDate time.Time `json:"session_date"`
	CreatedAt   time.Time `json:"created_at"`
}
