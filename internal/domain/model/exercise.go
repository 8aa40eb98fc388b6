package model

import (
	"time"
)

// DefaultExercise is a curated exercise from the built-in catalog. Only
// admins manage these; every user can read them.
type DefaultExercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Target       string    `json:"target"`
	Description  []string  `json:"description"`
	Instructions []string  `json:"instructions"`
	Images       []string  `json:"images"`
	Advices      []string  `json:"advices"`
	Video        string    `json:"video"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserExercise is an exercise a user defined for themselves, optionally
// attached to one of their workout sessions.
type UserExercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Target       string    `json:"target"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	Image        string    `json:"image"`
	Advices      string    `json:"advices"`
	Video        string    `json:"video"`
	UserID       string    `json:"user_id"`
	SessionID    *string   `json:"session_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
