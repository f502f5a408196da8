package entity

import (
	"time"
)

// Course is the aggregate root for the catalog domain.
// The (name, provider, level) triple is unique; the Postgres index on
// (lower(course_name), provider, level) is the source of truth, the
// service pre-check only exists for a friendlier error.
//
// Deletion is physical; there is no soft-delete flag.
type Course struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	URL             string    `json:"url"`
	Description     string    `json:"description,omitempty"`
	Provider        Provider  `json:"provider"`
	Language        string    `json:"language,omitempty"`
	Level           Level     `json:"level"`
	DurationMinutes int       `json:"duration_minutes"`
	Rating          float64   `json:"rating"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
