package model

import "time"

// Faculty is a top-level academic division of the university.
type Faculty struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Location       string     `json:"location"`
	FoundationDate *time.Time `json:"foundation_date"`
	Phone          string     `json:"phone"`
	Dean           string     `json:"dean"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
