package model

import "time"

// Major is a degree program offered by a faculty.
type Major struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	FacultyID     int       `json:"faculty_id"`
	DurationYears int       `json:"duration_years"`
	TotalCredits  int       `json:"total_credits"`
	Degree        string    `json:"degree"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
