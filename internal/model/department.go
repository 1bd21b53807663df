package model

import "time"

// Department groups professors and courses under a faculty.
type Department struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	FacultyID int       `json:"faculty_id"`
	Head      string    `json:"head"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
