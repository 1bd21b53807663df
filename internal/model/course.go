package model

import "time"

// Course is a subject offered by a major. A course owns zero or more
// schedules (it may meet in several rooms per week) and zero or more
// enrollments per semester.
type Course struct {
	ID             int       `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Credits        int       `json:"credits"`
	Description    string    `json:"description"`
	MajorID        int       `json:"major_id"`
	PrerequisiteID *int      `json:"prerequisite_id"`
	DepartmentID   *int      `json:"department_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
