package model

import "time"

// Professor is a teaching staff member attached to a department.
type Professor struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	DepartmentID   int       `json:"department_id"`
	HireDate       time.Time `json:"hire_date"`
	Salary         *float64  `json:"salary"`
	Email          string    `json:"email"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
