package model

import "time"

// Semester is a fixed academic-term enumeration used in enrollment
// and schedule composite keys. Values match the tipo_semestre enum.
type Semester string

const (
	FirstSemester  Semester = "Primer Semestre"
	SecondSemester Semester = "Segundo Semestre"
	SummerSemester Semester = "Verano"
)

// Semesters lists every valid semester value.
var Semesters = []Semester{FirstSemester, SecondSemester, SummerSemester}

// IsValid reports whether the semester is a member of the enumeration.
func (s Semester) IsValid() bool {
	for _, v := range Semesters {
		if s == v {
			return true
		}
	}
	return false
}

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Activa"
	EnrollmentWithdrawn EnrollmentStatus = "Retirada"
	EnrollmentCompleted EnrollmentStatus = "Completada"
)

// Enrollment registers a student in a course for one semester.
// The composite key (student_id, course_id, semester) is unique:
// a student holds at most one enrollment per course per semester.
type Enrollment struct {
	StudentID  int              `json:"student_id"`
	CourseID   int              `json:"course_id"`
	Semester   Semester         `json:"semester"`
	Grade      *string          `json:"grade"` // Nil until assigned
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolled_at"`
}
