package model

// EnrollmentReportRow is one line of the enrollment report: an
// enrollment joined with its student, course and major.
type EnrollmentReportRow struct {
	StudentID   int      `json:"student_id"`
	StudentName string   `json:"student_name"`
	Email       string   `json:"email"`
	MajorName   string   `json:"major_name"`
	CourseCode  string   `json:"course_code"`
	CourseName  string   `json:"course_name"`
	Credits     int      `json:"credits"`
	Semester    Semester `json:"semester"`
	Status      string   `json:"status"`
	Grade       *string  `json:"grade"`
}

// DepartmentStat aggregates a department's staffing and course load.
type DepartmentStat struct {
	DepartmentID   int     `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	FacultyName    string  `json:"faculty_name"`
	ProfessorCount int     `json:"professor_count"`
	CourseCount    int     `json:"course_count"`
	AvgCredits     float64 `json:"avg_credits"`
}
