package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/sgu-project/sgu-backend/internal/model"
)

// EnrollmentReportFilter narrows the enrollment report. Zero values
// mean "no filter".
type EnrollmentReportFilter struct {
	Semester   model.Semester
	MajorID    int
	MinCredits int
}

// ReportRepository runs the read-only aggregate queries behind the
// report exports.
type ReportRepository interface {
	EnrollmentRows(ctx context.Context, filter EnrollmentReportFilter) ([]model.EnrollmentReportRow, error)
	DepartmentStats(ctx context.Context) ([]model.DepartmentStat, error)
}

type reportRepository struct {
	db Querier
}

// NewReportRepository creates a ReportRepository over a pool or transaction.
func NewReportRepository(db Querier) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) EnrollmentRows(ctx context.Context, filter EnrollmentReportFilter) ([]model.EnrollmentReportRow, error) {
	query := `SELECT e.student_id, s.first_name || ' ' || s.last_name, s.email,
		COALESCE(m.name, ''), c.code, c.name, c.credits, e.semester, e.status, e.grade
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN majors m ON m.id = s.major_id`

	var conditions []string
	var args []any

	if filter.Semester != "" {
		args = append(args, filter.Semester)
		conditions = append(conditions, fmt.Sprintf("e.semester = $%d", len(args)))
	}
	if filter.MajorID > 0 {
		args = append(args, filter.MajorID)
		conditions = append(conditions, fmt.Sprintf("s.major_id = $%d", len(args)))
	}
	if filter.MinCredits > 0 {
		args = append(args, filter.MinCredits)
		conditions = append(conditions, fmt.Sprintf("c.credits >= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.last_name, s.first_name, c.code"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EnrollmentReportRow
	for rows.Next() {
		var row model.EnrollmentReportRow
		if err := rows.Scan(&row.StudentID, &row.StudentName, &row.Email, &row.MajorName,
			&row.CourseCode, &row.CourseName, &row.Credits, &row.Semester, &row.Status, &row.Grade); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *reportRepository) DepartmentStats(ctx context.Context) ([]model.DepartmentStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.name, f.name,
			COUNT(DISTINCT p.id),
			COUNT(DISTINCT c.id),
			COALESCE(AVG(c.credits), 0)
		FROM departments d
		JOIN faculties f ON f.id = d.faculty_id
		LEFT JOIN professors p ON p.department_id = d.id
		LEFT JOIN courses c ON c.department_id = d.id
		GROUP BY d.id, d.name, f.name
		ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DepartmentStat
	for rows.Next() {
		var st model.DepartmentStat
		if err := rows.Scan(&st.DepartmentID, &st.DepartmentName, &st.FacultyName,
			&st.ProfessorCount, &st.CourseCount, &st.AvgCredits); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
