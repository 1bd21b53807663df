package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type EnrollmentRepository interface {
	// Find returns the enrollment for the composite key, or nil when absent.
	Find(ctx context.Context, studentID, courseID int, semester model.Semester) (*model.Enrollment, error)
	CountActiveByStudent(ctx context.Context, studentID int, semester model.Semester) (int, error)
	CountActiveByCourse(ctx context.Context, courseID int, semester model.Semester) (int, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.Enrollment, error)
	ListByCourseSemester(ctx context.Context, courseID int, semester model.Semester) ([]model.Enrollment, error)
	Create(ctx context.Context, e *model.Enrollment) error
	UpdateStatus(ctx context.Context, studentID, courseID int, semester model.Semester, status model.EnrollmentStatus) error
	AssignGrade(ctx context.Context, studentID, courseID int, semester model.Semester, grade string) error
}

type enrollmentRepository struct {
	db Querier
}

// NewEnrollmentRepository creates an EnrollmentRepository over a pool
// or transaction.
func NewEnrollmentRepository(db Querier) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

const enrollmentColumns = `student_id, course_id, semester, grade, status, enrolled_at`

func (r *enrollmentRepository) Find(ctx context.Context, studentID, courseID int, semester model.Semester) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+`
		 FROM enrollments WHERE student_id = $1 AND course_id = $2 AND semester = $3`,
		studentID, courseID, semester,
	).Scan(&e.StudentID, &e.CourseID, &e.Semester, &e.Grade, &e.Status, &e.EnrolledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *enrollmentRepository) CountActiveByStudent(ctx context.Context, studentID int, semester model.Semester) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments
		 WHERE student_id = $1 AND semester = $2 AND status = $3`,
		studentID, semester, model.EnrollmentActive).Scan(&n)
	return n, err
}

func (r *enrollmentRepository) CountActiveByCourse(ctx context.Context, courseID int, semester model.Semester) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments
		 WHERE course_id = $1 AND semester = $2 AND status = $3`,
		courseID, semester, model.EnrollmentActive).Scan(&n)
	return n, err
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+enrollmentColumns+`
		 FROM enrollments WHERE student_id = $1 ORDER BY semester, course_id`,
		studentID)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *enrollmentRepository) ListByCourseSemester(ctx context.Context, courseID int, semester model.Semester) ([]model.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+enrollmentColumns+`
		 FROM enrollments WHERE course_id = $1 AND semester = $2 ORDER BY student_id`,
		courseID, semester)
	if err != nil {
		return nil, err
	}
	return collectEnrollments(rows)
}

func (r *enrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id, semester, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING enrolled_at`,
		e.StudentID, e.CourseID, e.Semester, e.Status,
	).Scan(&e.EnrolledAt)
}

func (r *enrollmentRepository) UpdateStatus(ctx context.Context, studentID, courseID int, semester model.Semester, status model.EnrollmentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE enrollments SET status = $1
		 WHERE student_id = $2 AND course_id = $3 AND semester = $4`,
		status, studentID, courseID, semester)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *enrollmentRepository) AssignGrade(ctx context.Context, studentID, courseID int, semester model.Semester, grade string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE enrollments SET grade = $1, status = $2
		 WHERE student_id = $3 AND course_id = $4 AND semester = $5`,
		grade, model.EnrollmentCompleted, studentID, courseID, semester)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectEnrollments(rows pgx.Rows) ([]model.Enrollment, error) {
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.StudentID, &e.CourseID, &e.Semester, &e.Grade, &e.Status, &e.EnrolledAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
