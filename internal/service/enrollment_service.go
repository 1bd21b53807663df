package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/sgu-project/sgu-backend/internal/guard"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// EnrollmentService owns the enrollment write path. Every mutation runs
// its guards and the insert inside one transaction, with advisory locks
// serializing writers per student+semester and course+semester key.
type EnrollmentService struct {
	pool       *pgxpool.Pool
	maxCourses int
	log        zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(pool *pgxpool.Pool, maxCoursesPerSemester int, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		pool:       pool,
		maxCourses: maxCoursesPerSemester,
		log:        log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Enroll registers a student in a course for a semester after all
// guards pass. A guard rejection comes back as *guard.Violation; the
// transaction never commits a rejected enrollment.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int, semester model.Semester) (*model.Enrollment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockKey(ctx, tx, fmt.Sprintf("enrollment:student:%d:%s", studentID, semester)); err != nil {
		return nil, err
	}
	if err := lockKey(ctx, tx, fmt.Sprintf("enrollment:course:%d:%s", courseID, semester)); err != nil {
		return nil, err
	}

	schedules := repository.NewScheduleRepository(tx)
	enrollments := repository.NewEnrollmentRepository(tx)
	classrooms := repository.NewClassroomRepository(tx)
	g := guard.NewCapacityAndLoadGuard(schedules, enrollments, classrooms, s.maxCourses)

	res, err := g.CanEnroll(ctx, studentID, courseID, semester)
	if err != nil {
		return nil, err
	}
	if !res.Allowed {
		return nil, res.Violation
	}

	// An enrollment into an already-scheduled course can push a room
	// over capacity, so the capacity guard runs on this path too, once
	// per room the course meets in this semester.
	courseSchedules, err := schedules.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list course schedules: %w", err)
	}
	checked := make(map[int]bool)
	for _, sched := range courseSchedules {
		if sched.Semester != semester || checked[sched.ClassroomID] {
			continue
		}
		checked[sched.ClassroomID] = true

		res, err := g.CanAssignRoom(ctx, courseID, sched.ClassroomID, semester)
		if err != nil {
			return nil, err
		}
		if !res.Allowed {
			return nil, res.Violation
		}
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  semester,
		Status:    model.EnrollmentActive,
	}
	if err := enrollments.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.log.Info().
		Int("student_id", studentID).
		Int("course_id", courseID).
		Str("semester", string(semester)).
		Msg("Student enrolled")

	return enrollment, nil
}

// Withdraw marks an enrollment as withdrawn. Withdrawn enrollments no
// longer count toward the load limit or room capacity.
func (s *EnrollmentService) Withdraw(ctx context.Context, studentID, courseID int, semester model.Semester) error {
	enrollments := repository.NewEnrollmentRepository(s.pool)
	return enrollments.UpdateStatus(ctx, studentID, courseID, semester, model.EnrollmentWithdrawn)
}

// AssignGrade records a final grade and completes the enrollment.
func (s *EnrollmentService) AssignGrade(ctx context.Context, studentID, courseID int, semester model.Semester, grade string) error {
	enrollments := repository.NewEnrollmentRepository(s.pool)
	return enrollments.AssignGrade(ctx, studentID, courseID, semester, grade)
}

// ListByStudent returns a student's enrollment history.
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID int) ([]model.Enrollment, error) {
	return repository.NewEnrollmentRepository(s.pool).ListByStudent(ctx, studentID)
}

// ListByCourseSemester returns a course's roster for one semester.
func (s *EnrollmentService) ListByCourseSemester(ctx context.Context, courseID int, semester model.Semester) ([]model.Enrollment, error) {
	return repository.NewEnrollmentRepository(s.pool).ListByCourseSemester(ctx, courseID, semester)
}
