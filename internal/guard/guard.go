// Package guard implements the pre-commit validation core for schedule
// and enrollment mutations. Guards are stateless predicate evaluators:
// they read current persisted state through narrow reader interfaces,
// judge a proposed record, and never mutate anything. A rejection is an
// ordinary outcome, not a fault; callers surface the kind and abort
// the write.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgu-project/sgu-backend/internal/model"
)

// Kind identifies the category of a guard rejection.
type Kind string

const (
	KindDuplicateEnrollment     Kind = "DUPLICATE_ENROLLMENT"
	KindUnscheduledCourse       Kind = "UNSCHEDULED_COURSE"
	KindEnrollmentLimitExceeded Kind = "ENROLLMENT_LIMIT_EXCEEDED"
	KindCapacityExceeded        Kind = "CAPACITY_EXCEEDED"
	KindRoomConflict            Kind = "ROOM_CONFLICT"
	KindInvalidInput            Kind = "INVALID_INPUT"
)

// Violation is a typed guard rejection.
type Violation struct {
	Kind   Kind
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
}

// Result is the verdict of a guard evaluation.
type Result struct {
	Allowed   bool
	Violation *Violation
}

// Allow returns a passing verdict.
func Allow() Result {
	return Result{Allowed: true}
}

// Deny returns a rejecting verdict with the given kind and detail.
func Deny(kind Kind, format string, args ...interface{}) Result {
	return Result{
		Allowed:   false,
		Violation: &Violation{Kind: kind, Detail: fmt.Sprintf(format, args...)},
	}
}

// Err converts the result to an error: nil when allowed, the typed
// violation otherwise.
func (r Result) Err() error {
	if r.Allowed {
		return nil
	}
	return r.Violation
}

// asViolation unwraps err into *Violation when it is one.
func asViolation(err error, target **Violation) bool {
	return errors.As(err, target)
}

// ScheduleReader is the read surface the guards need over schedules.
// Implemented by repository.ScheduleRepository; tests use fakes.
type ScheduleReader interface {
	// ListByClassroomDay returns all schedules for a classroom on a day.
	ListByClassroomDay(ctx context.Context, classroomID int, day model.Weekday) ([]model.Schedule, error)
	// CountByCourse returns the number of schedule records a course owns.
	CountByCourse(ctx context.Context, courseID int) (int, error)
}

// EnrollmentReader is the read surface the guards need over enrollments.
type EnrollmentReader interface {
	// Find returns the enrollment for the composite key, or nil when absent.
	Find(ctx context.Context, studentID, courseID int, semester model.Semester) (*model.Enrollment, error)
	// CountActiveByStudent counts a student's active enrollments in a semester.
	CountActiveByStudent(ctx context.Context, studentID int, semester model.Semester) (int, error)
	// CountActiveByCourse counts a course's active enrollments in a semester.
	CountActiveByCourse(ctx context.Context, courseID int, semester model.Semester) (int, error)
}

// ClassroomReader resolves classrooms for capacity checks.
type ClassroomReader interface {
	// GetByID returns the classroom, or nil when it does not exist.
	GetByID(ctx context.Context, id int) (*model.Classroom, error)
}
