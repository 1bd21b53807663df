package guard

import (
	"context"
	"fmt"

	"github.com/sgu-project/sgu-backend/internal/model"
)

// DefaultMaxCoursesPerSemester is the per-semester course load limit
// applied when no explicit limit is configured.
const DefaultMaxCoursesPerSemester = 6

// CapacityAndLoadGuard enforces the enrollment-side invariants: no
// duplicate enrollment, no enrollment into an unscheduled course, no
// student over the per-semester load limit, and no room filled past
// its seating capacity.
type CapacityAndLoadGuard struct {
	schedules   ScheduleReader
	enrollments EnrollmentReader
	classrooms  ClassroomReader
	maxCourses  int
}

// NewCapacityAndLoadGuard creates the guard. maxCoursesPerSemester <= 0
// selects DefaultMaxCoursesPerSemester.
func NewCapacityAndLoadGuard(
	schedules ScheduleReader,
	enrollments EnrollmentReader,
	classrooms ClassroomReader,
	maxCoursesPerSemester int,
) *CapacityAndLoadGuard {
	if maxCoursesPerSemester <= 0 {
		maxCoursesPerSemester = DefaultMaxCoursesPerSemester
	}
	return &CapacityAndLoadGuard{
		schedules:   schedules,
		enrollments: enrollments,
		classrooms:  classrooms,
		maxCourses:  maxCoursesPerSemester,
	}
}

// CanEnroll judges a proposed enrollment. Checks run in order and
// short-circuit on the first failure, so the most specific cause is
// reported: duplicate key, then unscheduled course, then load limit.
func (g *CapacityAndLoadGuard) CanEnroll(
	ctx context.Context,
	studentID, courseID int,
	semester model.Semester,
) (Result, error) {
	if !semester.IsValid() {
		return Deny(KindInvalidInput, "unknown semester %q", semester), nil
	}

	existing, err := g.enrollments.Find(ctx, studentID, courseID, semester)
	if err != nil {
		return Result{}, fmt.Errorf("find enrollment: %w", err)
	}
	if existing != nil {
		return Deny(KindDuplicateEnrollment,
			"student %d is already enrolled in course %d for %s",
			studentID, courseID, semester), nil
	}

	scheduleCount, err := g.schedules.CountByCourse(ctx, courseID)
	if err != nil {
		return Result{}, fmt.Errorf("count schedules: %w", err)
	}
	if scheduleCount == 0 {
		return Deny(KindUnscheduledCourse,
			"course %d has no room/time assignment", courseID), nil
	}

	load, err := g.enrollments.CountActiveByStudent(ctx, studentID, semester)
	if err != nil {
		return Result{}, fmt.Errorf("count student load: %w", err)
	}
	if load >= g.maxCourses {
		return Deny(KindEnrollmentLimitExceeded,
			"student %d already holds %d of %d courses for %s",
			studentID, load, g.maxCourses, semester), nil
	}

	return Allow(), nil
}

// CanAssignRoom judges whether a course's enrollment count for the
// semester fits the classroom. The policy is strict greater-than: a
// room filled to exactly its capacity is valid. Both mutation paths
// must invoke this (assigning a scheduled room to a course, and adding
// an enrollment to an already-scheduled course) since either can push
// the count over capacity.
func (g *CapacityAndLoadGuard) CanAssignRoom(
	ctx context.Context,
	courseID, classroomID int,
	semester model.Semester,
) (Result, error) {
	if !semester.IsValid() {
		return Deny(KindInvalidInput, "unknown semester %q", semester), nil
	}

	classroom, err := g.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return Result{}, fmt.Errorf("get classroom %d: %w", classroomID, err)
	}
	if classroom == nil {
		return Deny(KindInvalidInput, "classroom %d does not exist", classroomID), nil
	}
	if classroom.Capacity <= 0 {
		return Deny(KindInvalidInput,
			"classroom %d has non-positive capacity %d", classroomID, classroom.Capacity), nil
	}

	enrolled, err := g.enrollments.CountActiveByCourse(ctx, courseID, semester)
	if err != nil {
		return Result{}, fmt.Errorf("count course enrollments: %w", err)
	}
	if enrolled > classroom.Capacity {
		return Deny(KindCapacityExceeded,
			"course %d has %d enrolled students but classroom %s holds %d",
			courseID, enrolled, classroom.Code, classroom.Capacity), nil
	}

	return Allow(), nil
}

// MaxCoursesPerSemester exposes the configured load limit.
func (g *CapacityAndLoadGuard) MaxCoursesPerSemester() int {
	return g.maxCourses
}
