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

// ScheduleService owns the schedule write path. Creating or moving a
// schedule runs the room-availability and capacity guards inside one
// transaction, with an advisory lock serializing writers per
// classroom+day key.
type ScheduleService struct {
	pool       *pgxpool.Pool
	maxCourses int
	log        zerolog.Logger
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(pool *pgxpool.Pool, maxCoursesPerSemester int, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		pool:       pool,
		maxCourses: maxCoursesPerSemester,
		log:        log.With().Str("component", "schedule_service").Logger(),
	}
}

// Create validates and inserts a new schedule.
func (s *ScheduleService) Create(ctx context.Context, sched *model.Schedule) error {
	return s.write(ctx, sched, guard.NoExclusion, func(ctx context.Context, repo repository.ScheduleRepository) error {
		return repo.Create(ctx, sched)
	})
}

// Update re-validates a modified schedule, excluding its own prior
// record from the conflict set, and persists it.
func (s *ScheduleService) Update(ctx context.Context, sched *model.Schedule) error {
	return s.write(ctx, sched, sched.ID, func(ctx context.Context, repo repository.ScheduleRepository) error {
		return repo.Update(ctx, sched)
	})
}

// write runs the guards for a proposed schedule and applies the given
// mutation when every guard allows it.
func (s *ScheduleService) write(
	ctx context.Context,
	sched *model.Schedule,
	excludeScheduleID int,
	apply func(context.Context, repository.ScheduleRepository) error,
) error {
	if err := validateSlot(sched); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockKey(ctx, tx, fmt.Sprintf("schedule:room:%d:%s", sched.ClassroomID, sched.Day)); err != nil {
		return err
	}
	if err := lockKey(ctx, tx, fmt.Sprintf("enrollment:course:%d:%s", sched.CourseID, sched.Semester)); err != nil {
		return err
	}

	schedules := repository.NewScheduleRepository(tx)
	enrollments := repository.NewEnrollmentRepository(tx)
	classrooms := repository.NewClassroomRepository(tx)

	checker := guard.NewAvailabilityChecker(schedules)
	res, err := checker.CheckRoom(ctx, sched.ClassroomID, sched.Day, sched.StartTime, sched.EndTime, excludeScheduleID)
	if err != nil {
		return err
	}
	if !res.Allowed {
		return res.Violation
	}

	// Assigning a room to a course with existing enrollments can exceed
	// the room's seating; the capacity guard covers that here.
	g := guard.NewCapacityAndLoadGuard(schedules, enrollments, classrooms, s.maxCourses)
	res, err = g.CanAssignRoom(ctx, sched.CourseID, sched.ClassroomID, sched.Semester)
	if err != nil {
		return err
	}
	if !res.Allowed {
		return res.Violation
	}

	if err := apply(ctx, schedules); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Info().
		Int("schedule_id", sched.ID).
		Int("course_id", sched.CourseID).
		Int("classroom_id", sched.ClassroomID).
		Str("day", string(sched.Day)).
		Str("slot", fmt.Sprintf("%s-%s", sched.StartTime, sched.EndTime)).
		Msg("Schedule written")

	return nil
}

// Delete removes a schedule record.
func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	return repository.NewScheduleRepository(s.pool).Delete(ctx, id)
}

// GetByID returns one schedule.
func (s *ScheduleService) GetByID(ctx context.Context, id int) (*model.Schedule, error) {
	return repository.NewScheduleRepository(s.pool).GetByID(ctx, id)
}

// ListByCourse returns all schedules for a course.
func (s *ScheduleService) ListByCourse(ctx context.Context, courseID int) ([]model.Schedule, error) {
	return repository.NewScheduleRepository(s.pool).ListByCourse(ctx, courseID)
}

// ListByClassroomDay returns a room's schedule for one day.
func (s *ScheduleService) ListByClassroomDay(ctx context.Context, classroomID int, day model.Weekday) ([]model.Schedule, error) {
	return repository.NewScheduleRepository(s.pool).ListByClassroomDay(ctx, classroomID, day)
}

// validateSlot enforces the field-level slot constraints before the
// guards run: known enums and a strictly positive duration.
func validateSlot(sched *model.Schedule) error {
	if !sched.Day.IsValid() {
		return &guard.Violation{Kind: guard.KindInvalidInput, Detail: fmt.Sprintf("unknown weekday %q", sched.Day)}
	}
	if !sched.Semester.IsValid() {
		return &guard.Violation{Kind: guard.KindInvalidInput, Detail: fmt.Sprintf("unknown semester %q", sched.Semester)}
	}
	if sched.StartTime >= sched.EndTime {
		return &guard.Violation{Kind: guard.KindInvalidInput,
			Detail: fmt.Sprintf("end time %s must be after start time %s", sched.EndTime, sched.StartTime)}
	}
	return nil
}
