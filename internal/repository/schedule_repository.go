package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type ScheduleRepository interface {
	GetByID(ctx context.Context, id int) (*model.Schedule, error)
	ListByCourse(ctx context.Context, courseID int) ([]model.Schedule, error)
	ListByClassroomDay(ctx context.Context, classroomID int, day model.Weekday) ([]model.Schedule, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)
	Create(ctx context.Context, s *model.Schedule) error
	Update(ctx context.Context, s *model.Schedule) error
	Delete(ctx context.Context, id int) error
}

type scheduleRepository struct {
	db Querier
}

// NewScheduleRepository creates a ScheduleRepository over a pool or
// transaction.
func NewScheduleRepository(db Querier) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, course_id, classroom_id, semester, day, start_minute, end_minute, created_at, updated_at`

func scanSchedule(row pgx.Row) (*model.Schedule, error) {
	s := &model.Schedule{}
	err := row.Scan(&s.ID, &s.CourseID, &s.ClassroomID, &s.Semester, &s.Day,
		&s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int) (*model.Schedule, error) {
	return scanSchedule(r.db.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
}

func (r *scheduleRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Schedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE course_id = $1 ORDER BY day, start_minute`,
		courseID)
	if err != nil {
		return nil, err
	}
	return collectSchedules(rows)
}

func (r *scheduleRepository) ListByClassroomDay(ctx context.Context, classroomID int, day model.Weekday) ([]model.Schedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE classroom_id = $1 AND day = $2 ORDER BY start_minute`,
		classroomID, day)
	if err != nil {
		return nil, err
	}
	return collectSchedules(rows)
}

func (r *scheduleRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedules WHERE course_id = $1`, courseID).Scan(&n)
	return n, err
}

func (r *scheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO schedules (course_id, classroom_id, semester, day, start_minute, end_minute)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.CourseID, s.ClassroomID, s.Semester, s.Day, s.StartTime, s.EndTime,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *scheduleRepository) Update(ctx context.Context, s *model.Schedule) error {
	return r.db.QueryRow(ctx,
		`UPDATE schedules
		 SET course_id = $1, classroom_id = $2, semester = $3, day = $4,
		     start_minute = $5, end_minute = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING updated_at`,
		s.CourseID, s.ClassroomID, s.Semester, s.Day, s.StartTime, s.EndTime, s.ID,
	).Scan(&s.UpdatedAt)
}

func (r *scheduleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	return err
}

func collectSchedules(rows pgx.Rows) ([]model.Schedule, error) {
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		var s model.Schedule
		if err := rows.Scan(&s.ID, &s.CourseID, &s.ClassroomID, &s.Semester, &s.Day,
			&s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// IsNotFound reports whether err is pgx's no-rows sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
