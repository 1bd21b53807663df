package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id int) (*model.Course, error)
	GetByCode(ctx context.Context, code string) (*model.Course, error)
	ListByMajor(ctx context.Context, majorID int) ([]model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int) error
}

type courseRepository struct {
	db Querier
}

// NewCourseRepository creates a CourseRepository over a pool or transaction.
func NewCourseRepository(db Querier) CourseRepository {
	return &courseRepository{db: db}
}

const courseColumns = `id, code, name, credits, description, major_id, prerequisite_id, department_id, created_at, updated_at`

func scanCourse(row pgx.Row) (*model.Course, error) {
	c := &model.Course{}
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Description,
		&c.MajorID, &c.PrerequisiteID, &c.DepartmentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

func (r *courseRepository) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	c, err := scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE code = $1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *courseRepository) ListByMajor(ctx context.Context, majorID int) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE major_id = $1 ORDER BY code`, majorID)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY code`)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (r *courseRepository) Create(ctx context.Context, c *model.Course) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO courses (code, name, credits, description, major_id, prerequisite_id, department_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		c.Code, c.Name, c.Credits, c.Description, c.MajorID, c.PrerequisiteID, c.DepartmentID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *courseRepository) Update(ctx context.Context, c *model.Course) error {
	return r.db.QueryRow(ctx,
		`UPDATE courses
		 SET code = $1, name = $2, credits = $3, description = $4,
		     major_id = $5, prerequisite_id = $6, department_id = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8
		 RETURNING updated_at`,
		c.Code, c.Name, c.Credits, c.Description, c.MajorID, c.PrerequisiteID, c.DepartmentID, c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *courseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

func collectCourses(rows pgx.Rows) ([]model.Course, error) {
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Description,
			&c.MajorID, &c.PrerequisiteID, &c.DepartmentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
