package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type MajorRepository interface {
	GetByID(ctx context.Context, id int) (*model.Major, error)
	GetByName(ctx context.Context, name string) (*model.Major, error)
	List(ctx context.Context) ([]model.Major, error)
	Create(ctx context.Context, m *model.Major) error
	Update(ctx context.Context, m *model.Major) error
	Delete(ctx context.Context, id int) error
}

type majorRepository struct {
	db Querier
}

// NewMajorRepository creates a MajorRepository over a pool or transaction.
func NewMajorRepository(db Querier) MajorRepository {
	return &majorRepository{db: db}
}

const majorColumns = `id, name, faculty_id, duration_years, total_credits, degree, created_at, updated_at`

func (r *majorRepository) GetByID(ctx context.Context, id int) (*model.Major, error) {
	m := &model.Major{}
	err := r.db.QueryRow(ctx,
		`SELECT `+majorColumns+` FROM majors WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.FacultyID, &m.DurationYears, &m.TotalCredits, &m.Degree, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *majorRepository) GetByName(ctx context.Context, name string) (*model.Major, error) {
	m := &model.Major{}
	err := r.db.QueryRow(ctx,
		`SELECT `+majorColumns+` FROM majors WHERE name = $1`, name,
	).Scan(&m.ID, &m.Name, &m.FacultyID, &m.DurationYears, &m.TotalCredits, &m.Degree, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *majorRepository) List(ctx context.Context) ([]model.Major, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+majorColumns+` FROM majors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var majors []model.Major
	for rows.Next() {
		var m model.Major
		if err := rows.Scan(&m.ID, &m.Name, &m.FacultyID, &m.DurationYears, &m.TotalCredits, &m.Degree, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		majors = append(majors, m)
	}
	return majors, rows.Err()
}

func (r *majorRepository) Create(ctx context.Context, m *model.Major) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO majors (name, faculty_id, duration_years, total_credits, degree)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		m.Name, m.FacultyID, m.DurationYears, m.TotalCredits, m.Degree,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *majorRepository) Update(ctx context.Context, m *model.Major) error {
	return r.db.QueryRow(ctx,
		`UPDATE majors
		 SET name = $1, faculty_id = $2, duration_years = $3, total_credits = $4,
		     degree = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING updated_at`,
		m.Name, m.FacultyID, m.DurationYears, m.TotalCredits, m.Degree, m.ID,
	).Scan(&m.UpdatedAt)
}

func (r *majorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM majors WHERE id = $1`, id)
	return err
}
