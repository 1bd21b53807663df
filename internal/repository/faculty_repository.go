package repository

import (
	"context"

	"github.com/sgu-project/sgu-backend/internal/model"
)

type FacultyRepository interface {
	GetByID(ctx context.Context, id int) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	Create(ctx context.Context, f *model.Faculty) error
	Update(ctx context.Context, f *model.Faculty) error
	Delete(ctx context.Context, id int) error
}

type facultyRepository struct {
	db Querier
}

// NewFacultyRepository creates a FacultyRepository over a pool or transaction.
func NewFacultyRepository(db Querier) FacultyRepository {
	return &facultyRepository{db: db}
}

const facultyColumns = `id, name, location, foundation_date, phone, dean, created_at, updated_at`

func (r *facultyRepository) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	f := &model.Faculty{}
	err := r.db.QueryRow(ctx,
		`SELECT `+facultyColumns+` FROM faculties WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name, &f.Location, &f.FoundationDate, &f.Phone, &f.Dean, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *facultyRepository) List(ctx context.Context) ([]model.Faculty, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+facultyColumns+` FROM faculties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []model.Faculty
	for rows.Next() {
		var f model.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.FoundationDate, &f.Phone, &f.Dean, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faculties = append(faculties, f)
	}
	return faculties, rows.Err()
}

func (r *facultyRepository) Create(ctx context.Context, f *model.Faculty) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO faculties (name, location, foundation_date, phone, dean)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		f.Name, f.Location, f.FoundationDate, f.Phone, f.Dean,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *facultyRepository) Update(ctx context.Context, f *model.Faculty) error {
	return r.db.QueryRow(ctx,
		`UPDATE faculties
		 SET name = $1, location = $2, foundation_date = $3, phone = $4, dean = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING updated_at`,
		f.Name, f.Location, f.FoundationDate, f.Phone, f.Dean, f.ID,
	).Scan(&f.UpdatedAt)
}

func (r *facultyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	return err
}
