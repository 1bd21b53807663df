package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type StudentRepository interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]model.Student, int, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int) error
}

type studentRepository struct {
	db Querier
}

// NewStudentRepository creates a StudentRepository over a pool or transaction.
func NewStudentRepository(db Querier) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, first_name, last_name, birth_date, address, phone, email, major_id, admission_date, status, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.Address,
		&s.Phone, &s.Email, &s.MajorID, &s.AdmissionDate, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	s, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

func (r *studentRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Student, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.BirthDate, &s.Address,
			&s.Phone, &s.Email, &s.MajorID, &s.AdmissionDate, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

func (r *studentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO students (first_name, last_name, birth_date, address, phone, email, major_id, admission_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		s.FirstName, s.LastName, s.BirthDate, s.Address, s.Phone, s.Email,
		s.MajorID, s.AdmissionDate, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *studentRepository) Update(ctx context.Context, s *model.Student) error {
	return r.db.QueryRow(ctx,
		`UPDATE students
		 SET first_name = $1, last_name = $2, birth_date = $3, address = $4, phone = $5,
		     email = $6, major_id = $7, status = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING updated_at`,
		s.FirstName, s.LastName, s.BirthDate, s.Address, s.Phone, s.Email, s.MajorID, s.Status, s.ID,
	).Scan(&s.UpdatedAt)
}

func (r *studentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
