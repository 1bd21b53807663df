package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type DepartmentRepository interface {
	GetByID(ctx context.Context, id int) (*model.Department, error)
	ListByFaculty(ctx context.Context, facultyID int) ([]model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Create(ctx context.Context, d *model.Department) error
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id int) error
}

type departmentRepository struct {
	db Querier
}

// NewDepartmentRepository creates a DepartmentRepository over a pool or transaction.
func NewDepartmentRepository(db Querier) DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentColumns = `id, name, faculty_id, head, email, created_at, updated_at`

func (r *departmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.db.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.FacultyID, &d.Head, &d.Email, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *departmentRepository) ListByFaculty(ctx context.Context, facultyID int) ([]model.Department, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE faculty_id = $1 ORDER BY name`, facultyID)
	if err != nil {
		return nil, err
	}
	return collectDepartments(rows)
}

func (r *departmentRepository) List(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return collectDepartments(rows)
}

func (r *departmentRepository) Create(ctx context.Context, d *model.Department) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO departments (name, faculty_id, head, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		d.Name, d.FacultyID, d.Head, d.Email,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *departmentRepository) Update(ctx context.Context, d *model.Department) error {
	return r.db.QueryRow(ctx,
		`UPDATE departments
		 SET name = $1, faculty_id = $2, head = $3, email = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING updated_at`,
		d.Name, d.FacultyID, d.Head, d.Email, d.ID,
	).Scan(&d.UpdatedAt)
}

func (r *departmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}

func collectDepartments(rows pgx.Rows) ([]model.Department, error) {
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.FacultyID, &d.Head, &d.Email, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
