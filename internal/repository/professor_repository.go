package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type ProfessorRepository interface {
	GetByID(ctx context.Context, id int) (*model.Professor, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
	Create(ctx context.Context, p *model.Professor) error
	Update(ctx context.Context, p *model.Professor) error
	Delete(ctx context.Context, id int) error
}

type professorRepository struct {
	db Querier
}

// NewProfessorRepository creates a ProfessorRepository over a pool or transaction.
func NewProfessorRepository(db Querier) ProfessorRepository {
	return &professorRepository{db: db}
}

const professorColumns = `id, first_name, last_name, specialization, department_id, hire_date, salary, email, active, created_at, updated_at`

func (r *professorRepository) GetByID(ctx context.Context, id int) (*model.Professor, error) {
	p := &model.Professor{}
	err := r.db.QueryRow(ctx,
		`SELECT `+professorColumns+` FROM professors WHERE id = $1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Specialization, &p.DepartmentID,
		&p.HireDate, &p.Salary, &p.Email, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *professorRepository) ListByDepartment(ctx context.Context, departmentID int) ([]model.Professor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+professorColumns+` FROM professors WHERE department_id = $1 ORDER BY last_name, first_name`,
		departmentID)
	if err != nil {
		return nil, err
	}
	return collectProfessors(rows)
}

func (r *professorRepository) List(ctx context.Context) ([]model.Professor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+professorColumns+` FROM professors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	return collectProfessors(rows)
}

func (r *professorRepository) Create(ctx context.Context, p *model.Professor) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO professors (first_name, last_name, specialization, department_id, hire_date, salary, email, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		p.FirstName, p.LastName, p.Specialization, p.DepartmentID, p.HireDate, p.Salary, p.Email, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *professorRepository) Update(ctx context.Context, p *model.Professor) error {
	return r.db.QueryRow(ctx,
		`UPDATE professors
		 SET first_name = $1, last_name = $2, specialization = $3, department_id = $4,
		     hire_date = $5, salary = $6, email = $7, active = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9
		 RETURNING updated_at`,
		p.FirstName, p.LastName, p.Specialization, p.DepartmentID, p.HireDate, p.Salary, p.Email, p.Active, p.ID,
	).Scan(&p.UpdatedAt)
}

func (r *professorRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	return err
}

func collectProfessors(rows pgx.Rows) ([]model.Professor, error) {
	defer rows.Close()

	var professors []model.Professor
	for rows.Next() {
		var p model.Professor
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Specialization, &p.DepartmentID,
			&p.HireDate, &p.Salary, &p.Email, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}
