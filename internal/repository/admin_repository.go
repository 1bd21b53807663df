package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type AdminRepository interface {
	// GetByEmail returns the admin, or nil when no such account exists.
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
}

type adminRepository struct {
	db Querier
}

// NewAdminRepository creates an AdminRepository over a pool or transaction.
func NewAdminRepository(db Querier) AdminRepository {
	return &adminRepository{db: db}
}

const adminColumns = `id, name, email, password_hash, created_at, updated_at`

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email,
	).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.db.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) Create(ctx context.Context, a *model.Admin) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}
