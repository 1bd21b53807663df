package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sgu-project/sgu-backend/internal/model"
)

type ClassroomRepository interface {
	// GetByID returns the classroom, or nil when it does not exist.
	GetByID(ctx context.Context, id int) (*model.Classroom, error)
	GetByCode(ctx context.Context, code string) (*model.Classroom, error)
	List(ctx context.Context) ([]model.Classroom, error)
	Create(ctx context.Context, c *model.Classroom) error
	Update(ctx context.Context, c *model.Classroom) error
	Delete(ctx context.Context, id int) error
}

type classroomRepository struct {
	db Querier
}

// NewClassroomRepository creates a ClassroomRepository over a pool or
// transaction.
func NewClassroomRepository(db Querier) ClassroomRepository {
	return &classroomRepository{db: db}
}

const classroomColumns = `id, code, building, capacity, room_type, has_projector, created_at, updated_at`

func (r *classroomRepository) GetByID(ctx context.Context, id int) (*model.Classroom, error) {
	c := &model.Classroom{}
	err := r.db.QueryRow(ctx,
		`SELECT `+classroomColumns+` FROM classrooms WHERE id = $1`, id,
	).Scan(&c.ID, &c.Code, &c.Building, &c.Capacity, &c.RoomType, &c.HasProjector, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *classroomRepository) GetByCode(ctx context.Context, code string) (*model.Classroom, error) {
	c := &model.Classroom{}
	err := r.db.QueryRow(ctx,
		`SELECT `+classroomColumns+` FROM classrooms WHERE code = $1`, code,
	).Scan(&c.ID, &c.Code, &c.Building, &c.Capacity, &c.RoomType, &c.HasProjector, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *classroomRepository) List(ctx context.Context) ([]model.Classroom, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+classroomColumns+` FROM classrooms ORDER BY building, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []model.Classroom
	for rows.Next() {
		var c model.Classroom
		if err := rows.Scan(&c.ID, &c.Code, &c.Building, &c.Capacity, &c.RoomType, &c.HasProjector, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

func (r *classroomRepository) Create(ctx context.Context, c *model.Classroom) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO classrooms (code, building, capacity, room_type, has_projector)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Code, c.Building, c.Capacity, c.RoomType, c.HasProjector,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *classroomRepository) Update(ctx context.Context, c *model.Classroom) error {
	return r.db.QueryRow(ctx,
		`UPDATE classrooms
		 SET code = $1, building = $2, capacity = $3, room_type = $4,
		     has_projector = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING updated_at`,
		c.Code, c.Building, c.Capacity, c.RoomType, c.HasProjector, c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *classroomRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
	return err
}
