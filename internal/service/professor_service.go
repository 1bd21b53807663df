package service

import (
	"context"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// ProfessorService handles professor business logic.
type ProfessorService struct {
	professorRepo repository.ProfessorRepository
}

// NewProfessorService creates a new ProfessorService.
func NewProfessorService(professorRepo repository.ProfessorRepository) *ProfessorService {
	return &ProfessorService{professorRepo: professorRepo}
}

// GetByID retrieves a professor by their ID.
func (s *ProfessorService) GetByID(ctx context.Context, id int) (*model.Professor, error) {
	return s.professorRepo.GetByID(ctx, id)
}

// List retrieves all professors.
func (s *ProfessorService) List(ctx context.Context) ([]model.Professor, error) {
	return s.professorRepo.List(ctx)
}

// ListByDepartment retrieves a department's professors.
func (s *ProfessorService) ListByDepartment(ctx context.Context, departmentID int) ([]model.Professor, error) {
	return s.professorRepo.ListByDepartment(ctx, departmentID)
}

// Create inserts a new professor.
func (s *ProfessorService) Create(ctx context.Context, p *model.Professor) error {
	return s.professorRepo.Create(ctx, p)
}

// Update modifies an existing professor.
func (s *ProfessorService) Update(ctx context.Context, p *model.Professor) error {
	return s.professorRepo.Update(ctx, p)
}

// Delete removes a professor.
func (s *ProfessorService) Delete(ctx context.Context, id int) error {
	return s.professorRepo.Delete(ctx, id)
}
