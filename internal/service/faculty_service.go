package service

import (
	"context"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// FacultyService handles faculty business logic.
type FacultyService struct {
	facultyRepo repository.FacultyRepository
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(facultyRepo repository.FacultyRepository) *FacultyService {
	return &FacultyService{facultyRepo: facultyRepo}
}

// GetByID retrieves a faculty by its ID.
func (s *FacultyService) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// List retrieves all faculties.
func (s *FacultyService) List(ctx context.Context) ([]model.Faculty, error) {
	return s.facultyRepo.List(ctx)
}

// Create inserts a new faculty. The unique index on name surfaces
// duplicates as a constraint error.
func (s *FacultyService) Create(ctx context.Context, f *model.Faculty) error {
	return s.facultyRepo.Create(ctx, f)
}

// Update modifies an existing faculty.
func (s *FacultyService) Update(ctx context.Context, f *model.Faculty) error {
	return s.facultyRepo.Update(ctx, f)
}

// Delete removes a faculty. Foreign keys from departments and majors
// block deletion while dependents exist.
func (s *FacultyService) Delete(ctx context.Context, id int) error {
	return s.facultyRepo.Delete(ctx, id)
}
