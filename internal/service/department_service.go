package service

import (
	"context"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// DepartmentService handles department business logic.
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// GetByID retrieves a department by its ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// List retrieves all departments.
func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	return s.departmentRepo.List(ctx)
}

// ListByFaculty retrieves the departments under a faculty.
func (s *DepartmentService) ListByFaculty(ctx context.Context, facultyID int) ([]model.Department, error) {
	return s.departmentRepo.ListByFaculty(ctx, facultyID)
}

// Create inserts a new department.
func (s *DepartmentService) Create(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Create(ctx, d)
}

// Update modifies an existing department.
func (s *DepartmentService) Update(ctx context.Context, d *model.Department) error {
	return s.departmentRepo.Update(ctx, d)
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	return s.departmentRepo.Delete(ctx, id)
}
