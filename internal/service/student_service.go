package service

import (
	"context"
	"errors"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// ErrEmailTaken is returned when a student email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// StudentService handles student business logic.
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student by their ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListPaginated retrieves students with pagination, returning the page
// and the total count.
func (s *StudentService) ListPaginated(ctx context.Context, page, perPage int) ([]model.Student, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}
	return s.studentRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
}

// Create registers a new student after checking email uniqueness.
func (s *StudentService) Create(ctx context.Context, st *model.Student) error {
	existing, err := s.studentRepo.GetByEmail(ctx, st.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	if st.Status == "" {
		st.Status = "Activo"
	}
	return s.studentRepo.Create(ctx, st)
}

// Update modifies an existing student.
func (s *StudentService) Update(ctx context.Context, st *model.Student) error {
	existing, err := s.studentRepo.GetByEmail(ctx, st.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != st.ID {
		return ErrEmailTaken
	}
	return s.studentRepo.Update(ctx, st)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}
