package service

import (
	"context"
	"errors"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// Classroom errors.
var (
	ErrClassroomCodeTaken = errors.New("classroom code already exists")
	ErrInvalidCapacity    = errors.New("classroom capacity must be positive")
)

// ClassroomService handles classroom business logic.
type ClassroomService struct {
	classroomRepo repository.ClassroomRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo repository.ClassroomRepository) *ClassroomService {
	return &ClassroomService{classroomRepo: classroomRepo}
}

// GetByID retrieves a classroom by its ID.
func (s *ClassroomService) GetByID(ctx context.Context, id int) (*model.Classroom, error) {
	return s.classroomRepo.GetByID(ctx, id)
}

// List retrieves all classrooms.
func (s *ClassroomService) List(ctx context.Context) ([]model.Classroom, error) {
	return s.classroomRepo.List(ctx)
}

// Create inserts a new classroom. Capacity must be positive, the
// capacity guard depends on it.
func (s *ClassroomService) Create(ctx context.Context, c *model.Classroom) error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	existing, err := s.classroomRepo.GetByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrClassroomCodeTaken
	}
	return s.classroomRepo.Create(ctx, c)
}

// Update modifies an existing classroom.
func (s *ClassroomService) Update(ctx context.Context, c *model.Classroom) error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	existing, err := s.classroomRepo.GetByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return ErrClassroomCodeTaken
	}
	return s.classroomRepo.Update(ctx, c)
}

// Delete removes a classroom.
func (s *ClassroomService) Delete(ctx context.Context, id int) error {
	return s.classroomRepo.Delete(ctx, id)
}
