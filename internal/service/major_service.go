package service

import (
	"context"
	"errors"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// ErrMajorNameTaken is returned when creating or renaming a major to a
// name that already exists.
var ErrMajorNameTaken = errors.New("major name already exists")

// MajorService handles major business logic.
type MajorService struct {
	majorRepo repository.MajorRepository
}

// NewMajorService creates a new MajorService.
func NewMajorService(majorRepo repository.MajorRepository) *MajorService {
	return &MajorService{majorRepo: majorRepo}
}

// GetByID retrieves a major by its ID.
func (s *MajorService) GetByID(ctx context.Context, id int) (*model.Major, error) {
	return s.majorRepo.GetByID(ctx, id)
}

// List retrieves all majors.
func (s *MajorService) List(ctx context.Context) ([]model.Major, error) {
	return s.majorRepo.List(ctx)
}

// Create inserts a new major after checking name uniqueness.
func (s *MajorService) Create(ctx context.Context, m *model.Major) error {
	existing, err := s.majorRepo.GetByName(ctx, m.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrMajorNameTaken
	}
	return s.majorRepo.Create(ctx, m)
}

// Update modifies an existing major, re-checking name uniqueness when
// the name changes.
func (s *MajorService) Update(ctx context.Context, m *model.Major) error {
	existing, err := s.majorRepo.GetByName(ctx, m.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != m.ID {
		return ErrMajorNameTaken
	}
	return s.majorRepo.Update(ctx, m)
}

// Delete removes a major.
func (s *MajorService) Delete(ctx context.Context, id int) error {
	return s.majorRepo.Delete(ctx, id)
}
