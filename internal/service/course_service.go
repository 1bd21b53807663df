package service

import (
	"context"
	"errors"

	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
)

// ErrCourseCodeTaken is returned when a course code already exists.
var ErrCourseCodeTaken = errors.New("course code already exists")

// CourseService handles course business logic.
type CourseService struct {
	courseRepo repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// ListByMajor retrieves the courses of one major.
func (s *CourseService) ListByMajor(ctx context.Context, majorID int) ([]model.Course, error) {
	return s.courseRepo.ListByMajor(ctx, majorID)
}

// Create inserts a new course after checking code uniqueness.
func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	existing, err := s.courseRepo.GetByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrCourseCodeTaken
	}
	return s.courseRepo.Create(ctx, c)
}

// Update modifies an existing course, re-checking code uniqueness.
func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	existing, err := s.courseRepo.GetByCode(ctx, c.Code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return ErrCourseCodeTaken
	}
	return s.courseRepo.Update(ctx, c)
}

// Delete removes a course. Enrollments and schedules reference courses
// with restricting foreign keys, so a course in use cannot be deleted.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}
