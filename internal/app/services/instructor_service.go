package services

import (
	"context"
	"fmt"

	"github.com/tahsin/lingora/internal/app/models"
)

// InstructorService defines the interface for instructor reference data
type InstructorService interface {
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
}

// instructorStore is the slice of the instructor repository this service needs
type instructorStore interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
}

type instructorServiceImpl struct {
	instructorRepo instructorStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo instructorStore) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
	}
}

// GetAllInstructors retrieves all instructor profiles
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return instructors, nil
}
