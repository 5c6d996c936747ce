package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// ClassService defines the interface for class offering operations
type ClassService interface {
	GetClasses(ctx context.Context, instructorEmail string) ([]*models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) (int64, error)
	ApplyAction(ctx context.Context, id int64, action, feedback string) (int64, error)
}

// classStore is the slice of the class repository this service needs
type classStore interface {
	GetAll(ctx context.Context, instructorEmail string) ([]*models.Class, error)
	Create(ctx context.Context, class *models.Class) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) (int64, error)
	UpdateFeedback(ctx context.Context, id int64, feedback string) (int64, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo classStore
}

// NewClassService creates a new class service instance
func NewClassService(classRepo classStore) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
	}
}

// GetClasses retrieves class offerings, optionally filtered by instructor
// email. An empty filter returns every class.
func (s *classServiceImpl) GetClasses(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	classes, err := s.classRepo.GetAll(ctx, instructorEmail)
	if err != nil {
		return nil, fmt.Errorf("error retrieving classes: %w", err)
	}
	return classes, nil
}

// CreateClass inserts a new class submission. Every submission starts in
// PENDING status no matter what the caller set.
func (s *classServiceImpl) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	if class == nil {
		return 0, apperrors.NewValidationError("class is nil")
	}
	if strings.TrimSpace(class.Name) == "" {
		return 0, apperrors.NewValidationError("class name cannot be empty")
	}
	if strings.TrimSpace(class.InstructorEmail) == "" {
		return 0, apperrors.NewValidationError("instructor email cannot be empty")
	}

	class.Status = models.ClassPending

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("error creating class: %w", err)
	}
	return id, nil
}

// ApplyAction applies an admin moderation action to a class. Approve and deny
// are mutually exclusive and overwrite any prior status; feedback sets the
// feedback text and leaves the status alone. Any other action value yields a
// validation error and no mutation.
func (s *classServiceImpl) ApplyAction(ctx context.Context, id int64, action, feedback string) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewValidationError("invalid class ID")
	}

	var (
		affected int64
		err      error
	)

	switch action {
	case "approve":
		affected, err = s.classRepo.UpdateStatus(ctx, id, models.ClassApproved)
	case "deny":
		affected, err = s.classRepo.UpdateStatus(ctx, id, models.ClassDenied)
	case "feedback":
		affected, err = s.classRepo.UpdateFeedback(ctx, id, feedback)
	default:
		return 0, apperrors.ErrInvalidAction
	}

	if err != nil {
		return 0, fmt.Errorf("error applying class action %q: %w", action, err)
	}
	return affected, nil
}
