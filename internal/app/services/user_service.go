package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	HasRole(ctx context.Context, email string, role models.RoleType) (bool, error)
	PromoteToAdmin(ctx context.Context, id int64) (int64, error)
	PromoteToInstructor(ctx context.Context, id int64) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// userStore is the slice of the user repository this service needs
type userStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetRoleByEmail(ctx context.Context, email string) (models.RoleType, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	UpdateRole(ctx context.Context, id int64, role models.RoleType) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo userStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userStore) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a new user unless one with the same email already exists.
// Creation is idempotent by email: the duplicate case is reported as
// ErrEmailAlreadyExists and nothing is written.
func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return 0, apperrors.NewValidationError("email cannot be empty")
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return 0, fmt.Errorf("error checking existing user: %w", err)
	}
	if existing != nil {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	if user.Role == "" {
		user.Role = models.RoleNone
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// A concurrent create for the same email loses the race at the
		// unique constraint and reports the same duplicate result.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// HasRole reports whether the user identified by email holds the given role.
// Absent users resolve to RoleNone and therefore hold no role.
func (s *userServiceImpl) HasRole(ctx context.Context, email string, role models.RoleType) (bool, error) {
	resolved, err := s.userRepo.GetRoleByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error resolving role: %w", err)
	}
	return resolved == role, nil
}

// PromoteToAdmin sets the role of the user identified by id to ADMIN
func (s *userServiceImpl) PromoteToAdmin(ctx context.Context, id int64) (int64, error) {
	return s.updateRole(ctx, id, models.RoleAdmin)
}

// PromoteToInstructor sets the role of the user identified by id to INSTRUCTOR
func (s *userServiceImpl) PromoteToInstructor(ctx context.Context, id int64) (int64, error) {
	return s.updateRole(ctx, id, models.RoleInstructor)
}

func (s *userServiceImpl) updateRole(ctx context.Context, id int64, role models.RoleType) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewValidationError("invalid user ID")
	}

	affected, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		return 0, fmt.Errorf("error updating user role: %w", err)
	}
	return affected, nil
}

// DeleteUser removes the user identified by id. Deleting a non-existent id
// reports zero affected rows, not an error.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewValidationError("invalid user ID")
	}

	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting user: %w", err)
	}
	return affected, nil
}
