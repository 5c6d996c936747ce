package services

import (
	"context"
	"fmt"

	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// CartService defines the interface for cart operations
type CartService interface {
	GetCartItems(ctx context.Context, requesterEmail, email string) ([]*models.CartItem, error)
	AddItem(ctx context.Context, item *models.CartItem) (int64, error)
	RemoveItem(ctx context.Context, id int64) (int64, error)
}

// cartStore is the slice of the cart repository this service needs
type cartStore interface {
	GetByStudentEmail(ctx context.Context, email string) ([]*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type cartServiceImpl struct {
	cartRepo cartStore
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo cartStore) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

// GetCartItems retrieves the cart items owned by email, on behalf of
// requesterEmail. A cart is strictly self-scoped: asking for someone else's
// cart is a permission error, and a missing email yields an empty list.
func (s *cartServiceImpl) GetCartItems(ctx context.Context, requesterEmail, email string) ([]*models.CartItem, error) {
	if email == "" {
		return []*models.CartItem{}, nil
	}
	if email != requesterEmail {
		return nil, apperrors.NewForbiddenError("Forbidden access")
	}

	items, err := s.cartRepo.GetByStudentEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cart items: %w", err)
	}
	return items, nil
}

// AddItem inserts a new cart item
func (s *cartServiceImpl) AddItem(ctx context.Context, item *models.CartItem) (int64, error) {
	if item == nil || item.StudentEmail == "" {
		return 0, apperrors.NewValidationError("student email cannot be empty")
	}

	id, err := s.cartRepo.Create(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("error adding cart item: %w", err)
	}
	return id, nil
}

// RemoveItem deletes one cart item by id. Removing a non-existent id reports
// zero affected rows, not an error.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperrors.NewValidationError("invalid cart item ID")
	}

	affected, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("error removing cart item: %w", err)
	}
	return affected, nil
}
