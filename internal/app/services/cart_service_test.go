package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

type stubCartStore struct {
	items     []*models.CartItem
	queried   []string
	deletedID int64
	affected  int64
}

func (s *stubCartStore) GetByStudentEmail(_ context.Context, email string) ([]*models.CartItem, error) {
	s.queried = append(s.queried, email)
	return s.items, nil
}

func (s *stubCartStore) Create(_ context.Context, item *models.CartItem) (int64, error) {
	return 11, nil
}

func (s *stubCartStore) Delete(_ context.Context, id int64) (int64, error) {
	s.deletedID = id
	return s.affected, nil
}

func TestGetCartItems_SelfScope(t *testing.T) {
	store := &stubCartStore{items: []*models.CartItem{{ID: 1, StudentEmail: "me@x.com"}}}
	svc := NewCartService(store)

	items, err := svc.GetCartItems(context.Background(), "me@x.com", "me@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetCartItems_OtherEmailForbidden(t *testing.T) {
	store := &stubCartStore{}
	svc := NewCartService(store)

	_, err := svc.GetCartItems(context.Background(), "me@x.com", "other@x.com")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, store.queried, "store must not be consulted on a scope mismatch")
}

func TestGetCartItems_NoEmailYieldsEmptyList(t *testing.T) {
	store := &stubCartStore{items: []*models.CartItem{{ID: 1}}}
	svc := NewCartService(store)

	items, err := svc.GetCartItems(context.Background(), "me@x.com", "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, store.queried)
}

func TestAddItem_RequiresStudentEmail(t *testing.T) {
	svc := NewCartService(&stubCartStore{})

	_, err := svc.AddItem(context.Background(), &models.CartItem{ClassID: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRemoveItem_ZeroEffectIsSuccess(t *testing.T) {
	store := &stubCartStore{affected: 0}
	svc := NewCartService(store)

	affected, err := svc.RemoveItem(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.Equal(t, int64(99), store.deletedID)
}

func TestRemoveItem_InvalidID(t *testing.T) {
	svc := NewCartService(&stubCartStore{})

	_, err := svc.RemoveItem(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
