package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/middleware"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

type stubCartService struct {
	items     []*models.CartItem
	getErr    error
	removedID int64
	affected  int64
}

func (s *stubCartService) GetCartItems(_ context.Context, requesterEmail, email string) ([]*models.CartItem, error) {
	if email == "" {
		return []*models.CartItem{}, nil
	}
	if email != requesterEmail {
		return nil, apperrors.NewForbiddenError("Forbidden access")
	}
	return s.items, s.getErr
}

func (s *stubCartService) AddItem(_ context.Context, item *models.CartItem) (int64, error) {
	return 11, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, id int64) (int64, error) {
	s.removedID = id
	return s.affected, nil
}

func newCartTestRouter(svc *stubCartService, tokenEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewCartController(svc)

	identity := func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, tokenEmail)
		c.Next()
	}

	router.GET("/carts", identity, controller.GetCartItems)
	router.POST("/carts", identity, controller.AddCartItem)
	router.DELETE("/carts/:id", identity, controller.RemoveCartItem)

	return router
}

func TestGetCartItems_OwnCart(t *testing.T) {
	svc := &stubCartService{items: []*models.CartItem{{ID: 1, StudentEmail: "me@x.com"}}}
	router := newCartTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/carts?email=me@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Data[0].ID)
}

func TestGetCartItems_OtherCartForbidden(t *testing.T) {
	router := newCartTestRouter(&stubCartService{}, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/carts?email=other@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Forbidden access", resp.Message)
}

func TestGetCartItems_NoEmailYieldsEmptyList(t *testing.T) {
	svc := &stubCartService{items: []*models.CartItem{{ID: 1}}}
	router := newCartTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestRemoveCartItem_ZeroEffect(t *testing.T) {
	svc := &stubCartService{affected: 0}
	router := newCartTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodDelete, "/carts/404", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(404), svc.removedID)

	var resp struct {
		Data struct {
			AffectedRows int64 `json:"affectedRows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Data.AffectedRows)
}
