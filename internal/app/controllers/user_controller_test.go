package controllers

import (
	"bytes"
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

type stubUserService struct {
	users        []*models.User
	createErr    error
	createdID    int64
	roleQueries  []string
	hasRole      bool
	affectedRows int64
}

func (s *stubUserService) GetAllUsers(_ context.Context) ([]*models.User, error) {
	return s.users, nil
}

func (s *stubUserService) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	return s.createdID, nil
}

func (s *stubUserService) HasRole(_ context.Context, email string, role models.RoleType) (bool, error) {
	s.roleQueries = append(s.roleQueries, email)
	return s.hasRole, nil
}

func (s *stubUserService) PromoteToAdmin(_ context.Context, id int64) (int64, error) {
	return s.affectedRows, nil
}

func (s *stubUserService) PromoteToInstructor(_ context.Context, id int64) (int64, error) {
	return s.affectedRows, nil
}

func (s *stubUserService) DeleteUser(_ context.Context, id int64) (int64, error) {
	return s.affectedRows, nil
}

// newUserTestRouter wires the controller behind routes that mimic the real
// surface, with the token identity injected directly instead of a real JWT.
func newUserTestRouter(svc *stubUserService, tokenEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewUserController(svc)

	identity := func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, tokenEmail)
		c.Next()
	}

	router.POST("/users", controller.CreateUser)
	router.GET("/users/admin/:email", identity, controller.CheckAdmin)
	router.GET("/users/instructor/:email", identity, controller.CheckInstructor)
	router.PATCH("/users/admin/:id", controller.PromoteToAdmin)
	router.DELETE("/users/:id", controller.DeleteUser)

	return router
}

func TestCreateUser_New(t *testing.T) {
	svc := &stubUserService{createdID: 5}
	router := newUserTestRouter(svc, "")

	body := bytes.NewBufferString(`{"email":"new@x.com","name":"New User"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			ID           int64 `json:"id"`
			AffectedRows int64 `json:"affectedRows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Data.ID)
	assert.Equal(t, int64(1), resp.Data.AffectedRows)
}

func TestCreateUser_DuplicateAnswersMessage(t *testing.T) {
	svc := &stubUserService{createErr: apperrors.ErrEmailAlreadyExists}
	router := newUserTestRouter(svc, "")

	body := bytes.NewBufferString(`{"email":"dup@x.com","name":"Dup"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User already exist", resp.Data.Message)
}

func TestCreateUser_InvalidBody(t *testing.T) {
	router := newUserTestRouter(&stubUserService{}, "")

	body := bytes.NewBufferString(`{"email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckAdmin_SelfScope(t *testing.T) {
	svc := &stubUserService{hasRole: true}
	router := newUserTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users/admin/me@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Admin bool `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Admin)
	assert.Equal(t, []string{"me@x.com"}, svc.roleQueries)
}

func TestCheckAdmin_OtherEmailAnswersFalseWithoutLookup(t *testing.T) {
	svc := &stubUserService{hasRole: true}
	router := newUserTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users/admin/other@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Admin bool `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Admin)
	assert.Empty(t, svc.roleQueries, "mismatched email must not reach the store")
}

func TestCheckInstructor_OtherEmailAnswersFalse(t *testing.T) {
	svc := &stubUserService{hasRole: true}
	router := newUserTestRouter(svc, "me@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users/instructor/other@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Instructor bool `json:"instructor"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Instructor)
	assert.Empty(t, svc.roleQueries)
}

func TestPromoteToAdmin_InvalidID(t *testing.T) {
	router := newUserTestRouter(&stubUserService{}, "")

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser_ZeroEffect(t *testing.T) {
	svc := &stubUserService{affectedRows: 0}
	router := newUserTestRouter(svc, "")

	req := httptest.NewRequest(http.MethodDelete, "/users/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			AffectedRows int64 `json:"affectedRows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Data.AffectedRows)
}
