package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/auth"
)

type stubRoleResolver struct {
	roles map[string]models.RoleType
	err   error
}

func (s *stubRoleResolver) GetRoleByEmail(_ context.Context, email string) (models.RoleType, error) {
	if s.err != nil {
		return models.RoleNone, s.err
	}
	return s.roles[email], nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "lingora.test",
	})
}

func newTestRouter(m *AuthMiddleware, requiredRole models.RoleType) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("")
	group.Use(m.JWTAuth())
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})

	roleGroup := group.Group("")
	roleGroup.Use(m.RoleRequired(requiredRole))
	roleGroup.GET("/role-protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), &stubRoleResolver{})
	router := newTestRouter(m, models.RoleAdmin)

	rec := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Unauthorized access", body["message"])
}

func TestJWTAuth_BadScheme(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), &stubRoleResolver{})
	router := newTestRouter(m, models.RoleAdmin)

	rec := doRequest(router, "/protected", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), &stubRoleResolver{})
	router := newTestRouter(m, models.RoleAdmin)

	rec := doRequest(router, "/protected", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidTokenSetsIdentity(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, &stubRoleResolver{})
	router := newTestRouter(m, models.RoleAdmin)

	token, err := jwtService.GenerateToken("me@x.com", "Me")
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "me@x.com", body["email"])
}

func TestRoleRequired_Match(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &stubRoleResolver{roles: map[string]models.RoleType{"admin@x.com": models.RoleAdmin}}
	m := NewAuthMiddleware(jwtService, resolver)
	router := newTestRouter(m, models.RoleAdmin)

	token, err := jwtService.GenerateToken("admin@x.com", "")
	require.NoError(t, err)

	rec := doRequest(router, "/role-protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRequired_Mismatch(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &stubRoleResolver{roles: map[string]models.RoleType{"student@x.com": models.RoleNone}}
	m := NewAuthMiddleware(jwtService, resolver)
	router := newTestRouter(m, models.RoleAdmin)

	token, err := jwtService.GenerateToken("student@x.com", "")
	require.NoError(t, err)

	rec := doRequest(router, "/role-protected", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Unauthorized access", body["message"])
}

func TestRoleRequired_InstructorIsNotAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &stubRoleResolver{roles: map[string]models.RoleType{"teach@x.com": models.RoleInstructor}}
	m := NewAuthMiddleware(jwtService, resolver)
	router := newTestRouter(m, models.RoleAdmin)

	token, err := jwtService.GenerateToken("teach@x.com", "")
	require.NoError(t, err)

	rec := doRequest(router, "/role-protected", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleRequired_ResolverError(t *testing.T) {
	jwtService := newTestJWTService()
	resolver := &stubRoleResolver{err: errors.New("store down")}
	m := NewAuthMiddleware(jwtService, resolver)
	router := newTestRouter(m, models.RoleAdmin)

	token, err := jwtService.GenerateToken("anyone@x.com", "")
	require.NoError(t, err)

	rec := doRequest(router, "/role-protected", "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
