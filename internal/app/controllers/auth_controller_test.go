package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahsin/lingora/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewAuthController(jwtService, zerolog.Nop())
	router.POST("/jwt", controller.IssueToken)

	return router
}

func TestIssueToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "lingora.test",
	})
	router := newAuthTestRouter(jwtService)

	body := bytes.NewBufferString(`{"email":"me@x.com","name":"Me"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// The issued token carries the identity claims back out
	claims, err := jwtService.ValidateAndExtractClaims(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "me@x.com", claims.Email)
	assert.Equal(t, "Me", claims.Name)
}

func TestIssueToken_InvalidBody(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenExp: time.Hour})
	router := newAuthTestRouter(jwtService)

	body := bytes.NewBufferString(`{"name":"no email"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
