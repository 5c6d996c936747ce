package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextEmailKey = "email"
	ContextNameKey  = "name"
)

// RoleResolver resolves a principal's role from the user store.
// An absent user resolves to RoleNone.
type RoleResolver interface {
	GetRoleByEmail(ctx context.Context, email string) (models.RoleType, error)
}

// AuthMiddleware composes token verification and role lookup into
// authorization checks attachable to any route.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	roles      RoleResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, roles RoleResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		roles:      roles,
	}
}

// JWTAuth middleware for JWT token validation. A missing Authorization header
// and an invalid token are distinct conditions but produce the same
// externally visible 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized access")
			errorDetail = errorDetail.WithDetails("Authorization header missing")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized access")
			errorDetail = errorDetail.WithDetails("Invalid token format")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Unauthorized access")
			errorDetail = errorDetail.WithDetails(errorDetails)

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextNameKey, claims.Name)

		c.Next()
	}
}

// RoleRequired middleware admits only principals holding the required role.
// The role is resolved from the user store by the verified token email, so a
// promotion or demotion takes effect on the next request without reissuing
// the token.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized access")
			errorDetail = errorDetail.WithDetails("User identity not found")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		role, err := m.roles.GetRoleByEmail(c.Request.Context(), email)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			errorDetail = errorDetail.WithDetails("Failed to resolve user role")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		if role != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Unauthorized access")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")

			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
