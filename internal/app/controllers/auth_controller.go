package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/pkg/auth"
)

// AuthController issues bearer tokens for verified identities.
// The frontend calls IssueToken right after a successful sign-in.
type AuthController struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// IssueToken handles POST /jwt. It signs the supplied identity claims into a
// time-limited bearer token. No user record is touched here.
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.jwtService.GenerateToken(req.Email, req.Name)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to sign token")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.TokenResponse{Token: token},
		Timestamp: time.Now(),
	})
}
