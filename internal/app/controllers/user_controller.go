package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/app/services"
	"github.com/tahsin/lingora/internal/middleware"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers handles GET /users (admin only)
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// CreateUser handles POST /users. Creation is idempotent by email: posting an
// email that already exists answers with a message instead of a new record.
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleNone,
	}

	id, err := c.userService.CreateUser(ctx.Request.Context(), user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.APIResponse{
				Data:      dto.SuccessResponse{Message: "User already exist"},
				Timestamp: time.Now(),
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: 1},
		Timestamp: time.Now(),
	})
}

// CheckAdmin handles GET /users/admin/:email. Asking about someone else's
// email answers a plain negative instead of rejecting the request; the store
// is not consulted on a mismatch.
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")
	tokenEmail := ctx.GetString(middleware.ContextEmailKey)

	if email != tokenEmail {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.AdminCheckResponse{Admin: false},
			Timestamp: time.Now(),
		})
		return
	}

	isAdmin, err := c.userService.HasRole(ctx.Request.Context(), email, models.RoleAdmin)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.AdminCheckResponse{Admin: isAdmin},
		Timestamp: time.Now(),
	})
}

// CheckInstructor handles GET /users/instructor/:email with the same
// self-scope behavior as CheckAdmin.
func (c *UserController) CheckInstructor(ctx *gin.Context) {
	email := ctx.Param("email")
	tokenEmail := ctx.GetString(middleware.ContextEmailKey)

	if email != tokenEmail {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.InstructorCheckResponse{Instructor: false},
			Timestamp: time.Now(),
		})
		return
	}

	isInstructor, err := c.userService.HasRole(ctx.Request.Context(), email, models.RoleInstructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.InstructorCheckResponse{Instructor: isInstructor},
		Timestamp: time.Now(),
	})
}

// PromoteToAdmin handles PATCH /users/admin/:id (admin only)
func (c *UserController) PromoteToAdmin(ctx *gin.Context) {
	c.promote(ctx, c.userService.PromoteToAdmin)
}

// PromoteToInstructor handles PATCH /users/instructor/:id (admin only)
func (c *UserController) PromoteToInstructor(ctx *gin.Context) {
	c.promote(ctx, c.userService.PromoteToInstructor)
}

func (c *UserController) promote(ctx *gin.Context, update func(ctx context.Context, id int64) (int64, error)) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	affected, err := update(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: affected},
		Timestamp: time.Now(),
	})
}

// DeleteUser handles DELETE /users/:id (admin only). Deleting an id that does
// not exist reports zero affected rows as a success.
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	affected, err := c.userService.DeleteUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: affected},
		Timestamp: time.Now(),
	})
}

// parseIDParam parses the :id path parameter, writing a 400 on failure
func parseIDParam(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
