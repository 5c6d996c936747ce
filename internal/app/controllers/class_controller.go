package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/app/services"
	"github.com/tahsin/lingora/internal/middleware"
)

// ClassController handles class offering operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetClasses handles GET /classes and GET /myclasses. An optional ?email=
// query narrows the listing to one instructor; without it every class is
// returned.
func (c *ClassController) GetClasses(ctx *gin.Context) {
	email := ctx.Query("email")

	classes, err := c.classService.GetClasses(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// CreateClass handles POST /classes (instructor only)
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class := &models.Class{
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
	}

	id, err := c.classService.CreateClass(ctx.Request.Context(), class)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: 1},
		Timestamp: time.Now(),
	})
}

// ApplyAction handles PATCH /classes/:id (admin only). The action
// discriminator selects the mutation: approve, deny or feedback. Anything
// else is a 400 and mutates nothing.
func (c *ClassController) ApplyAction(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ClassActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid action data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	affected, err := c.classService.ApplyAction(ctx.Request.Context(), id, string(req.Action), req.Feedback)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: affected},
		Timestamp: time.Now(),
	})
}
