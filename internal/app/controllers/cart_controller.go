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

// CartController handles student cart operations
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// GetCartItems handles GET /carts?email=. The cart is strictly self-scoped:
// requesting another principal's cart is a 403.
func (c *CartController) GetCartItems(ctx *gin.Context) {
	email := ctx.Query("email")
	tokenEmail := ctx.GetString(middleware.ContextEmailKey)

	items, err := c.cartService.GetCartItems(ctx.Request.Context(), tokenEmail, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// AddCartItem handles POST /carts
func (c *CartController) AddCartItem(ctx *gin.Context) {
	var req dto.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cart item data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item := &models.CartItem{
		StudentEmail: req.StudentEmail,
		ClassID:      req.ClassID,
		ClassName:    req.ClassName,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
	}

	id, err := c.cartService.AddItem(ctx.Request.Context(), item)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: 1},
		Timestamp: time.Now(),
	})
}

// RemoveCartItem handles DELETE /carts/:id. A missing id is a zero-effect
// success, mirroring single-document delete semantics.
func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	affected, err := c.cartService.RemoveItem(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MutationResult{ID: id, AffectedRows: affected},
		Timestamp: time.Now(),
	})
}
